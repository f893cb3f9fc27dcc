package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mzums/keysnap/pkg/validator"
	"github.com/spf13/viper"
)

const envPrefix = "KEYSNAP"

type Config struct {
	Env     string        `mapstructure:"env" validate:"oneof=development production staging"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Quiz    QuizConfig    `mapstructure:"quiz"`
	History HistoryConfig `mapstructure:"history"`
}

type CatalogConfig struct {
	Path         string `mapstructure:"path" validate:"required"`
	SeedDefaults bool   `mapstructure:"seed_defaults"`
}

type QuizConfig struct {
	Difficulty string `mapstructure:"difficulty" validate:"oneof=easy normal hard"`
	Seed       uint64 `mapstructure:"seed"`
}

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	DSN     string `mapstructure:"dsn"`
	Conn    DBConn `mapstructure:"conn"`
	Pool    DBCfg  `mapstructure:"pool"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")

	v.SetDefault("catalog.path", "shortcuts.bin")
	v.SetDefault("catalog.seed_defaults", true)

	v.SetDefault("quiz.difficulty", "normal")
	v.SetDefault("quiz.seed", 0)

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.driver", "sqlite3")
	v.SetDefault("history.dsn", "keysnap.db")
	v.SetDefault("history.conn.host", "")
	v.SetDefault("history.conn.port", "")
	v.SetDefault("history.conn.user", "")
	v.SetDefault("history.conn.password", "")
	v.SetDefault("history.conn.name", "")
	v.SetDefault("history.conn.ssl", "disable")
	v.SetDefault("history.pool.max_open_conns", 1)
	v.SetDefault("history.pool.max_idle_conns", 1)
	v.SetDefault("history.pool.conn_max_life_time", 0)
	v.SetDefault("history.pool.conn_max_idle_time", 0)
}

// Init reads defaults, an optional config file and KEYSNAP_* environment
// overrides. KEYSNAP_CONFIG names an explicit file that must exist;
// otherwise <CONFIG_NAME>.yaml (default keysnap.yaml) is looked up in
// ./configs and the working directory. A missing file is not an error.
func Init() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		configName := os.Getenv("CONFIG_NAME")
		if configName == "" {
			configName = "keysnap"
		}
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
