package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mzums/keysnap/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS quiz_results (
	shortcut    TEXT      NOT NULL,
	description TEXT      NOT NULL,
	category    TEXT      NOT NULL,
	difficulty  TEXT      NOT NULL,
	is_correct  BOOLEAN   NOT NULL,
	answered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// DSN returns the connection string for cfg. An explicit DSN wins; for
// postgres it is otherwise built from the connection fields.
func DSN(cfg config.HistoryConfig) string {
	if cfg.DSN != "" || cfg.Driver != "postgres" {
		return cfg.DSN
	}
	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL)
}

func InitDB(cfg config.HistoryConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Driver, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Pool.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Pool.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Pool.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed apply schema: %w", err)
	}

	return db, nil
}
