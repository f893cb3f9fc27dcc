package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mzums/keysnap/internal/cli"
	"github.com/mzums/keysnap/internal/config"
	"github.com/mzums/keysnap/internal/models"
	"github.com/mzums/keysnap/internal/quiz"
	"github.com/mzums/keysnap/internal/repository"
	"github.com/mzums/keysnap/internal/service"
	"github.com/mzums/keysnap/internal/storage/catalog"
	"github.com/mzums/keysnap/internal/storage/db"
	"github.com/spf13/afero"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run wires the application and executes one command. Every resource it
// opens is released before it returns.
func run(args []string, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed load config: %w", err)
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	store := catalog.New(afero.NewOsFs(), cfg.Catalog.Path, logger)
	found, err := store.Load()
	if err != nil {
		logger.Error("failed load catalog", zap.String("path", store.Path()), zap.Error(err))
		return err
	}

	var repo service.QuizRI
	if cfg.History.Enabled {
		conn, err := db.InitDB(cfg.History)
		if err != nil {
			logger.Error("failed init db", zap.String("driver", cfg.History.Driver), zap.Error(err))
			return err
		}
		defer conn.Close()
		repo = repository.NewRepository(conn)
	}

	rnd := quiz.NewSeededRandom()
	if cfg.Quiz.Seed != 0 {
		rnd = quiz.NewRandom(cfg.Quiz.Seed)
	}

	services := service.InitServices(store, repo, quiz.NewEngine(rnd, logger), logger)

	if !found && cfg.Catalog.SeedDefaults {
		if err := services.SeedDefaults(); err != nil {
			logger.Warn("failed seed default shortcuts", zap.Error(err))
		}
	}

	difficulty, err := models.ParseDifficulty(cfg.Quiz.Difficulty)
	if err != nil {
		return err
	}

	root := cli.NewRootCommand(services, cli.RootOptions{Difficulty: difficulty})
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.Execute()
}
