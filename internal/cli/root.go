// Package cli is the command-line front end over the shortcut and quiz
// services.
package cli

//go:generate mockgen -destination=mock/cli_mock.go -package=mock_cli github.com/mzums/keysnap/internal/cli ServiceI

import (
	"context"

	"github.com/mzums/keysnap/internal/models"
	"github.com/spf13/cobra"
)

type ShortcutSI interface {
	AddShortcut(shortcut, description, category string) (int, error)
	Shortcuts(category string) []models.Shortcut
	Categories() []string
	DeleteShortcut(shortcut, description, category string) (bool, error)
}

type QuizSI interface {
	NewQuiz(difficulty models.Difficulty) (models.QuizRound, bool)
	Answer(ctx context.Context, option int) (models.AnswerResult, error)
	Score() models.Score
	ResetScore()
	QuizStats(ctx context.Context) (models.QuizStats, error)
	Weakest(ctx context.Context, limit int) ([]models.ShortcutStats, error)
}

type ServiceI interface {
	ShortcutSI
	QuizSI
}

// RootOptions holds settings shared by all commands.
type RootOptions struct {
	Difficulty models.Difficulty
}

func NewRootCommand(service ServiceI, opts RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "keysnap",
		Short:         "Keysnap - keyboard shortcut catalog and quiz",
		Long:          "Keep a personal catalog of keyboard shortcuts and quiz yourself on them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewAddCommand(service))
	cmd.AddCommand(NewListCommand(service))
	cmd.AddCommand(NewCategoriesCommand(service))
	cmd.AddCommand(NewDeleteCommand(service))
	cmd.AddCommand(NewQuizCommand(service, opts))
	cmd.AddCommand(NewStatsCommand(service))

	return cmd
}
