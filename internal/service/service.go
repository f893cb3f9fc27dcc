package service

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

import (
	"context"

	"github.com/mzums/keysnap/internal/models"
	"github.com/mzums/keysnap/internal/quiz"
	"go.uber.org/zap"
)

type CatalogI interface {
	Add(shortcut, description, category string) (int, error)
	List(category string) []models.Shortcut
	Categories() []string
	Delete(shortcut, description, category string) (bool, error)
	Len() int
	Version() uint64
}

type QuizRI interface {
	AddQuizResult(ctx context.Context, result models.QuizCard) error
	QuizStats(ctx context.Context) (models.QuizStats, error)
	Weakest(ctx context.Context, limit int) ([]models.ShortcutStats, error)
}

type Service struct {
	*ShortcutS
	*QuizS
}

// InitServices wires the catalog and quiz services. repo may be nil when
// the quiz history is disabled.
func InitServices(catalog CatalogI, repo QuizRI, engine *quiz.Engine, log *zap.Logger) *Service {
	return &Service{
		ShortcutS: NewShortcutService(catalog, log),
		QuizS:     NewQuizService(catalog, repo, engine, log),
	}
}
