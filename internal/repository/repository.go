package repository

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go

import (
	"context"
	"database/sql"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type Repository struct {
	*QuizR
	*ShortcutStatsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		QuizR:          NewQuizRepository(db),
		ShortcutStatsR: NewShortcutStatsRepository(db),
	}
}
