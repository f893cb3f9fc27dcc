package repository

import (
	"context"
	"fmt"

	"github.com/mzums/keysnap/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{
		db: db,
	}
}

func (q *QuizR) AddQuizResult(ctx context.Context, result models.QuizCard) error {
	query := q.db.Rebind(`
        INSERT INTO quiz_results (shortcut, description, category, difficulty, is_correct)
        VALUES (?, ?, ?, ?, ?)
    `)

	_, err := q.db.ExecContext(ctx, query, result.Shortcut, result.Description, result.Category, result.Difficulty, result.IsCorrect)
	if err != nil {
		return fmt.Errorf("failed to insert quiz result: %w", err)
	}

	return nil
}

func (q *QuizR) QuizStats(ctx context.Context) (models.QuizStats, error) {
	query := `SELECT 
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS right_count
	FROM quiz_results`

	var stats models.QuizStats
	err := q.db.GetContext(ctx, &stats, query)
	if err != nil {
		return models.QuizStats{}, fmt.Errorf("failed to get quiz stats: %w", err)
	}

	stats.WrongCount = stats.TotalCount - stats.RightCount

	return stats, nil
}
