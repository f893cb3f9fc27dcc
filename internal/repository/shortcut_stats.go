package repository

import (
	"context"
	"fmt"

	"github.com/mzums/keysnap/internal/models"
)

type ShortcutStatsR struct {
	db QueryI
}

func NewShortcutStatsRepository(db QueryI) *ShortcutStatsR {
	return &ShortcutStatsR{db: db}
}

// Weakest returns the shortcuts answered wrongly most often, worst first.
func (s *ShortcutStatsR) Weakest(ctx context.Context, limit int) ([]models.ShortcutStats, error) {
	if limit <= 0 {
		return []models.ShortcutStats{}, nil
	}

	query := s.db.Rebind(`
		SELECT
			shortcut,
			description,
			category,
			COUNT(*) AS attempts,
			SUM(CASE WHEN is_correct THEN 0 ELSE 1 END) AS misses
		FROM quiz_results
		GROUP BY shortcut, description, category
		HAVING SUM(CASE WHEN is_correct THEN 0 ELSE 1 END) > 0
		ORDER BY misses DESC, attempts DESC, shortcut ASC
		LIMIT ?
	`)

	stats := []models.ShortcutStats{}
	err := s.db.SelectContext(ctx, &stats, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get weakest shortcuts: %w", err)
	}

	return stats, nil
}
