package service

import (
	"context"
	"errors"

	"github.com/mzums/keysnap/internal/models"
	"github.com/mzums/keysnap/internal/quiz"
	"go.uber.org/zap"
)

var ErrHistoryDisabled = errors.New("quiz history is disabled")

type QuizS struct {
	catalog CatalogI
	repo    QuizRI
	engine  *quiz.Engine
	seen    uint64
	synced  bool
	log     *zap.Logger
}

func NewQuizService(catalog CatalogI, repo QuizRI, engine *quiz.Engine, log *zap.Logger) *QuizS {
	return &QuizS{
		catalog: catalog,
		repo:    repo,
		engine:  engine,
		log:     log,
	}
}

// refresh reloads the engine's working set when the catalog changed since
// the last round.
func (q *QuizS) refresh() {
	v := q.catalog.Version()
	if q.synced && v == q.seen {
		return
	}
	q.engine.Refresh(q.catalog.List(""))
	q.seen = v
	q.synced = true
	q.log.Debug("quiz working set refreshed", zap.Uint64("version", v), zap.Int("size", q.engine.Size()))
}

// NewQuiz returns false when there is nothing to quiz on.
func (q *QuizS) NewQuiz(difficulty models.Difficulty) (models.QuizRound, bool) {
	q.refresh()
	return q.engine.NewRound(difficulty)
}

// Answer scores the pending round and records it in the history. A history
// failure is logged, not returned.
func (q *QuizS) Answer(ctx context.Context, option int) (models.AnswerResult, error) {
	round, pending := q.engine.Current()

	res, err := q.engine.Answer(option)
	if err != nil {
		return models.AnswerResult{}, err
	}

	if q.repo != nil && pending {
		card := models.QuizCard{
			Shortcut:    round.QuestionShortcut,
			Description: round.CorrectDescription,
			Category:    round.QuestionCategory,
			Difficulty:  round.Difficulty.String(),
			IsCorrect:   res.Correct,
		}
		if err := q.repo.AddQuizResult(ctx, card); err != nil {
			q.log.Warn("failed to record quiz result", zap.String("shortcut", card.Shortcut), zap.Error(err))
		}
	}

	return res, nil
}

func (q *QuizS) Score() models.Score {
	return q.engine.Score()
}

func (q *QuizS) ResetScore() {
	q.engine.ResetScore()
}

func (q *QuizS) QuizStats(ctx context.Context) (models.QuizStats, error) {
	if q.repo == nil {
		return models.QuizStats{}, ErrHistoryDisabled
	}

	stats, err := q.repo.QuizStats(ctx)
	if err != nil {
		q.log.Warn("failed to get quiz stats", zap.Error(err))
		return models.QuizStats{}, err
	}
	return stats, nil
}

func (q *QuizS) Weakest(ctx context.Context, limit int) ([]models.ShortcutStats, error) {
	if q.repo == nil {
		return nil, ErrHistoryDisabled
	}

	stats, err := q.repo.Weakest(ctx, limit)
	if err != nil {
		q.log.Warn("failed to get weakest shortcuts", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	return stats, nil
}
