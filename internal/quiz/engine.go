// Package quiz builds multiple-choice rounds over a snapshot of shortcuts.
//
// The engine cycles Idle -> AwaitingAnswer -> Idle. The score survives
// across rounds until ResetScore.
package quiz

import (
	"fmt"

	"github.com/mzums/keysnap/internal/models"
	"go.uber.org/zap"
)

const (
	MaxOptions     = 4
	MaxDistractors = MaxOptions - 1
)

type state int

const (
	stateIdle state = iota
	stateAwaitingAnswer
)

// Engine is not safe for concurrent use.
type Engine struct {
	rnd   Random
	log   *zap.Logger
	pool  []models.Shortcut
	round models.QuizRound
	state state
	score models.Score
}

func NewEngine(rnd Random, log *zap.Logger) *Engine {
	return &Engine{
		rnd: rnd,
		log: log,
	}
}

// Refresh replaces the working set. A pending round is left as is.
func (e *Engine) Refresh(records []models.Shortcut) {
	e.pool = make([]models.Shortcut, len(records))
	copy(e.pool, records)
}

func (e *Engine) Size() int {
	return len(e.pool)
}

// NewRound draws a question and up to three distractors. ok is false when
// the working set is empty. A pending round is discarded unscored.
func (e *Engine) NewRound(difficulty models.Difficulty) (round models.QuizRound, ok bool) {
	if len(e.pool) == 0 {
		e.log.Debug("no shortcuts to quiz on")
		return models.QuizRound{}, false
	}

	qi := e.rnd.IntN(len(e.pool))
	question := e.pool[qi]

	candidates := e.distractorPool(qi, difficulty)
	sampled := e.sample(candidates, MaxDistractors)

	options := make([]string, 0, len(sampled)+1)
	options = append(options, question.Description)
	options = append(options, sampled...)
	e.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correct := 0
	for i, opt := range options {
		if opt == question.Description {
			correct = i
			break
		}
	}

	e.round = models.QuizRound{
		QuestionShortcut:   question.Shortcut,
		QuestionCategory:   question.Category,
		CorrectDescription: question.Description,
		Options:            options,
		CorrectOption:      correct,
		Difficulty:         difficulty,
	}
	e.state = stateAwaitingAnswer

	if len(options) < MaxOptions {
		e.log.Debug("small option set",
			zap.String("shortcut", question.Shortcut),
			zap.Stringer("difficulty", difficulty),
			zap.Int("options", len(options)),
		)
	}

	return e.copyRound(), true
}

// distractorPool returns the distinct descriptions, in catalog order, of
// every record other than qi that differ from the question's description
// and pass the difficulty filter.
func (e *Engine) distractorPool(qi int, difficulty models.Difficulty) []string {
	question := e.pool[qi]
	seen := map[string]bool{question.Description: true}

	var out []string
	for i, rec := range e.pool {
		if i == qi || seen[rec.Description] {
			continue
		}
		sameCategory := rec.Category == question.Category
		switch difficulty {
		case models.DifficultyEasy:
			if !sameCategory {
				continue
			}
		case models.DifficultyHard:
			if sameCategory {
				continue
			}
		}
		seen[rec.Description] = true
		out = append(out, rec.Description)
	}
	return out
}

// sample picks up to n items without replacement with a partial
// Fisher-Yates shuffle. candidates is reordered in place.
func (e *Engine) sample(candidates []string, n int) []string {
	if len(candidates) < n {
		n = len(candidates)
	}
	for i := 0; i < n; i++ {
		j := i + e.rnd.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:n]
}

// Answer scores the pending round. An out-of-range option counts as wrong.
func (e *Engine) Answer(option int) (models.AnswerResult, error) {
	if e.state != stateAwaitingAnswer {
		return models.AnswerResult{}, fmt.Errorf("answer option %d: %w", option, models.ErrInvalidState)
	}

	correct := option == e.round.CorrectOption
	e.score.Total++
	if correct {
		e.score.Score++
	}
	e.state = stateIdle

	return models.AnswerResult{
		Correct:            correct,
		CorrectDescription: e.round.CorrectDescription,
	}, nil
}

// Current returns the round awaiting an answer, if any.
func (e *Engine) Current() (models.QuizRound, bool) {
	if e.state != stateAwaitingAnswer {
		return models.QuizRound{}, false
	}
	return e.copyRound(), true
}

func (e *Engine) Score() models.Score {
	return e.score
}

func (e *Engine) ResetScore() {
	e.score = models.Score{}
}

func (e *Engine) copyRound() models.QuizRound {
	r := e.round
	r.Options = make([]string, len(e.round.Options))
	copy(r.Options, e.round.Options)
	return r
}
