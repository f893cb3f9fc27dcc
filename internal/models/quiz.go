package models

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyEasy
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyNormal, fmt.Errorf("%w: unknown difficulty %q", ErrValidation, s)
	}
}

// QuizRound is a single question. Options holds up to four distinct
// descriptions and Options[CorrectOption] is always CorrectDescription.
type QuizRound struct {
	QuestionShortcut   string
	QuestionCategory   string
	CorrectDescription string
	Options            []string
	CorrectOption      int
	Difficulty         Difficulty
}

type AnswerResult struct {
	Correct            bool
	CorrectDescription string
}

type Score struct {
	Score int
	Total int
}

// QuizCard is one answered round as kept in the history.
type QuizCard struct {
	Shortcut    string `db:"shortcut"`
	Description string `db:"description"`
	Category    string `db:"category"`
	Difficulty  string `db:"difficulty"`
	IsCorrect   bool   `db:"is_correct"`
}

type QuizStats struct {
	TotalCount int `db:"total_count"`
	RightCount int `db:"right_count"`
	WrongCount int `db:"wrong_count"`
}

type ShortcutStats struct {
	Shortcut    string `db:"shortcut"`
	Description string `db:"description"`
	Category    string `db:"category"`
	Attempts    int    `db:"attempts"`
	Misses      int    `db:"misses"`
}
