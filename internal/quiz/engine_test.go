package quiz

import (
	"fmt"
	"testing"

	"github.com/mzums/keysnap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(seed uint64, records []models.Shortcut) *Engine {
	e := NewEngine(NewRandom(seed), zap.NewNop())
	e.Refresh(records)
	return e
}

// catalogFixture has unique descriptions so each one maps back to a category.
func catalogFixture() []models.Shortcut {
	return []models.Shortcut{
		{Shortcut: "Ctrl+C", Description: "Copy", Category: "Edit"},
		{Shortcut: "Ctrl+V", Description: "Paste", Category: "Edit"},
		{Shortcut: "Ctrl+X", Description: "Cut", Category: "Edit"},
		{Shortcut: "Ctrl+Z", Description: "Undo", Category: "Edit"},
		{Shortcut: "Ctrl+Y", Description: "Redo", Category: "Edit"},
		{Shortcut: "Ctrl+S", Description: "Save", Category: "File"},
		{Shortcut: "Ctrl+O", Description: "Open", Category: "File"},
		{Shortcut: "Ctrl+N", Description: "New file", Category: "File"},
		{Shortcut: "Ctrl+F", Description: "Find", Category: "Search"},
		{Shortcut: "F3", Description: "Find next", Category: "Search"},
	}
}

func categoryOf(records []models.Shortcut) map[string]string {
	out := make(map[string]string, len(records))
	for _, r := range records {
		out[r.Description] = r.Category
	}
	return out
}

func countOf(options []string, want string) int {
	n := 0
	for _, o := range options {
		if o == want {
			n++
		}
	}
	return n
}

func TestEngine_NewRoundEmpty(t *testing.T) {
	t.Parallel()

	e := newTestEngine(1, nil)
	round, ok := e.NewRound(models.DifficultyNormal)

	assert.False(t, ok)
	assert.Empty(t, round.Options)

	_, err := e.Answer(0)
	require.ErrorIs(t, err, models.ErrInvalidState)
}

func TestEngine_RoundInvariants(t *testing.T) {
	t.Parallel()

	records := catalogFixture()
	cats := categoryOf(records)

	for _, difficulty := range []models.Difficulty{models.DifficultyEasy, models.DifficultyNormal, models.DifficultyHard} {
		for seed := uint64(0); seed < 200; seed++ {
			e := newTestEngine(seed, records)
			round, ok := e.NewRound(difficulty)
			require.True(t, ok)

			name := fmt.Sprintf("%s/seed=%d", difficulty, seed)
			assert.LessOrEqual(t, len(round.Options), MaxOptions, name)
			assert.Equal(t, 1, countOf(round.Options, round.CorrectDescription), name)
			assert.Equal(t, round.CorrectDescription, round.Options[round.CorrectOption], name)
			assert.Equal(t, difficulty, round.Difficulty, name)

			seen := map[string]bool{}
			for i, opt := range round.Options {
				assert.False(t, seen[opt], "%s: duplicate option %q", name, opt)
				seen[opt] = true
				if i == round.CorrectOption {
					continue
				}
				switch difficulty {
				case models.DifficultyEasy:
					assert.Equal(t, round.QuestionCategory, cats[opt], name)
				case models.DifficultyHard:
					assert.NotEqual(t, round.QuestionCategory, cats[opt], name)
				}
			}
		}
	}
}

func TestEngine_OptionCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		records    []models.Shortcut
		difficulty models.Difficulty
		want       int
	}{
		{
			name:       "single record",
			records:    []models.Shortcut{{Shortcut: "Ctrl+C", Description: "Copy", Category: "Edit"}},
			difficulty: models.DifficultyNormal,
			want:       1,
		},
		{
			name: "all descriptions identical",
			records: []models.Shortcut{
				{Shortcut: "Ctrl+C", Description: "Copy", Category: "Edit"},
				{Shortcut: "Ctrl+Insert", Description: "Copy", Category: "Edit"},
				{Shortcut: "Cmd+C", Description: "Copy", Category: "Mac"},
			},
			difficulty: models.DifficultyNormal,
			want:       1,
		},
		{
			name: "duplicate distractor descriptions count once",
			records: []models.Shortcut{
				{Shortcut: "Ctrl+C", Description: "Copy", Category: "Edit"},
				{Shortcut: "Ctrl+V", Description: "Paste", Category: "Edit"},
				{Shortcut: "Shift+Insert", Description: "Paste", Category: "Edit"},
			},
			difficulty: models.DifficultyNormal,
			want:       2,
		},
		{
			name: "hard with a single category",
			records: []models.Shortcut{
				{Shortcut: "Ctrl+C", Description: "Copy", Category: "Edit"},
				{Shortcut: "Ctrl+V", Description: "Paste", Category: "Edit"},
				{Shortcut: "Ctrl+X", Description: "Cut", Category: "Edit"},
			},
			difficulty: models.DifficultyHard,
			want:       1,
		},
		{
			name: "easy with each record in its own category",
			records: []models.Shortcut{
				{Shortcut: "Ctrl+C", Description: "Copy", Category: "Edit"},
				{Shortcut: "Ctrl+S", Description: "Save", Category: "File"},
				{Shortcut: "Ctrl+F", Description: "Find", Category: "Search"},
			},
			difficulty: models.DifficultyEasy,
			want:       1,
		},
		{
			name:       "normal with a large catalog is capped",
			records:    catalogFixture(),
			difficulty: models.DifficultyNormal,
			want:       MaxOptions,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for seed := uint64(0); seed < 20; seed++ {
				e := newTestEngine(seed, tt.records)
				round, ok := e.NewRound(tt.difficulty)
				require.True(t, ok)
				assert.Len(t, round.Options, tt.want)
				assert.Equal(t, round.CorrectDescription, round.Options[round.CorrectOption])
			}
		})
	}
}

func TestEngine_Deterministic(t *testing.T) {
	t.Parallel()

	a := newTestEngine(42, catalogFixture())
	b := newTestEngine(42, catalogFixture())

	for i := 0; i < 10; i++ {
		ra, _ := a.NewRound(models.DifficultyNormal)
		rb, _ := b.NewRound(models.DifficultyNormal)
		assert.Equal(t, ra, rb)
	}
}

func TestEngine_QuestionCoverage(t *testing.T) {
	t.Parallel()

	records := catalogFixture()
	e := newTestEngine(7, records)

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		round, ok := e.NewRound(models.DifficultyNormal)
		require.True(t, ok)
		seen[round.QuestionShortcut] = true
	}
	assert.Len(t, seen, len(records))
}

func TestEngine_AnswerScoring(t *testing.T) {
	t.Parallel()

	e := newTestEngine(3, catalogFixture())

	round, ok := e.NewRound(models.DifficultyNormal)
	require.True(t, ok)

	res, err := e.Answer(round.CorrectOption)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, round.CorrectDescription, res.CorrectDescription)
	assert.Equal(t, models.Score{Score: 1, Total: 1}, e.Score())

	_, err = e.Answer(round.CorrectOption)
	require.ErrorIs(t, err, models.ErrInvalidState)
	assert.Equal(t, models.Score{Score: 1, Total: 1}, e.Score())

	round, ok = e.NewRound(models.DifficultyNormal)
	require.True(t, ok)
	wrong := (round.CorrectOption + 1) % len(round.Options)

	res, err = e.Answer(wrong)
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, round.CorrectDescription, res.CorrectDescription)
	assert.Equal(t, models.Score{Score: 1, Total: 2}, e.Score())
}

func TestEngine_AnswerOutOfRange(t *testing.T) {
	t.Parallel()

	for _, option := range []int{-1, MaxOptions, 1 << 20} {
		e := newTestEngine(5, catalogFixture())
		_, ok := e.NewRound(models.DifficultyNormal)
		require.True(t, ok)

		res, err := e.Answer(option)
		require.NoError(t, err)
		assert.False(t, res.Correct)
		assert.Equal(t, models.Score{Score: 0, Total: 1}, e.Score())

		_, pending := e.Current()
		assert.False(t, pending)
	}
}

func TestEngine_ResetScore(t *testing.T) {
	t.Parallel()

	e := newTestEngine(9, catalogFixture())
	round, _ := e.NewRound(models.DifficultyEasy)
	_, err := e.Answer(round.CorrectOption)
	require.NoError(t, err)

	pending, _ := e.NewRound(models.DifficultyEasy)
	e.ResetScore()

	assert.Equal(t, models.Score{}, e.Score())
	current, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, pending, current)
	assert.Equal(t, len(catalogFixture()), e.Size())
}

func TestEngine_RefreshKeepsPendingRound(t *testing.T) {
	t.Parallel()

	e := newTestEngine(11, catalogFixture())
	round, ok := e.NewRound(models.DifficultyNormal)
	require.True(t, ok)

	e.Refresh(nil)

	res, err := e.Answer(round.CorrectOption)
	require.NoError(t, err)
	assert.True(t, res.Correct)

	_, ok = e.NewRound(models.DifficultyNormal)
	assert.False(t, ok)
}

func TestEngine_RoundIsCopy(t *testing.T) {
	t.Parallel()

	e := newTestEngine(13, catalogFixture())
	round, ok := e.NewRound(models.DifficultyNormal)
	require.True(t, ok)

	want := round.Options[round.CorrectOption]
	round.Options[round.CorrectOption] = "tampered"

	current, _ := e.Current()
	assert.Equal(t, want, current.Options[current.CorrectOption])
}
