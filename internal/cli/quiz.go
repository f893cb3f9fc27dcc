package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mzums/keysnap/internal/models"
	"github.com/mzums/keysnap/internal/service"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func NewQuizCommand(svc QuizSI, opts RootOptions) *cobra.Command {
	var (
		difficulty string
		rounds     int
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Quiz yourself: pick the description of each shortcut",
		Long: "Answer with the option number. Type r to reset the score and q to quit.\n" +
			"Any other input counts as a wrong answer.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := opts.Difficulty
			if cmd.Flags().Changed("difficulty") {
				parsed, err := models.ParseDifficulty(difficulty)
				if err != nil {
					return err
				}
				d = parsed
			}
			return runQuiz(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), svc, d, rounds)
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", opts.Difficulty.String(), "easy | normal | hard")
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 0, "number of questions (0 = until q or end of input)")

	return cmd
}

func runQuiz(ctx context.Context, r io.Reader, w io.Writer, svc QuizSI, difficulty models.Difficulty, rounds int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	in := bufio.NewScanner(r)

	for asked := 0; rounds <= 0 || asked < rounds; asked++ {
		round, ok := svc.NewQuiz(difficulty)
		if !ok {
			fmt.Fprintln(w, "📭 No shortcuts to quiz on yet. Add some with `keysnap add`.")
			return nil
		}

		fmt.Fprintf(w, "\n❓ %d. What does %s do?\n", asked+1, round.QuestionShortcut)
		for i, opt := range round.Options {
			fmt.Fprintf(w, "  %d) %s\n", i+1, opt)
		}

		text, more := readAnswer(in, w, svc)
		if !more {
			break
		}

		res, err := svc.Answer(ctx, parseOption(text))
		if err != nil {
			return err
		}

		score := svc.Score()
		if res.Correct {
			fmt.Fprintf(w, "✅ Correct! (%d/%d)\n", score.Score, score.Total)
		} else {
			fmt.Fprintf(w, "❌ Wrong. %s is %q. (%d/%d)\n", round.QuestionShortcut, res.CorrectDescription, score.Score, score.Total)
		}
	}

	if err := in.Err(); err != nil {
		return err
	}

	score := svc.Score()
	fmt.Fprintf(w, "\n🏁 Final score: %d/%d\n", score.Score, score.Total)
	return nil
}

// readAnswer prompts until it gets something other than a score reset.
// more is false on end of input or when the user quits.
func readAnswer(in *bufio.Scanner, w io.Writer, svc QuizSI) (text string, more bool) {
	for {
		fmt.Fprint(w, "> ")
		if !in.Scan() {
			return "", false
		}
		text = strings.TrimSpace(in.Text())
		switch strings.ToLower(text) {
		case "q", "quit":
			return "", false
		case "r", "reset":
			svc.ResetScore()
			fmt.Fprintln(w, "🔄 Score reset.")
			continue
		}
		return text, true
	}
}

// parseOption maps 1-based user input to an option index. Anything that is
// not a number becomes -1, which the engine scores as wrong.
func parseOption(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil {
		return -1
	}
	return n - 1
}

func NewStatsCommand(svc QuizSI) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show quiz history and the shortcuts you miss most",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out := cmd.OutOrStdout()

			stats, err := svc.QuizStats(ctx)
			if err != nil {
				if errors.Is(err, service.ErrHistoryDisabled) {
					fmt.Fprintln(out, "Quiz history is disabled.")
					return nil
				}
				return err
			}

			fmt.Fprintf(out, "📚 Total answers: %d\n", stats.TotalCount)
			fmt.Fprintf(out, "✅ Right: %d\n", stats.RightCount)
			fmt.Fprintf(out, "❌ Wrong: %d\n", stats.WrongCount)

			weakest, err := svc.Weakest(ctx, limit)
			if err != nil {
				return err
			}
			if len(weakest) == 0 {
				return nil
			}

			fmt.Fprintln(out, "\nMost missed:")
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Shortcut", "Description", "Category", "Misses", "Attempts"})
			table.SetAutoWrapText(false)
			for _, s := range weakest {
				table.Append([]string{s.Shortcut, s.Description, s.Category, strconv.Itoa(s.Misses), strconv.Itoa(s.Attempts)})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 5, "how many weak shortcuts to show")

	return cmd
}
