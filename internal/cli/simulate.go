package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomi-backend/internal/config"
	"github.com/heartmarshall/yomi-backend/internal/service/study/fsrs"
)

type simulateOptions struct {
	ratings         string
	start           string
	retention       float64
	learningSteps   string
	relearningSteps string
	maxInterval     int
	weights         string
	fuzz            bool
	seed            uint64
}

func newSimulateCmd() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a rating sequence through the scheduler",
		Long: `Creates a fresh card and reviews it once per rating, each review
happening exactly when the card falls due. Prints the resulting state,
memory and interval after every review.`,
		Example: "  srsctl simulate --ratings good,good,again,good --fuzz --seed 7",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ratings, "ratings", "good,good,good,good", "Comma-separated ratings: again, hard, good, easy")
	f.StringVar(&opts.start, "start", "", "RFC 3339 time of the first review (default: now, UTC)")
	f.Float64Var(&opts.retention, "retention", fsrs.DefaultDesiredRetention, "Desired retention in (0, 1)")
	f.StringVar(&opts.learningSteps, "learning-steps", "1m,10m", "Learning steps")
	f.StringVar(&opts.relearningSteps, "relearning-steps", "10m", "Relearning steps")
	f.IntVar(&opts.maxInterval, "max-interval", fsrs.DefaultMaxIntervalDays, "Maximum interval in days")
	f.StringVar(&opts.weights, "weights", "", "Comma-separated 21-value weight override")
	f.BoolVar(&opts.fuzz, "fuzz", false, "Apply interval fuzzing")
	f.Uint64Var(&opts.seed, "seed", 1, "Fuzz seed")

	return cmd
}

func runSimulate(out io.Writer, opts simulateOptions) error {
	ratings, err := parseRatings(opts.ratings)
	if err != nil {
		return err
	}

	start := time.Now().UTC()
	if opts.start != "" {
		start, err = time.Parse(time.RFC3339, opts.start)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		start = start.UTC()
	}

	params, err := simulateParameters(opts)
	if err != nil {
		return err
	}

	//nolint:gosec // reproducible jitter for simulation
	scheduler, err := fsrs.NewScheduler(params, fsrs.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed))))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tRATING\tSTATE\tSTEP\tSTABILITY\tDIFFICULTY\tINTERVAL\tDUE")

	card := fsrs.NewCard(uuid.New(), start)
	for i, rating := range ratings {
		reviewedAt := card.Due
		card, _, err = scheduler.ReviewCard(card, rating, reviewedAt, nil)
		if err != nil {
			return fmt.Errorf("review %d: %w", i+1, err)
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.4f\t%.4f\t%s\t%s\n",
			i+1,
			rating,
			card.State,
			formatStep(card.Step),
			card.Memory.Stability,
			card.Memory.Difficulty,
			formatInterval(card.Due.Sub(reviewedAt)),
			card.Due.Format(time.RFC3339),
		)
	}

	return tw.Flush()
}

func simulateParameters(opts simulateOptions) (fsrs.Parameters, error) {
	params := fsrs.DefaultParameters()
	params.DesiredRetention = opts.retention
	params.MaxIntervalDays = opts.maxInterval
	params.EnableFuzz = opts.fuzz

	var err error
	if params.LearningSteps, err = config.ParseSteps(opts.learningSteps); err != nil {
		return params, fmt.Errorf("invalid --learning-steps: %w", err)
	}
	if params.RelearningSteps, err = config.ParseSteps(opts.relearningSteps); err != nil {
		return params, fmt.Errorf("invalid --relearning-steps: %w", err)
	}

	weights, err := config.ParseWeights(opts.weights)
	if err != nil {
		return params, fmt.Errorf("invalid --weights: %w", err)
	}
	if weights != nil {
		params.W = weights
	}

	return params, nil
}

func parseRatings(raw string) ([]fsrs.Rating, error) {
	var ratings []fsrs.Rating
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		var r fsrs.Rating
		if err := r.UnmarshalText([]byte(p)); err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	if len(ratings) == 0 {
		return nil, fmt.Errorf("--ratings must name at least one rating")
	}
	return ratings, nil
}

func formatStep(step *int) string {
	if step == nil {
		return "-"
	}
	return fmt.Sprint(*step)
}

// formatInterval prints sub-day intervals as durations and longer ones in days.
func formatInterval(d time.Duration) string {
	const day = 24 * time.Hour
	if d < day {
		return d.String()
	}
	return fmt.Sprintf("%dd", int(d/day))
}
