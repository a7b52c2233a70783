package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fulfilled/tripprep/internal/cli/formatter"
	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/fulfilled/tripprep/internal/plan"
)

func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("plan ID is required")
	}

	summaries, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact ID match
	for _, s := range summaries {
		if s.ID == input {
			return s.ID, nil
		}
	}

	// 2. ID prefix match
	var matches []string
	for _, s := range summaries {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newPlanCmd(app *App) *cobra.Command {
	var noWeather, enrich, save, asJSON bool

	cmd := &cobra.Command{
		Use:   "plan FILE",
		Short: "Build a plan from a trip JSON file (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			trip, err := readTripInput(cmd, args[0])
			if err != nil {
				return err
			}

			// A pre-supplied weather summary in the file wins over a fetch.
			if !noWeather && trip.Weather == nil && app.Weather != nil {
				attachWeather(ctx, cmd, app, &trip)
			}

			p, err := plan.Build(trip)
			if err != nil {
				return err
			}

			if enrich {
				p = enrichPlan(ctx, cmd, app, trip, p)
			}

			if save {
				id, err := app.Plans.Save(ctx, trip, p)
				if err != nil {
					return fmt.Errorf("saving plan: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved plan %s\n\n", id)
			}

			return writePlan(cmd, p, asJSON)
		},
	}

	cmd.Flags().BoolVar(&noWeather, "no-weather", false, "Skip the weather outlook fetch")
	cmd.Flags().BoolVar(&enrich, "ai", false, "Enrich the plan with AI suggestions")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the plan for later show/export/check")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")

	return cmd
}

func readTripInput(cmd *cobra.Command, path string) (domain.TripInput, error) {
	var raw []byte
	var err error

	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.TripInput{}, fmt.Errorf("reading trip input: %w", err)
	}

	var trip domain.TripInput
	if err := json.Unmarshal(raw, &trip); err != nil {
		return domain.TripInput{}, fmt.Errorf("parsing trip input: %w", err)
	}
	return trip, nil
}

// attachWeather fetches the outlook and attaches it to the trip. A failed
// fetch is reported and skipped; the plan builds without weather items.
func attachWeather(ctx context.Context, cmd *cobra.Command, app *App, trip *domain.TripInput) {
	end := trip.EndDate
	if end == "" {
		end = trip.StartDate
	}
	ws, err := app.Weather.Summary(ctx, trip.Destination, trip.StartDate, end)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "weather outlook unavailable: %v\n", err)
		return
	}
	trip.Weather = ws
}

// enrichPlan merges AI suggestions into the plan. Disabled or failed
// suggestion calls leave the rule-based plan as the final answer.
func enrichPlan(ctx context.Context, cmd *cobra.Command, app *App, trip domain.TripInput, p *plan.Plan) *plan.Plan {
	if app.Suggest == nil || !app.Suggest.Enabled() {
		fmt.Fprintln(cmd.ErrOrStderr(), "AI suggestions are disabled (set OPENAI_API_KEY to enable)")
		return p
	}
	sugg, err := app.Suggest.Suggest(ctx, trip, p)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "AI suggestions unavailable: %v\n", err)
		return p
	}
	return plan.MergeSuggestions(p, sugg)
}

func writePlan(cmd *cobra.Command, p *plan.Plan, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(p))
	return nil
}
