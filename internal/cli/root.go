package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/fulfilled/tripprep/internal/places"
	"github.com/fulfilled/tripprep/internal/plan"
	"github.com/fulfilled/tripprep/internal/store"
	"github.com/fulfilled/tripprep/internal/suggest"
)

// PlanStore persists built plans together with their trip input.
type PlanStore interface {
	Save(ctx context.Context, trip domain.TripInput, p *plan.Plan) (string, error)
	Update(ctx context.Context, id string, p *plan.Plan) error
	Get(ctx context.Context, id string) (*store.SavedPlan, error)
	List(ctx context.Context) ([]store.Summary, error)
	Delete(ctx context.Context, id string) error
}

// App holds references to the collaborators used by CLI commands.
type App struct {
	Plans   PlanStore
	Weather WeatherService
	Places  PlaceSearch
	Suggest suggest.Service

	// IsInteractive reports whether stdin is attached to a terminal.
	// The form and checklist commands refuse to run without one.
	IsInteractive func() bool
}

// WeatherService fetches a weather digest for the trip window.
type WeatherService interface {
	Summary(ctx context.Context, destination, startDate, endDate string) (*domain.WeatherSummary, error)
}

// PlaceSearch suggests destinations for a typed prefix.
type PlaceSearch interface {
	Suggest(ctx context.Context, query string) ([]places.Suggestion, error)
}

// NewRootCmd creates the top-level "tripprep" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tripprep",
		Short: "Packing lists and prep timelines for upcoming trips",
	}

	root.AddCommand(
		newPlanCmd(app),
		newNewCmd(app),
		newShowCmd(app),
		newListCmd(app),
		newDeleteCmd(app),
		newExportCmd(app),
		newAirportsCmd(app),
		newPlacesCmd(app),
		newCheckCmd(app),
	)

	return root
}
