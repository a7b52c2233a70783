package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fulfilled/tripprep/internal/airports"
	"github.com/fulfilled/tripprep/internal/cli/formatter"
)

func newAirportsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "airports QUERY",
		Short: "Search the departure-airport catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results := airports.Search(query)
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No airports match %q.\n", query)
				return nil
			}
			for _, a := range results {
				fmt.Fprintln(cmd.OutOrStdout(), a.Label())
			}
			return nil
		},
	}
}

func newPlacesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "places QUERY",
		Short: "Suggest destinations for a typed prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Places == nil {
				return fmt.Errorf("place lookup is not configured")
			}
			query := strings.Join(args, " ")
			results, err := app.Places.Suggest(context.Background(), query)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No places match %q.\n", query)
				return nil
			}
			for _, s := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					s.Label, formatter.Dim(fmt.Sprintf("(%s, %s)", s.Lat, s.Lon)))
			}
			return nil
		},
	}
}
