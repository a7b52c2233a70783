package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check ID",
		Short: "Work through a saved plan's packing list interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("check requires an interactive terminal")
			}

			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			saved, err := app.Plans.Get(ctx, id)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(newChecklistModel(saved.Plan)).Run()
			return err
		},
	}
}
