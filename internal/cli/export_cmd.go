package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fulfilled/tripprep/internal/export"
)

// formatFlag restricts --format to the supported export formats.
type formatFlag string

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }
func (f *formatFlag) Type() string   { return "ics|csv" }

func (f *formatFlag) Set(v string) error {
	switch v {
	case "ics", "csv":
		*f = formatFlag(v)
		return nil
	}
	return fmt.Errorf("unknown format %q, expected ics or csv", v)
}

func newExportCmd(app *App) *cobra.Command {
	format := formatFlag("ics")
	var outPath string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a saved plan as an ICS calendar or CSV task list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			saved, err := app.Plans.Get(ctx, id)
			if err != nil {
				return err
			}

			var content string
			if format == "csv" {
				content, err = export.CSV(saved.Plan)
			} else {
				content, err = export.ICS(saved.Plan)
			}
			if err != nil {
				return fmt.Errorf("exporting plan: %w", err)
			}

			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "Export format (ics|csv)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")

	return cmd
}
