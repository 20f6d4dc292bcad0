package cli

import (
	"fmt"

	"github.com/alexanderramin/pathsense/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App, user func() string) *cobra.Command {
	return &cobra.Command{
		Use:     "progress",
		Aliases: []string{"achieve"},
		Short:   "Show per-module progress and completed topics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := app.Tracker.Roadmap(ctx, user())
			if err != nil {
				return err
			}
			snap, err := app.Tracker.Progress(ctx, user())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgress(r.ChosenRole, *snap))
			return nil
		},
	}
}
