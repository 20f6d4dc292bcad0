package cli

import (
	"fmt"

	"github.com/alexanderramin/pathsense/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App, user func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List every career path you have chosen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Tracker.History(cmd.Context(), user())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(records))
			return nil
		},
	}
}
