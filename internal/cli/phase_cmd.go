package cli

import (
	"fmt"

	"github.com/alexanderramin/pathsense/internal/cli/formatter"
	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App, user func() string) *cobra.Command {
	return &cobra.Command{
		Use:       "phase [explore|learn|achieve]",
		Short:     "Show or change the current phase",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"explore", "learn", "achieve", "exploring", "learning", "achieving"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				phase, err := domain.ParseSessionPhase(args[0])
				if err != nil {
					return err
				}
				if err := app.Tracker.SetPhase(ctx, user(), phase); err != nil {
					return err
				}
			}
			phase, err := app.Tracker.Phase(ctx, user())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.PhaseBadge(phase))
			return nil
		},
	}
}
