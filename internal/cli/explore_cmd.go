package cli

import (
	"fmt"

	"github.com/alexanderramin/pathsense/internal/cli/formatter"
	"github.com/alexanderramin/pathsense/internal/explore"
	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "explore FILE",
		Short: "List the career paths in a candidates file",
		Long: "Reads candidate career paths (JSON or YAML, either a {\"career_paths\": [...]} " +
			"envelope or a bare list) and shows them. Nothing is chosen.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := app.explorer(args[0]).Explore(cmd.Context(), explore.Profile{Goal: goal})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCandidates(paths))
			return nil
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", "", "What you want to become")
	_ = cmd.MarkFlagRequired("goal")
	return cmd
}

func newChooseCmd(app *App, user func() string) *cobra.Command {
	var goal, role string

	cmd := &cobra.Command{
		Use:   "choose FILE",
		Short: "Choose a career path and start its roadmap",
		Long: "Binds the candidate whose role matches --role as your roadmap. Any previous " +
			"roadmap is replaced and its progress is not carried over.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := app.explorer(args[0])
			profile := explore.Profile{Goal: goal}

			if role == "" {
				paths, err := svc.Explore(ctx, profile)
				if err != nil {
					return err
				}
				if len(paths) != 1 {
					return fmt.Errorf("%s has %d career paths; pick one with --role", args[0], len(paths))
				}
				role = paths[0].Role
			}

			res, err := svc.Choose(ctx, user(), profile, role)
			if err != nil {
				return err
			}
			r := res.Record.Roadmap
			fmt.Fprintf(cmd.OutOrStdout(), "Chose %s: %s, %s.\n",
				formatter.Bold(r.ChosenRole),
				formatter.Plural(len(r.Modules), "module"),
				formatter.Plural(r.TopicCount(), "topic"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(r, res.Phase))
			return nil
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", "", "What you want to become")
	cmd.Flags().StringVarP(&role, "role", "r", "", "Role of the career path to choose")
	_ = cmd.MarkFlagRequired("goal")
	return cmd
}
