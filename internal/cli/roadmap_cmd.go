package cli

import (
	"fmt"

	"github.com/alexanderramin/pathsense/internal/cli/formatter"
	"github.com/alexanderramin/pathsense/internal/service"
	"github.com/spf13/cobra"
)

func newRoadmapCmd(app *App, user func() string) *cobra.Command {
	return &cobra.Command{
		Use:     "roadmap",
		Aliases: []string{"learn"},
		Short:   "Show your roadmap with module and topic numbers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := app.Tracker.Roadmap(ctx, user())
			if err != nil {
				return err
			}
			phase, err := app.Tracker.Phase(ctx, user())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(r, phase))
			return nil
		},
	}
}

func newTopicCmd(app *App, user func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "topic MODULE TOPIC",
		Short: "Show a topic's description and resources",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, t, err := topicArgs(args)
			if err != nil {
				return err
			}
			topic, err := app.Tracker.Topic(cmd.Context(), user(), m, t)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTopic(topic))
			return nil
		},
	}
}

func newToggleCmd(app *App, user func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle MODULE TOPIC",
		Short: "Flip a topic between completed and not completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, t, err := topicArgs(args)
			if err != nil {
				return err
			}
			res, err := app.Tracker.ToggleTopic(cmd.Context(), user(), m, t)
			if err != nil {
				return err
			}
			printToggle(cmd, res)
			return nil
		},
	}
}

func newSetTopicCmd(app *App, user func() string, name string, completed bool) *cobra.Command {
	short := "Mark a topic as completed"
	if !completed {
		short = "Mark a topic as not completed"
	}
	return &cobra.Command{
		Use:   name + " MODULE TOPIC",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, t, err := topicArgs(args)
			if err != nil {
				return err
			}
			res, err := app.Tracker.SetTopic(cmd.Context(), user(), m, t, completed)
			if err != nil {
				return err
			}
			printToggle(cmd, res)
			return nil
		},
	}
}

func printToggle(cmd *cobra.Command, res *service.ToggleResult) {
	mp := res.Progress.PerModule[res.Module]
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n",
		formatter.CompletionMark(res.Completed),
		res.Title,
		formatter.Dim(fmt.Sprintf("%s %d/%d · %d%%", mp.Title, mp.CompletedCount, mp.TotalCount, formatter.Round(mp.Percent))),
	)
}
