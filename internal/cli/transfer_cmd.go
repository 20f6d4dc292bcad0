package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pathsense/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App, user func() string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write your roadmap and its progress as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Tracker.Export(cmd.Context(), user())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported roadmap to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default stdout)")
	return cmd
}

func newImportCmd(app *App, user func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Restore a roadmap written by export, including its progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import: %w", err)
			}
			res, err := app.Tracker.Import(cmd.Context(), user(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s with %d/%d topics completed.\n",
				formatter.Bold(res.Record.ChosenRole),
				res.Progress.CompletedTopics(),
				res.Progress.TotalTopics())
			return nil
		},
	}
}
