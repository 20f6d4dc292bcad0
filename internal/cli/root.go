package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/pathsense/internal/cli/formatter"
	"github.com/alexanderramin/pathsense/internal/config"
	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/alexanderramin/pathsense/internal/explore"
	"github.com/alexanderramin/pathsense/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Tracker service.TrackerService

	// NewProvider opens the candidate source named on the command line.
	// Defaults to a file-backed provider.
	NewProvider func(path string) explore.Provider

	// Observer receives use-case events from services built per command.
	Observer service.UseCaseObserver

	// DefaultUser is the learner used when --user is not given.
	DefaultUser string

	// IsTerminal reports whether stdout is a terminal; used by --color=auto.
	IsTerminal func() bool
}

func (a *App) provider(path string) explore.Provider {
	if a.NewProvider != nil {
		return a.NewProvider(path)
	}
	return explore.NewFileProvider(path)
}

func (a *App) explorer(path string) service.ExploreService {
	return service.NewExploreService(a.provider(path), a.Tracker, a.Observer)
}

// NewRootCmd creates the top-level "pathsense" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var user string
	var color colorFlag

	root := &cobra.Command{
		Use:           "pathsense",
		Short:         "Career roadmap tracker",
		Long:          "Explore career paths, follow a learning roadmap and track what you have completed.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	defaultUser := app.DefaultUser
	if defaultUser == "" {
		defaultUser = "local"
	}
	root.PersistentFlags().StringVarP(&user, "user", "u", defaultUser, "Learner the command acts for")
	addColorFlag(root.PersistentFlags(), &color)
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if !color.set {
			return
		}
		isTerminal := app.IsTerminal != nil && app.IsTerminal()
		formatter.SetColorEnabled(config.Config{Color: color.mode}.UseColor(isTerminal))
	}

	currentUser := func() string { return user }

	root.AddCommand(
		newExploreCmd(app),
		newChooseCmd(app, currentUser),
		newRoadmapCmd(app, currentUser),
		newTopicCmd(app, currentUser),
		newToggleCmd(app, currentUser),
		newSetTopicCmd(app, currentUser, "done", true),
		newSetTopicCmd(app, currentUser, "undo", false),
		newProgressCmd(app, currentUser),
		newPhaseCmd(app, currentUser),
		newExportCmd(app, currentUser),
		newImportCmd(app, currentUser),
		newHistoryCmd(app, currentUser),
	)

	return root
}

// DescribeError adds a next step to errors a learner can act on.
func DescribeError(err error) string {
	var rangeErr *domain.IndexOutOfRangeError
	switch {
	case errors.Is(err, domain.ErrNoActiveRoadmap):
		return fmt.Sprintf("%v\nChoose a career path first: pathsense choose FILE --role ROLE", err)
	case errors.As(err, &rangeErr):
		return fmt.Sprintf("%v\nRun 'pathsense roadmap' to see module and topic numbers.", err)
	case errors.Is(err, domain.ErrMalformedInput):
		return fmt.Sprintf("invalid input: %v", err)
	default:
		return err.Error()
	}
}
