package cli

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmcalloway/proforma/internal/cli/formatter"
	"github.com/jmcalloway/proforma/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Timeline service.TimelineService
}

// NewRootCmd creates the top-level "proforma" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "proforma",
		Short: "Project timeline scheduler",
	}

	// Accept underscore flag spellings (--dry_run) alongside the canonical
	// dashed forms.
	root.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	root.AddCommand(
		newProjectCmd(app),
		newTimelineCmd(app),
	)

	return root
}
