package cli

import (
	"github.com/spf13/cobra"

	"github.com/gdennie/create-rx-app/internal/branding"
	"github.com/gdennie/create-rx-app/internal/config"
	"github.com/gdennie/create-rx-app/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates ReactXP application skeletons with web, iOS,
Android, and Windows targets wired up and no build configuration to maintain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		ui.SetVerbose(verbose)
		ui.SetColorMode(config.Get(config.KeyColor))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
