package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authsmith/authsmith/pkg/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "authsmith",
	Short: "authsmith: add authentication to a Go web project",
	Long: `authsmith installs optional authentication capabilities into an
existing Go web project. It resolves feature presets and toggles into one
capability set, plans the matching database migrations, patches the
application config, and generates model, route, view, and mailer
boilerplate.`,
	Version: version.GetVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		InitDependencies(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("authsmith %s\n", version.GetFullVersion()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(catalogCmd)
}
