package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/authsmith/authsmith/internal/config"
	"github.com/authsmith/authsmith/internal/resolver"
)

// installFlags holds the command-line values for the install command.
type installFlags struct {
	projectRoot  string
	model        string
	repo         string
	migrationDir string
	configFile   string
	loggedOutURL string
	yes          bool
	headless     bool

	noConfig      bool
	noWeb         bool
	noViews       bool
	noMigrations  bool
	noTemplates   bool
	noModels      bool
	noControllers bool
}

var instFlags installFlags

var installCmd = &cobra.Command{
	Use:   "install [capability|preset|no-<name>]...",
	Short: "Install authentication capabilities into the current project",
	Long: `Install resolves the requested presets and capability toggles in the
order given and generates everything the resulting feature set needs.

Arguments are applied left to right: a later "no-<capability>" removes the
capability even when an earlier preset enabled it.

  authsmith install full no-trackable
  authsmith install full_confirmable --model "Member members"
  authsmith install authenticatable recoverable --no-views`,
	RunE: runInstall,
}

func init() {
	f := installCmd.Flags()
	f.StringVarP(&instFlags.projectRoot, "project-root", "C", ".", "host project root directory")
	f.StringVar(&instFlags.model, "model", "", `target model override: "Name table"`)
	f.StringVar(&instFlags.repo, "repo", "", "persistence-layer package import path")
	f.StringVar(&instFlags.migrationDir, "migration-dir", "", "directory for generated migrations")
	f.StringVar(&instFlags.configFile, "config-file", "", "host config file to patch")
	f.StringVar(&instFlags.loggedOutURL, "logged-out-url", "", "redirect target for signed-out users")
	f.BoolVarP(&instFlags.yes, "yes", "y", false, "answer yes to confirmation prompts")
	f.BoolVar(&instFlags.headless, "headless", false, "never prompt; use defaults")

	f.BoolVar(&instFlags.noConfig, "no-config", false, "skip patching the config file")
	f.BoolVar(&instFlags.noWeb, "no-web", false, "skip the web entry scaffold")
	f.BoolVar(&instFlags.noViews, "no-views", false, "skip view scaffolds")
	f.BoolVar(&instFlags.noMigrations, "no-migrations", false, "skip migration generation")
	f.BoolVar(&instFlags.noTemplates, "no-templates", false, "skip mailer templates")
	f.BoolVar(&instFlags.noModels, "no-models", false, "skip the model scaffold")
	f.BoolVar(&instFlags.noControllers, "no-controllers", false, "skip controller scaffolds")
}

func runInstall(cmd *cobra.Command, args []string) error {
	d := GetDeps()
	if d == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	if instFlags.headless {
		d.Headless.ForceHeadless(true)
	}
	d.Headless.SetAssumeYes(instFlags.yes)

	settings, err := config.LoadSettings(instFlags.projectRoot)
	if err != nil {
		return err
	}

	// Order matters: settings first, then positional toggles, then flags,
	// so explicit command-line input always wins.
	opts := settings.ControlOptions()
	opts = append(opts, resolver.ParseArgs(args)...)
	opts = append(opts, controlOptions(cmd.Flags())...)

	caps, controls, err := resolver.Resolve(opts)
	if err != nil {
		return err
	}

	env, err := config.DiscoverEnvironment(instFlags.projectRoot, nil)
	if err != nil {
		return err
	}

	run, err := config.Build(caps, controls, env)
	if err != nil {
		return err
	}

	report, err := d.Pipeline.Run(cmd.Context(), run)
	if err != nil {
		return err
	}

	return d.Printer.Markdown(report.Markdown())
}

// controlOptions converts the set command-line flags into pipeline-control
// options, appended after the positional toggles.
func controlOptions(flags *pflag.FlagSet) []resolver.Option {
	var opts []resolver.Option

	stage := func(flagName, controlName string, disabled bool) {
		if flags.Changed(flagName) && disabled {
			opts = append(opts, resolver.Bool(controlName, false))
		}
	}
	stage("no-config", "config", instFlags.noConfig)
	stage("no-web", "web", instFlags.noWeb)
	stage("no-views", "views", instFlags.noViews)
	stage("no-migrations", "migrations", instFlags.noMigrations)
	stage("no-templates", "templates", instFlags.noTemplates)
	stage("no-models", "models", instFlags.noModels)
	stage("no-controllers", "controllers", instFlags.noControllers)

	if instFlags.model != "" {
		opts = append(opts, resolver.String("model", instFlags.model))
	}
	if instFlags.repo != "" {
		opts = append(opts, resolver.String("repo", instFlags.repo))
	}
	if instFlags.migrationDir != "" {
		opts = append(opts, resolver.String("migration-dir", instFlags.migrationDir))
	}
	if instFlags.configFile != "" {
		opts = append(opts, resolver.String("config-file", instFlags.configFile))
	}
	if instFlags.loggedOutURL != "" {
		opts = append(opts, resolver.String("logged-out-url", instFlags.loggedOutURL))
	}

	return opts
}
