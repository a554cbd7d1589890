package cli

import (
	"errors"
	"strings"

	"github.com/jakoblorz/go-ignite-jhipster/internal/bootstrap"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/settings"
	"github.com/jakoblorz/go-ignite-jhipster/internal/tui"
	"github.com/spf13/cobra"
)

// NewCommand handles the new command
type NewCommand struct {
	deps    Dependencies
	version string
}

// NewNewCommand creates a new new command
func NewNewCommand(deps Dependencies, version string) *cobra.Command {
	cmd := &NewCommand{deps: deps, version: version}

	cobraCmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new React Native app for a JHipster backend",
		Long: `Creates the app <name> in the current directory.

Installs React Native, copies the JHipster boilerplate over it, merges the
package.json, links native libraries, adds the Ignite plugins and commits the
result. Options without a flag are read from IGNITE_JHIPSTER_* environment
variables or .ignite-jhipster.yaml, and asked for otherwise.`,
		Example: `  # Ask for every option
  ignite-jhipster new MyApp

  # Non-interactive
  ignite-jhipster new MyApp --auth-type jwt --search-engine=false --dev-screens --animatable=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	flags := cobraCmd.Flags()
	flags.String(settings.KeyAuthType, "", "Authentication type of the backend: jwt, oauth2 or session")
	flags.Bool(settings.KeySearchEngine, false, "The backend uses Elasticsearch")
	flags.Bool(settings.KeyDevScreens, false, "Add the Ignite development screens")
	flags.Bool(settings.KeyAnimatable, false, "Add react-native-animatable")
	flags.Bool(settings.KeySkipGit, false, "Do not create a git repository")
	flags.Bool(settings.KeySkipLint, false, "Do not add the standard linter")
	flags.StringP(settings.KeyBoilerplate, "b", settings.DefaultBoilerplate, "Ignite boilerplate plugin to add")
	flags.String(settings.KeyReactNativeVersion, settings.DefaultReactNativeVersion, "React Native version, or latest")

	return cobraCmd
}

// Run executes the new command
func (c *NewCommand) Run(cmd *cobra.Command, args []string) error {
	out := tui.NewPrinter(cmd.OutOrStdout())

	name := ""
	if len(args) > 0 {
		name = strings.TrimSpace(args[0])
	}
	if name == "" {
		out.Info("ignite-jhipster new <name>\n")
		out.Info("A name is required.")
		return nil
	}

	cwd, err := workingDir(cmd, c.deps.FS)
	if err != nil {
		return err
	}

	s, err := settings.Load(cwd, cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	if file := s.ConfigFile(); file != "" {
		logger.Debug("settings loaded", "file", file)
	}

	opts, err := s.BootstrapOptions(name)
	if err != nil {
		return report(out, err)
	}

	orch := bootstrap.New(bootstrap.Dependencies{
		FS:       c.deps.FS,
		Runner:   c.deps.Runner,
		Git:      c.deps.Git,
		Releases: c.deps.Releases,
		Prompter: c.deps.Prompter,
	}, cmd.OutOrStdout(), logger,
		bootstrap.WithVersion(c.version),
		bootstrap.WithMarkdownStyle(c.deps.MarkdownStyle),
	)

	if _, err := orch.Bootstrap(cmd.Context(), cwd, opts); err != nil {
		return report(out, err)
	}

	return nil
}

// report prints validation problems as information and passes every other
// error through.
func report(out *tui.Printer, err error) error {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		out.Warn("%s", validation.Error())
		return nil
	}
	return err
}
