package cli

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-ignite-jhipster/internal/entity"
	"github.com/jakoblorz/go-ignite-jhipster/internal/render"
	"github.com/jakoblorz/go-ignite-jhipster/internal/tui"
	"github.com/jakoblorz/go-ignite-jhipster/internal/workspace"
	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the generate command group.
func NewGenerateCommand(deps Dependencies) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Generate code into an existing app",
	}

	cobraCmd.AddCommand(NewEntityCommand(deps))

	return cobraCmd
}

// EntityCommand handles the generate entity command
type EntityCommand struct {
	deps Dependencies
}

// NewEntityCommand creates a new generate entity command
func NewEntityCommand(deps Dependencies) *cobra.Command {
	cmd := &EntityCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "entity <name>",
		Short: "Generate the screens, state and API methods for a JHipster entity",
		Long: `Generates the files for entity <name> from its JHipster definition.

The definition is read from .jhipster/<Name>.json in the app. When missing it
is copied from the JHipster backend given by --jh-dir, or from a directory you
are asked for. The chosen directory is remembered in ignite/ignite.json.`,
		Example: `  # Use the backend at ../backend
  ignite-jhipster generate entity Foo --jh-dir ../backend

  # Short form, asks for the backend directory when needed
  ignite-jhipster g entity Foo`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("jh-dir", "", "Path to the JHipster backend")
	cobraCmd.Flags().Bool("skip-tests", false, "Do not generate test files")

	return cobraCmd
}

// Run executes the generate entity command
func (c *EntityCommand) Run(cmd *cobra.Command, args []string) error {
	out := tui.NewPrinter(cmd.OutOrStdout())

	name := ""
	if len(args) > 0 {
		name = strings.TrimSpace(args[0])
	}
	if name == "" {
		out.Info("ignite-jhipster generate entity <name>\n")
		out.Info("A name is required.")
		return nil
	}

	jhDir, _ := cmd.Flags().GetString("jh-dir")
	skipTests, _ := cmd.Flags().GetBool("skip-tests")

	root, err := workingDir(cmd, c.deps.FS)
	if err != nil {
		return err
	}

	ws := workspace.New(c.deps.FS)
	if err := ws.Detect(root); err != nil {
		return err
	}
	project := ws.Project

	logger := newLogger(cmd)
	logger.Debug("generating entity", "name", name, "project", project.RootPath, "jhDir", jhDir)

	locator := entity.NewLocator(c.deps.FS, project, c.deps.Prompter, cmd.OutOrStdout(), logger)
	res, err := locator.Locate(cmd.Context(), name, jhDir)
	if err != nil {
		return report(out, err)
	}

	generator := entity.NewGenerator(c.deps.FS, project, render.NewRenderer(), cmd.OutOrStdout(), logger)
	result, err := generator.Generate(cmd.Context(), res, entity.Options{SkipTests: skipTests})
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", res.Name, err)
	}

	out.Success("Generated %s: %d files written, %d files updated", tui.HighlightStyle.Render(res.Name), len(result.Written), len(result.Patched))
	return nil
}
