package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/go-ignite-jhipster/internal/cli"
	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/git"
	"github.com/jakoblorz/go-ignite-jhipster/internal/github"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/prompt"
	"github.com/jakoblorz/go-ignite-jhipster/internal/runner"
	"github.com/jakoblorz/go-ignite-jhipster/internal/workspace"
)

type harness struct {
	fs       filesystem.FileSystem
	runner   *runner.MockRunner
	git      *git.MockGitClient
	prompter *prompt.ScriptedPrompter
}

func (h *harness) execute(t *testing.T, args ...string) string {
	t.Helper()

	releases := github.NewMockClient()
	releases.AddRelease(github.ReactNativeOwner, github.ReactNativeRepo, "v0.50.3", false)

	root := cli.NewRootCommand(cli.Dependencies{
		FS:            h.fs,
		Runner:        h.runner,
		Git:           func(string) git.GitClient { return h.git },
		Releases:      releases,
		Prompter:      h.prompter,
		MarkdownStyle: "notty",
	}, "1.2.3")

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	require.NoError(t, root.ExecuteContext(context.Background()), stderr.String())
	return stdout.String()
}

func kitchensinkBackend(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "kitchensink", "backend"))
	require.NoError(t, err)
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFullWorkflow(t *testing.T) {
	// Setup: empty directory, backend from the kitchensink
	work := t.TempDir()
	app := filepath.Join(work, "MyApp")
	backend := kitchensinkBackend(t)

	h := &harness{
		fs:       filesystem.NewOSFileSystem(),
		runner:   runner.NewMockRunner(),
		git:      git.NewMockGitClient(),
		prompter: prompt.NewScriptedPrompter(backend),
	}
	h.runner.OnRun = func(cmd runner.Command) error {
		if cmd.Name == "npx" && len(cmd.Args) > 1 && cmd.Args[1] == "init" {
			require.NoError(t, os.MkdirAll(filepath.Join(cmd.Dir, "MyApp", "__tests__"), 0755))
			require.NoError(t, os.WriteFile(filepath.Join(cmd.Dir, "MyApp", "package.json"), []byte(`{
  "name": "MyApp",
  "version": "0.0.1",
  "scripts": {"start": "node node_modules/react-native/local-cli/cli.js start"},
  "dependencies": {"react": "16.0.0", "react-native": "0.50.3"}
}`), 0644))
		}
		return nil
	}

	// Test: bootstrap the app
	out := h.execute(t, "new", "MyApp",
		"--cwd", work,
		"--auth-type", "jwt",
		"--search-engine",
		"--dev-screens=false",
		"--animatable=false",
		"--skip-lint",
		"--react-native-version", "0.50.3",
	)
	require.Contains(t, out, "ignited MyApp")
	require.NoDirExists(t, filepath.Join(app, "__tests__"))
	require.FileExists(t, filepath.Join(app, "App", "Services", "Api.js"))
	require.FileExists(t, filepath.Join(app, "App", "Navigation", "EntitiesScreens.js"))
	require.Len(t, h.git.Commits(), 1)

	pkg := readFile(t, filepath.Join(app, "package.json"))
	require.Contains(t, pkg, `"react-native": "0.50.3"`)
	require.Contains(t, pkg, `"ignite-jhipster": "1.2.3"`)

	// Test: the bootstrapped directory is detected as an app
	ws := workspace.New(h.fs)
	require.NoError(t, ws.Detect(filepath.Join(app, "App", "Services")))
	require.Equal(t, app, ws.RootPath)
	require.Equal(t, "MyApp", ws.Project.Name)
	require.True(t, ws.Config.Bool(models.ConfigKeySearchEngine))

	// Test: generate an entity from the backend directory flag
	out = h.execute(t, "generate", "entity", "post", "--cwd", app, "--jh-dir", backend)
	require.Contains(t, out, "Generated Post")
	require.FileExists(t, filepath.Join(app, ".jhipster", "Post.json"))
	require.FileExists(t, filepath.Join(app, "App", "Containers", "Entities", "Post", "PostEntityScreen.js"))
	require.FileExists(t, filepath.Join(app, "App", "Redux", "PostRedux.js"))
	require.FileExists(t, filepath.Join(app, "App", "Sagas", "PostSagas.js"))
	require.FileExists(t, filepath.Join(app, "Tests", "Redux", "PostReduxTest.js"))

	api := readFile(t, filepath.Join(app, "App", "Services", "Api.js"))
	require.Contains(t, api, "const getPosts = (options) => api.get('api/posts', options)")
	require.Contains(t, api, "searchPosts")

	var cfg models.ProjectConfig
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(app, models.ConfigFile))), &cfg))
	require.Equal(t, backend, cfg.JHipsterDirectory())
	require.Equal(t, "MyApp", cfg.String(models.ConfigKeyName))

	// Test: the next entity is looked up through the prompt, offering the
	// remembered backend directory
	out = h.execute(t, "g", "entity", "Tag", "--cwd", app, "--skip-tests")
	require.Contains(t, out, "Generated Tag")
	require.Len(t, h.prompter.Asked(), 1)
	require.Equal(t, backend, h.prompter.Asked()[0].Default)
	require.NoFileExists(t, filepath.Join(app, "Tests", "Redux", "TagReduxTest.js"))

	// Test: regenerating reuses the local copy and leaves shared files alone
	before := readFile(t, filepath.Join(app, "App", "Services", "Api.js"))
	out = h.execute(t, "generate", "entity", "Post", "--cwd", app)
	require.Contains(t, out, "Found the entity config locally")
	require.Contains(t, out, "0 files updated")
	require.Equal(t, before, readFile(t, filepath.Join(app, "App", "Services", "Api.js")))
	require.Len(t, h.prompter.Asked(), 1)
}

func TestGenerateFromLocalCache(t *testing.T) {
	// Setup: an app that already holds the definition, without its shared files
	definition := readFile(t, filepath.Join(kitchensinkBackend(t), ".jhipster", "Blog.json"))
	fs := workspace.NewAppBuilder("/work/MyApp").
		AddEntity(".", "Blog", definition).
		Build()

	h := &harness{
		fs:       fs,
		runner:   runner.NewMockRunner(),
		git:      git.NewMockGitClient(),
		prompter: prompt.NewScriptedPrompter(),
	}

	out := h.execute(t, "generate", "entity", "Blog")
	require.Contains(t, out, "Found the entity config locally")
	require.Contains(t, out, "Generated Blog")
	require.True(t, fs.Exists("/work/MyApp/App/Redux/BlogRedux.js"))
	require.Empty(t, h.prompter.Asked())
	require.Empty(t, h.runner.Lines())
}
