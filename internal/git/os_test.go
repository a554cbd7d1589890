package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jakoblorz/go-ignite-jhipster/internal/git"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

// gitOutput runs a git command in dir and returns its trimmed output.
func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoErrorf(t, err, "git %v failed\nOutput: %s", args, output)
	return strings.TrimSpace(string(output))
}

func writeFile(t *testing.T, dir, filename, content string) {
	t.Helper()
	path := filepath.Join(dir, filename)
	require.NoErrorf(t, os.WriteFile(path, []byte(content), 0644), "failed to write file %s", path)
}

func TestOSGitClient_InitialCommit(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	writeFile(t, dir, "package.json", "{}\n")

	client := git.NewOSGitClient(dir)
	require.True(t, client.Available())

	require.NoError(t, client.Init())
	require.DirExists(t, filepath.Join(dir, ".git"))

	require.NoError(t, client.AddAll())
	require.NoError(t, client.Commit("Initial commit."))

	require.Equal(t, "Initial commit.", gitOutput(t, dir, "log", "-1", "--format=%s"))
	require.Equal(t, "package.json", gitOutput(t, dir, "ls-files"))
}

func TestOSGitClient_CommitWithoutChangesFails(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	client := git.NewOSGitClient(dir)
	require.NoError(t, client.Init())

	err := client.Commit("empty")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to commit")
}

func TestOSGitClient_CancelledContext(t *testing.T) {
	requireGit(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := git.NewOSGitClient(t.TempDir()).WithContext(ctx)
	require.Error(t, client.Init())
}

func TestMockGitClient(t *testing.T) {
	m := git.NewMockGitClient()

	require.Error(t, m.AddAll(), "add before init")
	require.NoError(t, m.Init())
	require.Error(t, m.Commit("nothing staged"))
	require.NoError(t, m.AddAll())
	require.NoError(t, m.Commit("Initial commit."))

	require.True(t, m.IsRepo())
	require.Equal(t, []git.MockCommit{{Message: "Initial commit."}}, m.Commits())
	require.Equal(t, []string{"add", "init", "commit", "add", "commit"}, m.Calls())
}
