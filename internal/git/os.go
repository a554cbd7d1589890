package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSGitClient implements GitClient using real git commands
type OSGitClient struct {
	ctx context.Context
	dir string
}

// NewOSGitClient creates a client operating on the working tree at dir.
func NewOSGitClient(dir string) *OSGitClient {
	return &OSGitClient{
		ctx: context.Background(),
		dir: dir,
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx: ctx,
		dir: g.dir,
	}
}

// Available reports whether git is on PATH.
func (g *OSGitClient) Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Init creates an empty repository in the working tree.
func (g *OSGitClient) Init() error {
	if _, err := g.run("init"); err != nil {
		return fmt.Errorf("failed to init repository: %w", err)
	}
	return nil
}

// AddAll stages every file in the working tree.
func (g *OSGitClient) AddAll() error {
	if _, err := g.run("add", "."); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// Commit records the staged changes.
func (g *OSGitClient) Commit(message string) error {
	if _, err := g.run("commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (g *OSGitClient) run(args ...string) (string, error) {
	cmd := exec.CommandContext(g.ctx, "git", args...)
	cmd.Dir = g.dir

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(out.String()), nil
}
