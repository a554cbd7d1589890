package runner

import (
	"context"
	"os/exec"
	"strings"

	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
)

// MockRunner records commands instead of running them.
type MockRunner struct {
	commands []Command

	// failures maps a command-line prefix to the exit code it returns.
	failures map[string]int
	// paths maps a binary name to its fake location for LookPath.
	paths map[string]string

	// OnRun, when set, is invoked for every command before failures are
	// checked. Tests use it to simulate side effects such as files written
	// by the base template installer.
	OnRun func(cmd Command) error
}

// NewMockRunner creates a runner where every command succeeds.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		failures: make(map[string]int),
		paths:    make(map[string]string),
	}
}

// FailOn makes every command whose line starts with prefix exit with code.
func (m *MockRunner) FailOn(prefix string, code int) {
	m.failures[prefix] = code
}

// AddBinary makes LookPath find name.
func (m *MockRunner) AddBinary(name string) {
	m.paths[name] = "/usr/bin/" + name
}

// Commands returns the recorded commands in order.
func (m *MockRunner) Commands() []Command {
	return append([]Command(nil), m.commands...)
}

// Lines returns the recorded command lines in order.
func (m *MockRunner) Lines() []string {
	lines := make([]string, len(m.commands))
	for i, c := range m.commands {
		lines[i] = c.String()
	}
	return lines
}

func (m *MockRunner) Run(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.commands = append(m.commands, cmd)

	if m.OnRun != nil {
		if err := m.OnRun(cmd); err != nil {
			return err
		}
	}

	line := cmd.String()
	for prefix, code := range m.failures {
		if strings.HasPrefix(line, prefix) {
			return &models.CommandError{
				Command:  append([]string{cmd.Name}, cmd.Args...),
				ExitCode: code,
			}
		}
	}

	return nil
}

func (m *MockRunner) LookPath(name string) (string, error) {
	if p, ok := m.paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}
