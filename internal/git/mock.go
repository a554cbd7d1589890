package git

import (
	"context"
	"errors"
	"sync"
)

// MockCommit represents a recorded commit
type MockCommit struct {
	Message string
}

// MockGitClient implements GitClient for testing by recording operations
type MockGitClient struct {
	mu        sync.RWMutex
	available bool
	isRepo    bool
	staged    bool
	commits   []MockCommit
	calls     []string
	ctx       context.Context

	// Hooks for testing error scenarios
	InitError   error
	AddAllError error
	CommitError error
}

// NewMockGitClient creates a mock where git is installed and no repository
// exists yet.
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		available: true,
		ctx:       context.Background(),
	}
}

func (m *MockGitClient) WithContext(ctx context.Context) GitClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
	return m
}

// SetAvailable sets whether the git binary is present
func (m *MockGitClient) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

func (m *MockGitClient) Available() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.available
}

func (m *MockGitClient) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "init")
	if err := m.ctx.Err(); err != nil {
		return err
	}
	if m.InitError != nil {
		return m.InitError
	}
	m.isRepo = true
	return nil
}

func (m *MockGitClient) AddAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "add")
	if m.AddAllError != nil {
		return m.AddAllError
	}
	if !m.isRepo {
		return errors.New("not a git repository")
	}
	m.staged = true
	return nil
}

func (m *MockGitClient) Commit(message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "commit")
	if m.CommitError != nil {
		return m.CommitError
	}
	if !m.staged {
		return errors.New("nothing to commit")
	}
	m.commits = append(m.commits, MockCommit{Message: message})
	m.staged = false
	return nil
}

// IsRepo reports whether Init has been called successfully.
func (m *MockGitClient) IsRepo() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isRepo
}

// Commits returns the recorded commits in order.
func (m *MockGitClient) Commits() []MockCommit {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]MockCommit(nil), m.commits...)
}

// Calls returns the operations invoked, in order.
func (m *MockGitClient) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.calls...)
}
