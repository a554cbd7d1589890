package github

import (
	"context"
	"fmt"
	"sync"
	"time"
)

var _ ReleaseClient = (*MockClient)(nil)

// MockClient implements ReleaseClient for testing
type MockClient struct {
	mu       sync.RWMutex
	releases map[string][]*Release // key: "owner/repo", newest first
	nextID   int64

	// Hooks for testing error scenarios
	ListReleasesError error
}

// NewMockClient creates a new MockClient
func NewMockClient() *MockClient {
	return &MockClient{
		releases: make(map[string][]*Release),
	}
}

// AddRelease publishes a release; later calls are treated as newer.
func (m *MockClient) AddRelease(owner, repo, tag string, prerelease bool) *Release {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	r := &Release{
		ID:          m.nextID,
		TagName:     tag,
		Name:        tag,
		Prerelease:  prerelease,
		CreatedAt:   time.Now(),
		PublishedAt: time.Now(),
	}

	key := fmt.Sprintf("%s/%s", owner, repo)
	m.releases[key] = append([]*Release{r}, m.releases[key]...)
	return r
}

func (m *MockClient) ListReleases(ctx context.Context, owner, repo string) ([]*Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ListReleasesError != nil {
		return nil, m.ListReleasesError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]*Release(nil), m.releases[fmt.Sprintf("%s/%s", owner, repo)]...), nil
}
