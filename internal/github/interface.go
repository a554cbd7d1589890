package github

import (
	"context"
	"time"
)

// ReleaseClient provides the GitHub release lookups used to resolve
// framework versions.
type ReleaseClient interface {
	ListReleases(ctx context.Context, owner, repo string) ([]*Release, error)
}

// Release represents a GitHub release
type Release struct {
	ID          int64
	TagName     string
	Name        string
	Draft       bool
	Prerelease  bool
	CreatedAt   time.Time
	PublishedAt time.Time
}
