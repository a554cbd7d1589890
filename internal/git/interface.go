package git

import (
	"context"
)

// GitClient provides the version control operations used when a new app is
// created. A client is bound to one working tree.
type GitClient interface {
	// Available reports whether a git binary can be executed.
	Available() bool

	// Repository operations
	Init() error
	AddAll() error
	Commit(message string) error

	// Context support for cancellation
	WithContext(ctx context.Context) GitClient
}
