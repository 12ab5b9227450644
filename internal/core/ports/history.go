package ports

import (
	"context"
	"time"
)

// Rename is a path move recorded in version control history.
type Rename struct {
	From string
	To   string
}

// History defines the interface for querying version control history.
//
//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks
type History interface {
	// IsRepository reports whether root is the top of a work tree.
	IsRepository(root string) bool
	// IsShallow reports whether the repository at root has truncated history.
	IsShallow(ctx context.Context, root string) (bool, error)
	// ChangedSince lists paths added, copied, deleted or modified in commits since t.
	ChangedSince(ctx context.Context, root string, t time.Time) ([]string, error)
	// RenamedSince lists renames in commits since t.
	RenamedSince(ctx context.Context, root string, t time.Time) ([]Rename, error)
}
