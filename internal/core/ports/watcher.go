package ports

import (
	"context"
	"iter"
)

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp is the kind of change reported for a path.
type WatchOp uint8

const (
	// OpCreate reports a new file or directory.
	OpCreate WatchOp = iota
	// OpWrite reports modified file contents.
	OpWrite
	// OpRemove reports a deleted file or directory.
	OpRemove
	// OpRename reports the old name of a renamed entry.
	OpRename
)

// WatchEvent is a single change under the watched project.
type WatchEvent struct {
	// Path is slash-separated and relative to the watched root.
	Path      string
	Operation WatchOp
}

// Watcher reports changes below a project root until stopped.
type Watcher interface {
	// Start registers root and its subdirectories, skipping VCS metadata,
	// dependency trees and the intersense state directory.
	Start(ctx context.Context, root string) error
	// Stop releases the underlying watches. Events ends afterwards.
	Stop() error
	// Events yields changes in arrival order.
	Events() iter.Seq[WatchEvent]
}
