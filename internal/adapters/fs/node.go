package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/intersense/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the shallow walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ScannerNodeID is the unique identifier for the project scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// HasherNodeID is the unique identifier for the structural hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	// Walker Node (concrete implementation needed by Scanner)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.ProjectScanner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(walker), nil
		},
	})

	graft.Register(graft.Node[ports.StructuralHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StructuralHasher, error) {
			return NewHasher(), nil
		},
	})
}
