// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/intersense/internal/adapters/cache"
	_ "go.trai.ch/intersense/internal/adapters/config"
	_ "go.trai.ch/intersense/internal/adapters/fs"
	_ "go.trai.ch/intersense/internal/adapters/git"
	_ "go.trai.ch/intersense/internal/adapters/logger"
	_ "go.trai.ch/intersense/internal/adapters/manifest"
	_ "go.trai.ch/intersense/internal/adapters/telemetry"
	_ "go.trai.ch/intersense/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/intersense/internal/app"
	_ "go.trai.ch/intersense/internal/engine/detector"
	_ "go.trai.ch/intersense/internal/engine/staleness"
)
