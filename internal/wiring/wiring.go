// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/coord/internal/adapters/config"
	_ "go.trai.ch/coord/internal/adapters/coursier"
	_ "go.trai.ch/coord/internal/adapters/fs"
	_ "go.trai.ch/coord/internal/adapters/lockfile"
	_ "go.trai.ch/coord/internal/adapters/logger"
	_ "go.trai.ch/coord/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/coord/internal/app"
	_ "go.trai.ch/coord/internal/engine/request"
)
