// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.errdex.dev/errdex/internal/adapters/config"
	_ "go.errdex.dev/errdex/internal/adapters/job"
	_ "go.errdex.dev/errdex/internal/adapters/locate"
	_ "go.errdex.dev/errdex/internal/adapters/logger"
	_ "go.errdex.dev/errdex/internal/adapters/release"
	_ "go.errdex.dev/errdex/internal/adapters/spotlight"
	_ "go.errdex.dev/errdex/internal/adapters/store"
	_ "go.errdex.dev/errdex/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.errdex.dev/errdex/internal/app"
	_ "go.errdex.dev/errdex/internal/engine/loader"
)
