// Package build holds build metadata injected at link time.
package build

// Version is the application version, set via ldflags on release builds.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build timestamp.
var Date = "unknown"
