// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// launcherEnvVar is set by the launcher host when it invokes the tool.
const launcherEnvVar = "alfred_version"

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeFeedback forces the launcher script-filter JSON renderer.
	ModeFeedback
	// ModeText forces the human-readable terminal renderer.
	ModeText
)

// DetectEnvironment returns the recommended output mode based on the
// environment. It checks for a launcher invocation and whether stdout is
// a TTY.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if os.Getenv(launcherEnvVar) != "" || !isTTY {
		return ModeFeedback
	}
	return ModeText
}

// ResolveMode applies a user override to auto-detection.
// override should be one of: "auto", "feedback", "text", or empty.
func ResolveMode(autoDetected OutputMode, override string) OutputMode {
	switch override {
	case "feedback":
		return ModeFeedback
	case "text":
		return ModeText
	case "auto", "":
		return autoDetected
	default:
		return autoDetected
	}
}
