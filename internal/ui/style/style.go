// Package style provides shared UI styling primitives including domain colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"go.errdex.dev/errdex/internal/core/domain"
)

// Base Colors.
var (
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Domain Colors.
var (
	MachBlue     = lipgloss.Color("#3B82F6")
	PosixViolet  = lipgloss.Color("#8B5CF6")
	CocoaOrange  = lipgloss.Color("#F97316")
	CarbonAmber  = lipgloss.Color("#D97706")
	UnknownSlate = Slate
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// DomainColor maps an error domain to its display color.
func DomainColor(d domain.Domain) lipgloss.Color {
	switch d {
	case domain.DomainMach:
		return MachBlue
	case domain.DomainPOSIX:
		return PosixViolet
	case domain.DomainCocoa:
		return CocoaOrange
	case domain.DomainCarbon:
		return CarbonAmber
	default:
		return UnknownSlate
	}
}

// StateColor maps a cache state to its display color.
func StateColor(s domain.CacheState) lipgloss.Color {
	switch s {
	case domain.CacheFresh:
		return Green
	case domain.CacheStale:
		return Yellow
	case domain.CacheMissing:
		return Red
	default:
		return UnknownSlate
	}
}
