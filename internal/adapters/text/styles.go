package text

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/ui/style"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	adviceStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	fileStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)

// lipglossProfile pins the global lipgloss renderer to the profile of the
// presenter's output so styles degrade together with it.
func lipglossProfile(out *termenv.Output) {
	lipgloss.SetColorProfile(out.Profile)
}

// numberStyle colors the code column by its domain.
func numberStyle(d domain.Domain) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(style.DomainColor(d))
}

// stateDot renders the leading status marker for a cache state.
func stateDot(s domain.CacheState) string {
	marker := style.Dot
	if s == domain.CacheMissing {
		marker = style.Circle
	}

	return lipgloss.NewStyle().
		Foreground(style.StateColor(s)).
		Render(marker)
}
