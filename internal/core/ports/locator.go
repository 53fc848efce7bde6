package ports

import (
	"context"

	"go.errdex.dev/errdex/internal/core/domain"
)

//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks

// FileSearcher runs the external file metadata search for error headers.
type FileSearcher interface {
	// Search returns the paths reported by the search tool, one per line of
	// its output, in tool order. A missing tool or non-zero exit is an error.
	Search(ctx context.Context) ([]string, error)
}

// HeaderLocator assembles the complete set of header files to scan.
type HeaderLocator interface {
	// Locate returns the two fixed headers followed by discovered ones,
	// deduplicated by path, in discovery order.
	Locate(ctx context.Context) ([]domain.ErrorFile, error)
}
