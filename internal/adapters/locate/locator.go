// Package locate assembles the set of error headers scanned by a load pass.
package locate

import (
	"context"
	"os"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
)

// fixedHeader pairs a well-known path with its preassigned domain.
type fixedHeader struct {
	path   string
	domain domain.Domain
}

// Locator produces the deduplicated list of headers to scan. The two fixed
// headers come first, then metadata search hits in tool order.
type Locator struct {
	log      ports.Logger
	searcher ports.FileSearcher
	fixed    []fixedHeader
}

var _ ports.HeaderLocator = (*Locator)(nil)

// NewLocator creates a Locator with the given fixed header paths.
func NewLocator(kernReturnPath, errnoPath string, searcher ports.FileSearcher, log ports.Logger) *Locator {
	return &Locator{
		log:      log,
		searcher: searcher,
		fixed: []fixedHeader{
			{path: kernReturnPath, domain: domain.DomainMach},
			{path: errnoPath, domain: domain.DomainPOSIX},
		},
	}
}

// Locate returns the headers to scan. The fixed headers are always
// included, present on disk or not; a missing one surfaces as a per-file
// read error during loading. A failed metadata search fails the whole
// operation with no partial fallback to the fixed headers.
func (l *Locator) Locate(ctx context.Context) ([]domain.ErrorFile, error) {
	var files []domain.ErrorFile
	seen := make(map[string]struct{})

	for _, fixed := range l.fixed {
		if _, dup := seen[fixed.path]; dup {
			continue
		}
		seen[fixed.path] = struct{}{}
		files = append(files, domain.ErrorFile{Path: fixed.path, Domain: fixed.domain})
	}

	found, err := l.searcher.Search(ctx)
	if err != nil {
		return nil, err
	}

	for _, path := range found {
		if _, dup := seen[path]; dup {
			continue
		}
		// Search indexes lag the filesystem; a reported path may be gone.
		if !fileExists(path) {
			l.log.Debug("search result no longer exists", "path", path)
			continue
		}
		seen[path] = struct{}{}
		files = append(files, domain.ErrorFile{Path: path, Domain: domain.ClassifyPath(path)})
	}

	l.log.Debug("located error headers", "fixed", len(l.fixed), "discovered", len(found), "scanning", len(files))

	return files, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
