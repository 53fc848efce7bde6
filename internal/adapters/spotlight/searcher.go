// Package spotlight discovers framework error headers by shelling out to
// the platform file-metadata search tool.
package spotlight

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
	"go.trai.ch/zerr"
)

// nameQuery matches files named exactly Errors.h or mig_errors.h while
// excluding DRCoreErrors.h and NSErrors.h.
const nameQuery = "(kMDItemFSName == 'Errors.h' || kMDItemFSName == 'mig_errors.h') && " +
	"kMDItemFSName != 'DRCoreErrors.h' && kMDItemFSName != 'NSErrors.h'"

// Searcher runs a Spotlight-style metadata query and parses its
// line-oriented output into paths.
type Searcher struct {
	log     ports.Logger
	tool    string
	root    string
	timeout time.Duration
}

var _ ports.FileSearcher = (*Searcher)(nil)

// NewSearcher creates a Searcher invoking tool scoped to root. Every
// Search call is bounded by timeout.
func NewSearcher(tool, root string, timeout time.Duration, log ports.Logger) *Searcher {
	return &Searcher{
		log:     log,
		tool:    tool,
		root:    root,
		timeout: timeout,
	}
}

// Search returns the paths reported by the tool in output order. A missing
// tool, non-zero exit, or timeout fails the whole search; there is no
// partial result.
func (s *Searcher) Search(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.tool, "-onlyin", s.root, nameQuery)

	out, err := cmd.Output()
	if err != nil {
		return nil, s.searchError(ctx, err)
	}

	paths := splitLines(string(out))
	s.log.Debug("metadata search finished", "tool", s.tool, "root", s.root, "paths", len(paths))

	return paths, nil
}

func (s *Searcher) searchError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return zerr.With(
			zerr.With(zerr.Wrap(ctxErr, domain.ErrSearchFailed.Error()), "tool", s.tool),
			"timeout", s.timeout.String(),
		)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		enhanced := zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrSearchFailed.Error()), "tool", s.tool),
			"exit_code", exitErr.ExitCode(),
		)
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			enhanced = zerr.With(enhanced, "stderr", msg)
		}
		return enhanced
	}

	return zerr.With(zerr.Wrap(err, domain.ErrSearchFailed.Error()), "tool", s.tool)
}

func splitLines(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}
