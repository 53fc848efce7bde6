// Package loader runs the extraction pipeline across all located headers.
package loader

import (
	"context"
	"os"
	"runtime"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
	"go.errdex.dev/errdex/internal/engine/extract"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Loader produces the full record sequence for one refresh pass.
type Loader struct {
	locator ports.HeaderLocator
	log     ports.Logger
	limit   int
}

// New creates a Loader with parallelism bounded by the CPU count.
func New(locator ports.HeaderLocator, log ports.Logger) *Loader {
	return &Loader{
		locator: locator,
		log:     log,
		limit:   runtime.NumCPU(),
	}
}

// Load locates every header and extracts its definitions. Files are processed
// concurrently but results keep locate order, then match order within a file,
// so repeated runs over an unchanged file set yield identical sequences.
//
// A file that cannot be read or yields nothing contributes zero records and
// the load continues; only locating itself can fail the whole pass. An empty
// result is valid and must still be cached by the caller.
func (l *Loader) Load(ctx context.Context) ([]domain.ErrorRecord, error) {
	files, err := l.locator.Locate(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to locate error headers")
	}

	perFile := make([][]domain.ErrorRecord, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)
	for i, file := range files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			perFile[i] = l.loadFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, recs := range perFile {
		total += len(recs)
	}
	records := make([]domain.ErrorRecord, 0, total)
	for _, recs := range perFile {
		records = append(records, recs...)
	}

	l.log.Info("loaded error definitions", "files", len(files), "records", len(records))
	return records, nil
}

func (l *Loader) loadFile(file domain.ErrorFile) []domain.ErrorRecord {
	text, err := os.ReadFile(file.Path)
	if err != nil {
		readErr := zerr.Wrap(err, domain.ErrHeaderReadFailed.Error())
		l.log.Error(zerr.With(readErr, "path", file.Path))
		return nil
	}

	defs, rule := extract.Extract(string(text))
	if len(defs) == 0 {
		l.log.Warn("header yielded no definitions", "path", file.Path)
		return nil
	}

	records := make([]domain.ErrorRecord, len(defs))
	for i, d := range defs {
		records[i] = domain.ErrorRecord{
			Number:      d.Number,
			Name:        d.Name,
			Description: d.Description,
			SourceFile:  file.Path,
			Domain:      file.Domain,
		}
	}
	l.log.Debug("extracted definitions", "path", file.Path, "rule", rule, "count", len(records))
	return records
}
