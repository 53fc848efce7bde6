// Package text renders query results as a plain listing for interactive
// terminal sessions.
package text

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
	"go.errdex.dev/errdex/internal/ui/output"
	"go.errdex.dev/errdex/internal/ui/style"
)

// Presenter implements ports.Presenter for humans. One record per line,
// styled through the shared UI palette; launcher concerns such as rerun
// hints are ignored.
type Presenter struct {
	out io.Writer
}

var _ ports.Presenter = (*Presenter)(nil)

// NewPresenter creates a Presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	if w == nil {
		w = os.Stdout
	}

	lipglossProfile(output.New(w))

	return &Presenter{out: w}
}

// Present writes the result as a listing with a leading status line.
func (p *Presenter) Present(res domain.QueryResult) error {
	var b strings.Builder

	if res.State == domain.CacheMissing {
		writeLoading(&b, res)
		return p.flush(b.String())
	}

	writeHeader(&b, res)

	if res.Advisory != nil {
		writeAdvisory(&b, *res.Advisory)
	}

	if len(res.Records) == 0 {
		b.WriteString(noteStyle.Render("  "+emptyNote(res.Query)) + "\n")
		return p.flush(b.String())
	}

	writeRecords(&b, res.Records)

	return p.flush(b.String())
}

func writeLoading(b *strings.Builder, res domain.QueryResult) {
	b.WriteString(stateDot(res.State) + " Still loading error definitions\n")

	note := "  The first scan is running, try again in a moment."
	if !res.Updating {
		note = "  No error definitions are cached yet, run \"errdex update\"."
	}
	b.WriteString(noteStyle.Render(note) + "\n")
}

func writeHeader(b *strings.Builder, res domain.QueryResult) {
	head := countLabel(len(res.Records))
	if res.Query != "" {
		head += fmt.Sprintf(" for %q", res.Query)
	}
	head += " · cache " + res.State.String()
	if res.Updating {
		head += ", refresh running"
	}

	b.WriteString(stateDot(res.State) + " " + headerStyle.Render(head) + "\n")
}

func writeAdvisory(b *strings.Builder, rel domain.Release) {
	line := "Update available: errdex " + rel.Version
	if rel.URL != "" {
		line += " · " + rel.URL
	}

	b.WriteString(adviceStyle.Render(style.Warning+" "+line) + "\n")
}

func writeRecords(b *strings.Builder, records []domain.ErrorRecord) {
	numWidth, nameWidth := 0, 0
	for _, r := range records {
		numWidth = max(numWidth, len(r.Number))
		nameWidth = max(nameWidth, len(r.Name))
	}

	for _, r := range records {
		num := numberStyle(r.Domain).Render(fmt.Sprintf("%*s", numWidth, r.Number))
		name := fmt.Sprintf("%-*s", nameWidth, r.Name)

		line := "  " + num + "  " + name
		if r.Description != "" {
			line += "  " + r.Description
		}
		line += "  " + fileStyle.Render("("+filepath.Base(r.SourceFile)+")")

		b.WriteString(line + "\n")
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

func emptyNote(query string) string {
	if query == "" {
		return "The cached snapshot has no error definitions."
	}
	return fmt.Sprintf("No error codes match %q.", query)
}

func (p *Presenter) flush(s string) error {
	if _, err := io.WriteString(p.out, s); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}
