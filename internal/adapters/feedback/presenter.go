// Package feedback renders query results as launcher script-filter JSON.
package feedback

import (
	"encoding/json"
	"io"
	"path/filepath"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
	"go.trai.ch/zerr"
)

// icon attaches a file icon to an item.
type icon struct {
	Type string `json:"type,omitempty"`
	Path string `json:"path,omitempty"`
}

// text carries the large-type detail view.
type text struct {
	LargeType string `json:"largetype,omitempty"`
}

// item is one script-filter result row.
type item struct {
	UID      string `json:"uid,omitempty"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Arg      string `json:"arg,omitempty"`
	Valid    bool   `json:"valid"`
	Type     string `json:"type,omitempty"`
	Icon     *icon  `json:"icon,omitempty"`
	Text     *text  `json:"text,omitempty"`
}

// document is a complete script-filter response. Rerun asks the launcher
// to re-invoke after that many seconds and is only set while a refresh is
// in flight.
type document struct {
	Rerun float64 `json:"rerun,omitempty"`
	Items []item  `json:"items"`
}

// Presenter implements ports.Presenter for launcher consumption.
type Presenter struct {
	out io.Writer
}

var _ ports.Presenter = (*Presenter)(nil)

// NewPresenter creates a feedback presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Present renders the result as one script-filter JSON document.
func (p *Presenter) Present(res domain.QueryResult) error {
	doc := document{Items: []item{}}

	if res.Rerun > 0 {
		doc.Rerun = res.Rerun.Seconds()
	}

	if res.Advisory != nil {
		doc.Items = append(doc.Items, advisoryItem(res.Advisory))
	}

	switch {
	case res.State == domain.CacheMissing:
		doc.Items = append(doc.Items, loadingItem())
	case res.Updating:
		doc.Items = append(doc.Items, updatingItem())
	}

	if res.State != domain.CacheMissing {
		if len(res.Records) == 0 {
			doc.Items = append(doc.Items, noMatchesItem(res.Query))
		}
		for _, r := range res.Records {
			doc.Items = append(doc.Items, recordItem(r))
		}
	}

	enc := json.NewEncoder(p.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}

	return nil
}

func recordItem(r domain.ErrorRecord) item {
	base := filepath.Base(r.SourceFile)

	subtitle := base
	if r.Description != "" {
		subtitle = r.Description + " — " + base
	}

	return item{
		UID:      r.Number + ":" + r.Name + ":" + base,
		Title:    r.Number + " · " + r.Name,
		Subtitle: subtitle,
		Arg:      r.SourceFile,
		Valid:    true,
		Type:     "file",
		Icon:     &icon{Type: "fileicon", Path: r.SourceFile},
		Text:     &text{LargeType: r.Detail()},
	}
}

func advisoryItem(rel *domain.Release) item {
	return item{
		UID:      "release:" + rel.Version,
		Title:    "Update available: errdex " + rel.Version,
		Subtitle: "Open the release page",
		Arg:      rel.URL,
		Valid:    rel.URL != "",
	}
}

func loadingItem() item {
	return item{
		Title:    "Still loading error definitions",
		Subtitle: "The first scan is running, try again in a moment",
		Valid:    false,
	}
}

func updatingItem() item {
	return item{
		Title:    "Updating error definitions",
		Subtitle: "Serving cached results while the refresh runs",
		Valid:    false,
	}
}

func noMatchesItem(query string) item {
	subtitle := "The cached snapshot has no error definitions"
	if query != "" {
		subtitle = "No error codes match \"" + query + "\""
	}

	return item{
		Title:    "No matching results",
		Subtitle: subtitle,
		Valid:    false,
	}
}
