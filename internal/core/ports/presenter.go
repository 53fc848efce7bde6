package ports

import "go.errdex.dev/errdex/internal/core/domain"

// Presenter renders a query result for the user or the host launcher.
//
//go:generate mockgen -source=presenter.go -destination=mocks/mock_presenter.go -package=mocks
type Presenter interface {
	// Present writes the result to the presenter's output.
	Present(res domain.QueryResult) error
}
