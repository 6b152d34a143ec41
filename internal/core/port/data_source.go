package port

import (
	"context"
	"errors"

	"perf-bi/internal/core/domain"
)

// ErrDataSource wraps every failure of the upstream spreadsheet API. The
// HTTP layer maps it to 502 without exposing details.
var ErrDataSource = errors.New("data source unavailable")

// DataSource is the outbound port to the spreadsheet-backed API. It returns
// raw rows for a named dataset (see the domain.Dataset* constants). A
// missing dataset is returned as an empty slice, never nil with a nil
// error. Implementations must be safe for concurrent use.
type DataSource interface {
	// Fetch returns all rows of dataset for the reporting period.
	Fetch(ctx context.Context, dataset string) ([]domain.Row, error)
}
