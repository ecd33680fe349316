package session

import (
	"context"

	"bookgen/internal/book"
)

// Loader generates one page of records.
type Loader interface {
	Generate(ctx context.Context, p book.Params) ([]book.Record, error)
}
