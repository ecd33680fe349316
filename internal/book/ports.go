package book

import (
	"context"
	"errors"
)

//go:generate mockgen -source=ports.go -destination=mock_generator_test.go -package=book

// ErrSnapshotNotFound is returned when no snapshot is stored under a key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Generator produces pages of records.
type Generator interface {
	Generate(p Params) Batch
	Regions() []string
}

// SnapshotReader loads previously saved pages.
type SnapshotReader interface {
	Load(ctx context.Context, key string) ([]Record, error)
}
