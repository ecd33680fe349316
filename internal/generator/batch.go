package generator

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"bookgen/internal/book"
	"bookgen/internal/logging"
	"bookgen/internal/metrics"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidPage  = errors.New("page must be at least 1")
	ErrInvalidLimit = errors.New("limit must be at least 1")
	ErrBatchPanic   = errors.New("batch generation panicked")
	// ErrIndexOverflow is returned when the page's global indices do not fit in an int.
	ErrIndexOverflow = errors.New("page index out of range")
)

// Generator produces whole pages of records on a bounded worker pool.
type Generator struct {
	synth   *Synthesizer
	workers int
}

// NewGenerator returns a Generator. workers <= 0 means GOMAXPROCS.
func NewGenerator(synth *Synthesizer, workers int) *Generator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{synth: synth, workers: workers}
}

// Regions returns the region names the generator can resolve.
func (g *Generator) Regions() []string {
	return g.synth.Registry().Names()
}

// Generate builds the page described by p. The batch holds exactly p.Limit
// outcomes in index order, or no outcomes and a non-nil Err.
func (g *Generator) Generate(p book.Params) (batch book.Batch) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			batch = book.Batch{Err: fmt.Errorf("%w: %v", ErrBatchPanic, r)}
		}
		if batch.Err != nil {
			metrics.ObserveBatchFailure(time.Since(start))
			return
		}
		metrics.ObserveBatch(len(batch.Outcomes), batch.Placeholders(), time.Since(start))
	}()

	if p.Page < 1 {
		return book.Batch{Err: ErrInvalidPage}
	}
	if p.Limit < 1 {
		return book.Batch{Err: ErrInvalidLimit}
	}
	if p.Page-1 > (math.MaxInt-p.Limit)/p.Limit {
		return book.Batch{Err: ErrIndexOverflow}
	}
	// Pin the anchor once so every record of the page shares it.
	anchor, err := g.synth.Anchor(p)
	if err != nil {
		return book.Batch{Err: err}
	}
	p.AsOf = anchor.Format(time.DateOnly)

	outcomes := make([]book.Outcome, p.Limit)
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for i := 0; i < p.Limit; i++ {
		eg.Go(func() error {
			outcomes[i] = g.synth.Synthesize(p, p.Offset(i))
			return nil
		})
	}
	_ = eg.Wait()

	for _, o := range outcomes {
		if o.Placeholder() {
			logging.Warn().Err(o.Err).Str("id", o.Record.ID).Str("seed", p.Seed).Msg("record replaced by placeholder")
		}
	}
	return book.Batch{Outcomes: outcomes}
}
