// Package session keeps the state of one infinite-scroll browsing session over
// the stateless generator: the current parameters, the records loaded so far
// and the next page to fetch.
package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"sync"

	"bookgen/internal/book"
	"bookgen/internal/logging"
)

const (
	DefaultLikes    = 5.0
	DefaultReviews  = 3.0
	DefaultPageSize = 20
	randomSeedRange = 1000000
)

// ErrStale is returned by LoadNext when the parameters changed while the page
// was being generated. The page is discarded.
var ErrStale = errors.New("session parameters changed during load")

// ErrBusy is returned by LoadNext when another load is still in flight.
var ErrBusy = errors.New("session load already in progress")

type Session struct {
	mu       sync.Mutex
	loader   Loader
	newSeed  func() string
	params   book.Params
	records  []book.Record
	nextPage int
	err      error
	loading  bool
	// epoch increments on every parameter change so in-flight loads can detect staleness.
	epoch uint64
}

// Option configures a Session.
type Option func(*Session)

func WithRegion(region string) Option {
	return func(s *Session) { s.params.Region = region }
}

func WithSeed(seed string) Option {
	return func(s *Session) { s.params.Seed = seed }
}

func WithLikes(avg float64) Option {
	return func(s *Session) { s.params.LikesAverage = avg }
}

func WithReviews(avg float64) Option {
	return func(s *Session) { s.params.ReviewsAverage = avg }
}

// WithPageSize sets the page size used for every page of the session.
func WithPageSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.params.Limit = n
		}
	}
}

// WithAsOf pins the date review dates are anchored to.
func WithAsOf(date string) Option {
	return func(s *Session) { s.params.AsOf = date }
}

// WithSeedSource replaces the random seed source used by RandomizeSeed.
func WithSeedSource(f func() string) Option {
	return func(s *Session) { s.newSeed = f }
}

func randomSeed() string {
	return strconv.Itoa(rand.IntN(randomSeedRange))
}

// New creates a session with the default parameters and a random seed.
func New(loader Loader, opts ...Option) *Session {
	s := &Session{
		loader:  loader,
		newSeed: randomSeed,
		params: book.Params{
			Region:         book.DefaultRegion,
			LikesAverage:   DefaultLikes,
			ReviewsAverage: DefaultReviews,
			Limit:          DefaultPageSize,
		},
		nextPage: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.params.Seed == "" {
		s.params.Seed = s.newSeed()
	}
	return s
}

func (s *Session) SetRegion(region string) {
	s.update(func(p *book.Params) { p.Region = region })
}

func (s *Session) SetSeed(seed string) {
	s.update(func(p *book.Params) { p.Seed = seed })
}

func (s *Session) SetLikes(avg float64) {
	s.update(func(p *book.Params) { p.LikesAverage = avg })
}

func (s *Session) SetReviews(avg float64) {
	s.update(func(p *book.Params) { p.ReviewsAverage = avg })
}

// RandomizeSeed picks a new random seed and returns it.
func (s *Session) RandomizeSeed() string {
	seed := s.newSeed()
	s.SetSeed(seed)
	return seed
}

// update applies a parameter change and discards everything loaded under the
// previous parameters.
func (s *Session) update(change func(*book.Params)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	change(&s.params)
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.records = nil
	s.nextPage = 1
	s.err = nil
	s.loading = false
	s.epoch++
}

// LoadNext generates the next page and appends it. On failure the error is
// kept, the loaded records stay and the same page is retried on the next call.
// Only one load runs at a time; a call made while one is in flight returns ErrBusy.
func (s *Session) LoadNext(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrBusy
	}
	s.loading = true
	p := s.params
	p.Page = s.nextPage
	epoch := s.epoch
	s.mu.Unlock()

	records, err := s.loader.Generate(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	// A parameter change already cleared loading for this epoch.
	if epoch != s.epoch {
		return ErrStale
	}
	s.loading = false
	if err != nil {
		s.err = err
		logging.Ctx(ctx).Warn().Err(err).Int("page", p.Page).Str("seed", p.Seed).Msg("session page load failed")
		return err
	}
	s.records = append(s.records, records...)
	s.nextPage++
	s.err = nil
	return nil
}

// Reload discards the loaded records and loads the first page again.
func (s *Session) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	return s.LoadNext(ctx)
}

// Books returns a copy of the records loaded so far.
func (s *Session) Books() []book.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]book.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Params returns the current parameters with Page set to the next page to load.
func (s *Session) Params() book.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.params
	p.Page = s.nextPage
	return p
}

// Err returns the error of the last failed load, or nil.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
