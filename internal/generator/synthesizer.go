package generator

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookgen/internal/book"
)

// ErrSynthesisPanic wraps a panic recovered while synthesizing a record.
var ErrSynthesisPanic = errors.New("record synthesis panicked")

// ErrInvalidAsOf is returned when Params.AsOf is not a YYYY-MM-DD date.
var ErrInvalidAsOf = errors.New("invalid as-of date")

const (
	reviewWindowDays = 365
	reviewSentences  = 2
	reviewIDLength   = 6
)

// Synthesizer builds single records. It holds only immutable configuration and
// is safe for concurrent use.
type Synthesizer struct {
	registry *Registry
	newText  TextFactory
	now      func() time.Time
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithRegistry sets the region registry.
func WithRegistry(r *Registry) Option {
	return func(s *Synthesizer) { s.registry = r }
}

// WithTextFactory replaces the text-synthesis capability.
func WithTextFactory(f TextFactory) Option {
	return func(s *Synthesizer) { s.newText = f }
}

// WithClock sets the clock that anchors review dates when Params.AsOf is empty.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

// NewSynthesizer returns a Synthesizer using the default registry and gofakeit text.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		registry: DefaultRegistry(),
		newText:  NewFakerText,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the synthesizer's region registry.
func (s *Synthesizer) Registry() *Registry {
	return s.registry
}

// Anchor returns the date review dates are counted back from.
func (s *Synthesizer) Anchor(p book.Params) (time.Time, error) {
	if p.AsOf == "" {
		y, m, d := s.now().UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.DateOnly, p.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidAsOf, p.AsOf)
	}
	return t, nil
}

// Synthesize builds the record with the given global index. Failures never
// escape: they yield the placeholder record together with the cause.
func (s *Synthesizer) Synthesize(p book.Params, index int) (out book.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = book.Outcome{
				Record: book.Placeholder(index),
				Err:    fmt.Errorf("%w: index %d: %v", ErrSynthesisPanic, index, r),
			}
		}
	}()

	rec, err := s.synthesize(p, index)
	if err != nil {
		return book.Outcome{Record: book.Placeholder(index), Err: err}
	}
	return book.Outcome{Record: rec}
}

func (s *Synthesizer) synthesize(p book.Params, index int) (book.Record, error) {
	base := BaseSeed(p.Seed, p.Page, index)
	bookStream := NewStream(base)
	likesStream := NewStream(SubSeed(base, attrLikes))
	reviewsStream := NewStream(SubSeed(base, attrReviews))

	anchor, err := s.Anchor(p)
	if err != nil {
		return book.Record{}, err
	}

	chain := s.registry.Resolve(p.Region)
	text, err := s.newText(chain, HashString(base))
	if err != nil {
		return book.Record{}, fmt.Errorf("text source for %s: %w", chain.Primary().Code, err)
	}

	title := text.ProductName()
	isbn := isbn13(text)

	authors := make([]string, bookStream.Intn(2)+1)
	for i := range authors {
		authors[i] = text.FullName()
	}
	publisher := text.CompanyName()

	likes := SampleCount(likesStream, p.LikesAverage)
	reviews := s.reviews(reviewsStream, p.ReviewsAverage, text, chain, anchor)

	return book.Record{
		ID:        "book-" + strconv.Itoa(p.Page) + "-" + strconv.Itoa(index),
		ISBN:      isbn,
		Title:     title,
		Authors:   authors,
		Publisher: publisher,
		CoverURL:  coverURL(bookStream, title, authors[0]),
		Likes:     likes,
		Reviews:   reviews,
	}, nil
}

func (s *Synthesizer) reviews(stream *Stream, average float64, text Text, chain Chain, anchor time.Time) []book.Review {
	n := SampleCount(stream, average)
	out := make([]book.Review, 0, n)
	for i := 0; i < n; i++ {
		rating := stream.Intn(5) + 1
		daysAgo := stream.Intn(reviewWindowDays)
		out = append(out, book.Review{
			ID:     "review-" + strconv.Itoa(i) + "-" + base36Fragment(stream.Float64()),
			Author: text.FullName(),
			Rating: rating,
			Text:   text.Sentences(reviewSentences),
			Date:   chain.FormatDate(anchor.AddDate(0, 0, -daysAgo)),
		})
	}
	return out
}

// isbn13 draws twelve digits behind the 978 prefix and appends the check digit.
func isbn13(text Text) string {
	digits := make([]int, 13)
	digits[0], digits[1], digits[2] = 9, 7, 8
	for i := 3; i < 12; i++ {
		digits[i] = text.Digit()
	}
	sum := 0
	for i := 0; i < 12; i++ {
		if i%2 == 0 {
			sum += digits[i]
		} else {
			sum += 3 * digits[i]
		}
	}
	digits[12] = (10 - sum%10) % 10

	var b strings.Builder
	for i, d := range digits {
		switch i {
		case 3, 4, 6, 12:
			b.WriteByte('-')
		}
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

func base36Fragment(x float64) string {
	limit := math.Pow(36, reviewIDLength)
	s := strconv.FormatUint(uint64(x*limit), 36)
	if len(s) < reviewIDLength {
		s = strings.Repeat("0", reviewIDLength-len(s)) + s
	}
	return s
}

func coverURL(stream *Stream, title, author string) string {
	hue := stream.Intn(360)
	saturation := stream.Intn(50) + 50
	label := strings.ReplaceAll(url.QueryEscape(title+" by "+author), "+", "%20")
	return "https://placehold.co/400x600/" + hslHex(hue, saturation, 40) + "/FFFFFF?text=" + label
}

// hslHex converts an HSL color (h in degrees, s and l in percent) to RRGGBB.
func hslHex(h, s, l int) string {
	sf, lf := float64(s)/100, float64(l)/100
	c := (1 - math.Abs(2*lf-1)) * sf
	hp := float64(h) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g = c, x
	case hp < 2:
		r, g = x, c
	case hp < 3:
		g, b = c, x
	case hp < 4:
		g, b = x, c
	case hp < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	m := lf - c/2
	return fmt.Sprintf("%02x%02x%02x",
		int(math.Round((r+m)*255)), int(math.Round((g+m)*255)), int(math.Round((b+m)*255)))
}
