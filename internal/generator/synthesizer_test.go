package generator

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode"

	"bookgen/internal/book"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenario = book.Params{
	Region:         "English(US)",
	Seed:           "42",
	LikesAverage:   5,
	ReviewsAverage: 3,
	Page:           1,
	Limit:          1,
	AsOf:           "2026-10-18",
}

type fixedText struct{ digit int }

func (f fixedText) ProductName() string    { return "Fixed Product" }
func (f fixedText) FullName() string       { return "Fixed Author" }
func (f fixedText) CompanyName() string    { return "Fixed Co" }
func (f fixedText) Sentences(n int) string { return strings.Repeat("Lorem. ", n) }
func (f fixedText) Digit() int             { return f.digit }

type panicText struct{ fixedText }

func (panicText) CompanyName() string { panic("company data missing") }

func TestSynthesize_Deterministic(t *testing.T) {
	a := NewSynthesizer().Synthesize(scenario, 1)
	b := NewSynthesizer().Synthesize(scenario, 1)
	require.NoError(t, a.Err)
	require.NoError(t, b.Err)
	assert.Equal(t, a.Record, b.Record)
}

func TestSynthesize_Scenario(t *testing.T) {
	out := NewSynthesizer().Synthesize(scenario, 1)
	require.NoError(t, out.Err)
	rec := out.Record

	assert.Equal(t, "book-1-1", rec.ID)
	assert.NotEmpty(t, rec.Title)
	assert.NotEmpty(t, rec.Publisher)
	assert.GreaterOrEqual(t, len(rec.Authors), 1)
	assert.LessOrEqual(t, len(rec.Authors), 2)
	assert.Equal(t, 5, rec.Likes)
	require.Len(t, rec.Reviews, 3)
	assert.NoError(t, validator.New().Var(rec.ISBN, "isbn13"), rec.ISBN)
	assert.True(t, strings.HasPrefix(rec.CoverURL, "https://placehold.co/400x600/"))
	assert.Contains(t, rec.CoverURL, "?text=")

	ids := make(map[string]bool)
	for _, r := range rec.Reviews {
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.NotEmpty(t, r.Author)
		assert.NotEmpty(t, r.Text)
		assert.NotEmpty(t, r.Date)
		assert.Regexp(t, `^review-\d+-[0-9a-z]{6}$`, r.ID)
		ids[r.ID] = true
	}
	assert.Len(t, ids, 3)
}

// Golden record for seed 42, page 1, index 1.
func TestSynthesize_ScenarioGolden(t *testing.T) {
	out := NewSynthesizer().Synthesize(scenario, 1)
	require.NoError(t, out.Err)
	rec := out.Record

	assert.Equal(t, "book-1-1", rec.ID)
	assert.Equal(t, "978-9-18-960373-8", rec.ISBN)
	assert.Equal(t, "Aqua Earbuds Link", rec.Title)
	assert.Equal(t, []string{"Linnie Schinner"}, rec.Authors)
	assert.Equal(t, "FlightStats", rec.Publisher)
	assert.Equal(t, 5, rec.Likes)
	assert.Equal(t,
		"https://placehold.co/400x600/32a02c/FFFFFF?text=Aqua%20Earbuds%20Link%20by%20Linnie%20Schinner",
		rec.CoverURL)

	type pinned struct {
		ID     string
		Rating int
		Date   string
	}
	got := make([]pinned, len(rec.Reviews))
	for i, r := range rec.Reviews {
		got[i] = pinned{ID: r.ID, Rating: r.Rating, Date: r.Date}
	}
	assert.Equal(t, []pinned{
		{ID: "review-0-vyr5oj", Rating: 4, Date: "5/1/26"},
		{ID: "review-1-8zlisi", Rating: 2, Date: "6/23/26"},
		{ID: "review-2-s6ithk", Rating: 5, Date: "4/28/26"},
	}, got)
}

func TestSynthesize_IndependentOfOtherRecords(t *testing.T) {
	s := NewSynthesizer()
	first := s.Synthesize(scenario, 7)
	s.Synthesize(scenario, 8)
	s.Synthesize(scenario, 9)
	again := s.Synthesize(scenario, 7)
	assert.Equal(t, first.Record, again.Record)
}

func TestSynthesize_ParametersChangeOutput(t *testing.T) {
	s := NewSynthesizer()
	base := s.Synthesize(scenario, 1).Record

	other := scenario
	other.Seed = "43"
	reseeded := s.Synthesize(other, 1).Record
	assert.NotEqual(t, base.ISBN, reseeded.ISBN)

	french := scenario
	french.Region = "French"
	assert.NotEqual(t, base.Publisher, s.Synthesize(french, 1).Record.Publisher)
}

func TestSynthesize_UnknownRegionFallsBack(t *testing.T) {
	s := NewSynthesizer()
	unknown := scenario
	unknown.Region = "Klingon"
	assert.Equal(t, s.Synthesize(scenario, 3).Record, s.Synthesize(unknown, 3).Record)
}

func TestSynthesize_ReviewDatesFollowAnchor(t *testing.T) {
	s := NewSynthesizer()
	p := scenario
	p.ReviewsAverage = 20
	rec := s.Synthesize(p, 1).Record
	require.Len(t, rec.Reviews, 20)

	anchor := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	en := DefaultRegistry().Resolve("English(US)")
	window := make(map[string]bool)
	for d := 0; d < reviewWindowDays; d++ {
		window[en.FormatDate(anchor.AddDate(0, 0, -d))] = true
	}
	for _, r := range rec.Reviews {
		assert.True(t, window[r.Date], "date %s outside window", r.Date)
	}
}

func TestSynthesize_ClockAnchorsWhenAsOfEmpty(t *testing.T) {
	clock := func() time.Time { return time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC) }
	p := scenario
	p.AsOf = ""
	pinned := NewSynthesizer().Synthesize(scenario, 1).Record
	clocked := NewSynthesizer(WithClock(clock)).Synthesize(p, 1).Record
	assert.Equal(t, pinned, clocked)
}

func TestSynthesize_InvalidAsOfYieldsPlaceholder(t *testing.T) {
	p := scenario
	p.AsOf = "18/10/2026"
	out := NewSynthesizer().Synthesize(p, 4)
	assert.ErrorIs(t, out.Err, ErrInvalidAsOf)
	assert.Equal(t, book.Placeholder(4), out.Record)
}

func TestSynthesize_TextFailureYieldsPlaceholder(t *testing.T) {
	boom := errors.New("locale data corrupt")
	s := NewSynthesizer(WithTextFactory(func(Chain, uint32) (Text, error) { return nil, boom }))

	out := s.Synthesize(scenario, 12)
	assert.True(t, out.Placeholder())
	assert.ErrorIs(t, out.Err, boom)
	assert.Equal(t, "book-error-12", out.Record.ID)
	assert.Equal(t, "Error generating book", out.Record.Title)
	assert.Equal(t, []string{"System"}, out.Record.Authors)
	assert.Zero(t, out.Record.Likes)
	assert.Empty(t, out.Record.Reviews)
}

func TestSynthesize_PanicYieldsPlaceholder(t *testing.T) {
	s := NewSynthesizer(WithTextFactory(func(Chain, uint32) (Text, error) { return panicText{}, nil }))

	out := s.Synthesize(scenario, 2)
	assert.ErrorIs(t, out.Err, ErrSynthesisPanic)
	assert.Equal(t, book.Placeholder(2), out.Record)
}

func TestSynthesize_LocaleChain(t *testing.T) {
	s := NewSynthesizer()
	for i := 1; i <= 10; i++ {
		p := scenario
		p.Region = "German"
		rec := s.Synthesize(p, i).Record
		assert.Regexp(t, `(GmbH|AG|KG|GmbH & Co\. KG|OHG)$`, rec.Publisher)

		p.Region = "Japanese"
		rec = s.Synthesize(p, i).Record
		for _, a := range rec.Authors {
			for _, r := range a {
				assert.False(t, r < unicode.MaxASCII && unicode.IsLetter(r), "ascii letter in %q", a)
			}
		}
		for _, r := range rec.Reviews {
			assert.True(t, strings.HasSuffix(r.Text, "。"), r.Text)
		}

		// Italian has no lorem words, so review bodies come from the fallback locale.
		p.Region = "Italian"
		rec = s.Synthesize(p, i).Record
		for _, r := range rec.Reviews {
			assert.True(t, strings.HasSuffix(r.Text, "."), r.Text)
		}
	}
}

func TestISBN13(t *testing.T) {
	assert.Equal(t, "978-0-00-000000-2", isbn13(fixedText{digit: 0}))
	assert.Equal(t, "978-9-99-999999-1", isbn13(fixedText{digit: 9}))
	assert.NoError(t, validator.New().Var(isbn13(fixedText{digit: 4}), "isbn13"))
}

func TestBase36Fragment(t *testing.T) {
	assert.Equal(t, "000000", base36Fragment(0))
	assert.Len(t, base36Fragment(0.999999), 6)
	assert.Regexp(t, `^[0-9a-z]{6}$`, base36Fragment(0.5))
}

func TestHSLHex(t *testing.T) {
	assert.Equal(t, "ff0000", hslHex(0, 100, 50))
	assert.Equal(t, "00ff00", hslHex(120, 100, 50))
	assert.Equal(t, "0000ff", hslHex(240, 100, 50))
	assert.Equal(t, "808080", hslHex(200, 0, 50))
}

func TestCoverURL_EncodesLabel(t *testing.T) {
	u := coverURL(NewStream("cover"), "Small Steel Chair", "Jane Doe")
	assert.Regexp(t, `^https://placehold\.co/400x600/[0-9a-f]{6}/FFFFFF\?text=Small%20Steel%20Chair%20by%20Jane%20Doe$`, u)
}
