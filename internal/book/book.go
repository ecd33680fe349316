package book

import (
	"errors"
	"strconv"
)

// DefaultRegion is the region used when none is requested or the requested one is unknown.
const DefaultRegion = "English(US)"

// ErrGeneration is returned when a whole batch could not be generated.
var ErrGeneration = errors.New("book generation failed")

// Params holds the caller-supplied generation parameters for one page.
type Params struct {
	Region         string  `json:"region"`
	Seed           string  `json:"seed" validate:"max=256"`
	LikesAverage   float64 `json:"likes" validate:"gte=0,lte=10000"`
	ReviewsAverage float64 `json:"reviews" validate:"gte=0,lte=100"`
	Page           int     `json:"page" validate:"gte=1,lte=1000000"`
	Limit          int     `json:"limit" validate:"gte=1"`
	AsOf           string  `json:"asOf,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Offset returns the global 1-based index of the i-th record of the page.
func (p Params) Offset(i int) int {
	return (p.Page-1)*p.Limit + i + 1
}

// Record is one generated book.
type Record struct {
	ID        string   `json:"id"`
	ISBN      string   `json:"isbn"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Publisher string   `json:"publisher"`
	CoverURL  string   `json:"coverUrl"`
	Likes     int      `json:"likes"`
	Reviews   []Review `json:"reviews"`
}

// Review is a generated review attached to a Record.
type Review struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// Placeholder returns the fixed record used in place of a book that failed to generate.
func Placeholder(index int) Record {
	return Record{
		ID:        "book-error-" + strconv.Itoa(index),
		ISBN:      "000-0000-0000-0",
		Title:     "Error generating book",
		Authors:   []string{"System"},
		Publisher: "Error Publishing",
		CoverURL:  "https://placehold.co/400x600/ff0000/ffffff?text=Error",
		Likes:     0,
		Reviews:   []Review{},
	}
}

// Outcome is the result of synthesizing one record. A non-nil Err means Record
// holds the placeholder.
type Outcome struct {
	Record Record
	Err    error
}

// Placeholder reports whether the outcome carries the placeholder record.
func (o Outcome) Placeholder() bool {
	return o.Err != nil
}

// Batch is the result of generating one page. A non-nil Err means the whole
// page failed and no outcomes are available.
type Batch struct {
	Outcomes []Outcome
	Err      error
}

// Records returns the records of the batch in index order, or an empty slice
// when the batch failed.
func (b Batch) Records() []Record {
	if b.Err != nil {
		return []Record{}
	}
	out := make([]Record, 0, len(b.Outcomes))
	for _, o := range b.Outcomes {
		out = append(out, o.Record)
	}
	return out
}

// Placeholders counts the outcomes that carry the placeholder record.
func (b Batch) Placeholders() int {
	n := 0
	for _, o := range b.Outcomes {
		if o.Placeholder() {
			n++
		}
	}
	return n
}
