package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"time"

	"bookgen/internal/book"

	"github.com/goccy/go-json"
)

// AsOf is the fixed review-date anchor used across tests.
const AsOf = "2026-10-18"

// Now returns a fixed clock for tests.
func Now() time.Time {
	return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
}

// Params returns generation parameters for page of size limit with the
// remaining fields at their defaults.
func Params(page, limit int) book.Params {
	return book.Params{
		Region: book.DefaultRegion,
		Seed:   "42",
		Page:   page,
		Limit:  limit,
		AsOf:   AsOf,
	}
}

// Records returns stand-in records for the page described by p, with ids
// following the generator's book-{page}-{index} scheme.
func Records(p book.Params) []book.Record {
	out := make([]book.Record, p.Limit)
	for i := range out {
		idx := strconv.Itoa(p.Offset(i))
		out[i] = book.Record{
			ID:        "book-" + strconv.Itoa(p.Page) + "-" + idx,
			ISBN:      "978-0-00-000000-2",
			Title:     "Test Book " + idx,
			Authors:   []string{"Test Author"},
			Publisher: "Test Publisher",
			CoverURL:  "https://placehold.co/400x600/336699/FFFFFF?text=Test",
			Reviews:   []book.Review{},
		}
	}
	return out
}

// IDs returns the ids of records in order.
func IDs(records []book.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %v for key %q, want %v", value, key, expectedValue)
	}
}
