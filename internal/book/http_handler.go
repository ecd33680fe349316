package book

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookgen/internal/httpx"
	"bookgen/internal/logging"
)

const (
	defaultSeed    = "42"
	defaultPage    = 1
	defaultLimit   = 20
	maxExportPages = 50
)

type HTTPHandler struct {
	service  *Service
	maxLimit int
	now      func() time.Time
}

// NewHTTPHandler creates a handler that rejects pages larger than maxLimit.
func NewHTTPHandler(service *Service, maxLimit int) *HTTPHandler {
	return &HTTPHandler{service: service, maxLimit: maxLimit, now: time.Now}
}

type listResponse struct {
	Success bool     `json:"success"`
	Data    []Record `json:"data"`
	Params  Params   `json:"params"`
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	params, details := h.parseParams(r.URL.Query())
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid parameters", details)
		return
	}

	records, err := h.service.Generate(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "GENERATION_FAILED", errorMessage(err), nil)
		return
	}

	httpx.JSON(w, r, http.StatusOK, listResponse{
		Success: true,
		Data:    records,
		Params:  params,
	})
}

// Export handles GET /api/books/export
func (h *HTTPHandler) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params, details := h.parseParams(query)

	pages := 1
	if raw := query.Get("pages"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxExportPages {
			details = append(details, httpx.ErrorDetail{
				Field:   "pages",
				Message: "pages must be an integer between 1 and " + strconv.Itoa(maxExportPages),
			})
		}
		pages = n
	}
	if len(details) == 0 && pages*params.Limit > h.maxLimit {
		details = append(details, httpx.ErrorDetail{
			Field:   "pages",
			Message: "pages multiplied by limit must be less than or equal to " + strconv.Itoa(h.maxLimit),
		})
	}
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid parameters", details)
		return
	}

	records, err := h.service.GenerateRange(r.Context(), params, pages)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "GENERATION_FAILED", errorMessage(err), nil)
		return
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("write csv export")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export books", nil)
		return
	}

	filename := "book-data-export-" + url.PathEscape(params.Seed) + "-" + strconv.Itoa(params.Page) + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Regions handles GET /api/regions
func (h *HTTPHandler) Regions(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.service.Regions(), nil)
}

// parseParams applies the query defaults and validates the result. Unknown
// regions are accepted; the generator resolves them to the default region.
func (h *HTTPHandler) parseParams(query url.Values) (Params, []httpx.ErrorDetail) {
	params := Params{
		Region: query.Get("region"),
		Seed:   query.Get("seed"),
		Page:   defaultPage,
		Limit:  defaultLimit,
		AsOf:   query.Get("asOf"),
	}
	if params.Region == "" {
		params.Region = DefaultRegion
	}
	if params.Seed == "" {
		params.Seed = defaultSeed
	}
	if params.AsOf == "" {
		params.AsOf = h.now().UTC().Format(time.DateOnly)
	}

	var details []httpx.ErrorDetail
	badNumber := func(field string) {
		details = append(details, httpx.ErrorDetail{Field: field, Message: field + " must be a number"})
	}

	if raw := query.Get("likes"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badNumber("likes")
		}
		params.LikesAverage = v
	}
	if raw := query.Get("reviews"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badNumber("reviews")
		}
		params.ReviewsAverage = v
	}
	if raw := query.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			badNumber("page")
		}
		params.Page = v
	}
	if raw := query.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			badNumber("limit")
		}
		params.Limit = v
	}
	if len(details) > 0 {
		return params, details
	}

	details = httpx.ValidateStruct(params)
	if params.Limit > h.maxLimit {
		details = append(details, httpx.ErrorDetail{
			Field:   "limit",
			Message: "limit must be less than or equal to " + strconv.Itoa(h.maxLimit),
		})
	}
	return params, details
}

func errorMessage(err error) string {
	if errors.Is(err, ErrGeneration) {
		return "Failed to generate books"
	}
	return err.Error()
}
