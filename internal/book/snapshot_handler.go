package book

import (
	"errors"
	"net/http"

	"bookgen/internal/httpx"
	"bookgen/internal/logging"
)

// SnapshotHandler serves pages saved by the seed command.
type SnapshotHandler struct {
	reader SnapshotReader
}

func NewSnapshotHandler(reader SnapshotReader) *SnapshotHandler {
	return &SnapshotHandler{reader: reader}
}

// Get handles GET /api/snapshots/{key}
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Snapshot key is required", nil)
		return
	}

	records, err := h.reader.Load(r.Context(), key)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Snapshot not found", nil)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Str("key", key).Msg("load snapshot")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load snapshot", nil)
		return
	}

	httpx.JSONSuccess(w, r, records, map[string]interface{}{"key": key, "count": len(records)})
}
