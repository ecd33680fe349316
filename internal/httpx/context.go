package httpx

import (
	"net/http"

	"bookgen/internal/logging"
)

// RequestIDFrom retrieves the request ID assigned by RequestIDMiddleware.
func RequestIDFrom(r *http.Request) string {
	return logging.RequestIDFromContext(r.Context())
}
