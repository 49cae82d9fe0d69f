package response

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDFromContext extracts the chi request ID, if any.
func RequestIDFromContext(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
