package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parsePagination reads skip/limit query parameters. Bounds are enforced in
// the service layer; unparseable values fall back to the defaults.
func parsePagination(r *http.Request) (skip, limit int) {
	limit = 100
	if s := r.URL.Query().Get("skip"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return skip, limit
}

// parseIDParam reads a positive integer URL parameter.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
