// Package api implements the HTTP handlers for the pet-shop endpoints.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// errBadID marks an unparseable or non-positive path ID. Callers treat it
// like an absent row, matching the lookup-by-id contract.
var errBadID = errors.New("invalid id")

// pathID extracts the numeric {id} parameter from the URL path.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}
