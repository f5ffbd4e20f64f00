package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"parkledger/internal/apierrors"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps known error classes to their status codes. Anything
// unrecognized is logged for operators and surfaced as a generic failure so
// internals never leak to the caller.
func respondError(w http.ResponseWriter, err error) {
	var httpErr *apierrors.HTTPError
	if errors.As(err, &httpErr) {
		respondJSON(w, httpErr.Code, map[string]string{"error": httpErr.Message})
		return
	}
	log.Printf("ERROR: unexpected failure: %v", err)
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "something went wrong, contact the administrator"})
}
