package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kconstable/finance-tools/domain"
)

// writeJSON encodes into a buffer first so a failed encode never writes a
// partial body after the header.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// writeError maps validation errors to 400 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidTerms) ||
		errors.Is(err, domain.ErrInvalidRange) ||
		errors.Is(err, domain.ErrInvalidAssumptions) {
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}
