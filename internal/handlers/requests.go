package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared across handlers; validator caches struct metadata, so a
// single instance is the intended usage.
var validate = validator.New()

const maxBodyBytes = 1 << 20

// decodeJSON reads, parses and validates a request body into dst. On failure
// it writes the error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body", "decoding request", err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "validation failed: "+err.Error(), "", nil)
		return false
	}
	return true
}
