package mockapi

import (
	"encoding/json"
	"net/http"

	"wholesale-admin/internal/domain"
)

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondWithMessage sends an error body with the modern "message" field.
func respondWithMessage(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{"message": message})
}

// respondWithMsg sends an error body with the legacy "msg" field, which
// some production endpoints still emit.
func respondWithMsg(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{"msg": message})
}

// decodeAndValidate decodes a JSON request body and checks its
// validation tags, reporting the first field failure.
func decodeAndValidate(r *http.Request, v interface{}) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return "invalid request body", false
	}
	if err := domain.Validate(v); err != nil {
		if fields := domain.FormatValidationErrors(err); len(fields) > 0 {
			return fields[0].Field + ": " + fields[0].Message, false
		}
		return "validation failed", false
	}
	return "", true
}
