package helpers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dest. On failure it writes a 400
// error response and returns false; callers should return immediately.
// Unknown fields are tolerated: clients may post extra keys (including a
// status value), which must be ignored rather than rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
