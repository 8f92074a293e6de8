package response

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JSON writes v as the response body. Success bodies are written as-is so
// clients get the resource itself, not an envelope.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Status: "error", Message: msg})
}

// ValidationErrors writes a 400 with a field-keyed message map, e.g.
// {"email": ["must be unique"]}. Provider-level messages are keyed "*".
func ValidationErrors(w http.ResponseWriter, errs map[string][]string) {
	JSON(w, http.StatusBadRequest, errs)
}
