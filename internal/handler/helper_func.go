package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"account-service/internal/domain"
	"account-service/pkg/response"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeUsecaseError maps the error taxonomy to HTTP. Validation failures
// carry their field-keyed messages; anything unexpected is a 500.
func writeUsecaseError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		response.ValidationErrors(w, ve.Map())
		return
	}
	log.Printf("internal error: %v", err)
	response.Error(w, http.StatusInternalServerError, "internal server error")
}
