package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/middleware"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps the error taxonomy to HTTP statuses. The message carries
// the wrapped provider text verbatim; nothing here is fatal.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	code := apperr.CodeOf(err)
	status := apperr.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, map[string]errorBody{"error": {
		Code:    string(code),
		Message: err.Error(),
	}})
}

// sessionFrom pulls the signed-in identity off the request, empty when there
// is none. Services reject empty identities before any remote call.
func sessionFrom(r *http.Request) (userID, email string) {
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		return claims.UserID, claims.Email
	}
	return "", ""
}
