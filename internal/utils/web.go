package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pattarin-dev/webboard/internal/api"
	"github.com/pattarin-dev/webboard/internal/errors"
	"github.com/pattarin-dev/webboard/internal/logger"
)

// DecodeValidate parses a JSON body into dst and enforces the struct's
// `validate` tags. Both failure modes map to 400.
func DecodeValidate(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		logger.Log.Debug("failed to decode request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(dst); err != nil {
		logger.Log.Debug("request body validation failed", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// WriteMessage writes the `{message}` JSON body with the given status code.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(api.MessageResponse{Message: message}); err != nil {
		logger.Log.Error("failed to encode message response", "error", err)
	}
}

// WriteErrorAndStatusCode maps err to its carried status code (500 for
// anything without one) and writes the `{message}` body.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	WriteMessage(w, err.Error(), errors.StatusCode(err))
}
