// Package httputil provides HTTP middleware and response helpers.
package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// JSON writes a JSON response body.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// Text writes a plain text response.
func Text(w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(text)); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Error writes a {"message": ...} error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// FieldError is one itemized validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError writes a 400 response with itemized field errors. If err
// is validator.ValidationErrors each failed field is reported; otherwise the
// raw error string is returned as a single message.
func ValidationError(w http.ResponseWriter, err error) {
	var fieldErrors []FieldError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fieldErrors = make([]FieldError, 0, len(validationErrors))
		for _, e := range validationErrors {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   e.Field(),
				Message: validationMessage(e),
			})
		}
	} else {
		fieldErrors = []FieldError{{Field: "", Message: err.Error()}}
	}

	JSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": "validation error",
		"errors":  fieldErrors,
	})
}

// validationMessage renders a human-readable message for a failed rule.
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param() + " characters long"
	case "max":
		return "must be at most " + e.Param() + " characters long"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be at least " + e.Param()
	case "lte":
		return "must be at most " + e.Param()
	case "password_complexity":
		return "must contain at least one uppercase letter and one special character"
	}
	return e.Tag()
}
