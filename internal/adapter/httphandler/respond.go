package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	writeJSONStatus(w, log, http.StatusOK, v)
}

func writeJSONStatus(
	w http.ResponseWriter, log *slog.Logger, code int, v any,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

// writeFieldErrors reports form validation failures as 422 with the field
// map. It reports whether err was such a failure.
func writeFieldErrors(
	w http.ResponseWriter, log *slog.Logger, err error,
) bool {
	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if encErr := json.NewEncoder(w).Encode(
		FieldErrorsResponse{Errors: fieldErrs},
	); encErr != nil {
		log.Error("failed to write response body", "err", encErr)
	}
	return true
}
