// Package handler contains the HTTP handlers for invoice generation,
// invoice retrieval and company settings.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mhessler/rechnung/internal/domain"
)

// statusCode maps a domain error code onto an HTTP status.
func statusCode(err error) int {
	switch domain.ErrorCode(err) {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError logs the full error and sends the sanitized domain
// message; internal details never reach the client.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := statusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", slog.String("error", err.Error()))
	}

	body := map[string]string{"error": domain.ErrorMessage(err)}
	if field := domain.ErrorField(err); field != "" {
		body["field"] = field
	}
	writeJSON(w, status, body)
}
