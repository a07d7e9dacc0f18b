package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/logger"
)

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto HTTP statuses and logs server faults.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrUnknownSkill),
		errors.Is(err, domain.ErrInvalidLevel),
		errors.Is(err, domain.ErrTierOutOfRange),
		errors.Is(err, domain.ErrScrollCapExceeded),
		errors.Is(err, domain.ErrNoSkillSelected),
		errors.Is(err, domain.ErrNoItemSelected):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrClanNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUpstreamFailed):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("Request failed", "error", err, "path", r.URL.Path)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
