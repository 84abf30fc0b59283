package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"quotedesk/go_backend/internal/app/controller"
	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
	"quotedesk/go_backend/internal/domain/quote/pdf"
)

type Handlers struct {
	Ctrl *controller.Controller
	PDF  pdf.Generator
}

func New(ctrl *controller.Controller, gen pdf.Generator) *Handlers {
	return &Handlers{
		Ctrl: ctrl,
		PDF:  gen,
	}
}

type errorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

// writeError maps domain errors to status codes. Anything unrecognised is a
// local storage or internal failure.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *quote.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Missing: verr.Missing})
	case errors.Is(err, catalog.ErrInvalidItem):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, quote.ErrLineNotFound),
		errors.Is(err, controller.ErrQuoteNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrNoFreeID):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request"})
		return false
	}
	return true
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
