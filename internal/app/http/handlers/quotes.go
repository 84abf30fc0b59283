package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quotedesk/go_backend/internal/domain/quote"
	"quotedesk/go_backend/internal/domain/quote/pdf"
)

type quoteSummary struct {
	quote.Quote
	Units int `json:"units"`
}

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	history := h.Ctrl.History()
	out := make([]quoteSummary, 0, len(history))
	for _, q := range history {
		out = append(out, quoteSummary{Quote: q, Units: q.Units()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	if err := h.Ctrl.DeleteQuote(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) RestoreQuote(w http.ResponseWriter, r *http.Request) {
	v, err := h.Ctrl.RestoreQuote(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	q, err := h.Ctrl.Quote(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	pdfBytes, err := h.PDF.Generate(q)
	if err != nil {
		writeError(w, r, fmt.Errorf("pdf for quote %s: %w", q.ID, err))
		return
	}

	w.Header().Set("Content-Type", pdf.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdf.Filename(q)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
