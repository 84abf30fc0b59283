package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quotedesk/go_backend/internal/app/controller"
	"quotedesk/go_backend/internal/domain/quote"
)

type addLineRequest struct {
	CatalogID string `json:"catalogId"`
}

func (h *Handlers) NewDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.Ctrl.NewDraft())
}

func (h *Handlers) GetDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ctrl.Draft())
}

func (h *Handlers) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var hdr controller.Header
	if !decode(w, r, &hdr) {
		return
	}
	writeJSON(w, http.StatusOK, h.Ctrl.UpdateHeader(hdr))
}

func (h *Handlers) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.NewDraft()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AddLine(w http.ResponseWriter, r *http.Request) {
	var req addLineRequest
	if !decode(w, r, &req) {
		return
	}
	l, err := h.Ctrl.AddLine(req.CatalogID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

func (h *Handlers) UpdateLine(w http.ResponseWriter, r *http.Request) {
	var p quote.LinePatch
	if !decode(w, r, &p) {
		return
	}
	l, err := h.Ctrl.UpdateLine(chi.URLParam(r, "lineId"), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *Handlers) RemoveLine(w http.ResponseWriter, r *http.Request) {
	if err := h.Ctrl.RemoveLine(chi.URLParam(r, "lineId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SaveDraft(w http.ResponseWriter, r *http.Request) {
	res, err := h.Ctrl.SaveDraft(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
