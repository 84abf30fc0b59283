package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quotedesk/go_backend/internal/domain/catalog"
)

type saveItemResponse struct {
	Item         catalog.Item `json:"item"`
	RemoteSynced bool         `json:"remoteSynced"`
}

type pullResponse struct {
	Replaced bool `json:"replaced"`
	Items    int  `json:"items"`
}

func (h *Handlers) ListCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ctrl.CatalogItems(r.URL.Query().Get("q")))
}

func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	var d catalog.Draft
	if !decode(w, r, &d) {
		return
	}
	h.saveItem(w, r, d, http.StatusCreated)
}

// UpdateItem saves the item under the id in the path, whatever the body says.
func (h *Handlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var d catalog.Draft
	if !decode(w, r, &d) {
		return
	}
	d.ID = chi.URLParam(r, "id")
	h.saveItem(w, r, d, http.StatusOK)
}

func (h *Handlers) saveItem(w http.ResponseWriter, r *http.Request, d catalog.Draft, status int) {
	it, synced, err := h.Ctrl.SaveItem(r.Context(), d)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, status, saveItemResponse{Item: it, RemoteSynced: synced})
}

func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Ctrl.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) PullCatalog(w http.ResponseWriter, r *http.Request) {
	n, ok, err := h.Ctrl.PullCatalog(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pullResponse{Replaced: ok, Items: n})
}
