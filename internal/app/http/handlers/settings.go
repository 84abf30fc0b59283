package handlers

import (
	"net/http"

	"quotedesk/go_backend/internal/domain/settings"
)

type statusResponse struct {
	Remote  bool `json:"remote"`
	Webhook bool `json:"webhook"`
	Online  bool `json:"online"`
}

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ctrl.Settings().Redacted())
}

// PutSettings stores new settings. A key equal to the redacted form of the
// current one means the user left it untouched.
func (h *Handlers) PutSettings(w http.ResponseWriter, r *http.Request) {
	var s settings.Settings
	if !decode(w, r, &s) {
		return
	}
	cur := h.Ctrl.Settings()
	if s.RemoteKey != "" && s.RemoteKey == cur.Redacted().RemoteKey {
		s.RemoteKey = cur.RemoteKey
	}
	saved, err := h.Ctrl.UpdateSettings(r.Context(), s)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved.Redacted())
}

func (h *Handlers) SettingsStatus(w http.ResponseWriter, r *http.Request) {
	s := h.Ctrl.Settings()
	writeJSON(w, http.StatusOK, statusResponse{
		Remote:  s.HasRemote(),
		Webhook: s.HasWebhook(),
		Online:  h.Ctrl.ConnectionStatus(r.Context()),
	})
}
