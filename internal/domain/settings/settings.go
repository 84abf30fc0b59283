package settings

import "strings"

// Settings are the user-editable connection settings.
type Settings struct {
	WebhookURL string `json:"webhookUrl"`
	RemoteURL  string `json:"remoteUrl"`
	RemoteKey  string `json:"remoteKey"`
}

func (s Settings) Normalize() Settings {
	return Settings{
		WebhookURL: strings.TrimSpace(s.WebhookURL),
		RemoteURL:  strings.TrimRight(strings.TrimSpace(s.RemoteURL), "/"),
		RemoteKey:  strings.TrimSpace(s.RemoteKey),
	}
}

// HasRemote reports whether the hosted database is configured.
func (s Settings) HasRemote() bool {
	return s.RemoteURL != "" && s.RemoteKey != ""
}

func (s Settings) HasWebhook() bool {
	return s.WebhookURL != ""
}

// Redacted hides the remote key for display.
func (s Settings) Redacted() Settings {
	if len(s.RemoteKey) > 4 {
		s.RemoteKey = strings.Repeat("*", len(s.RemoteKey)-4) + s.RemoteKey[len(s.RemoteKey)-4:]
	} else if s.RemoteKey != "" {
		s.RemoteKey = "****"
	}
	return s
}
