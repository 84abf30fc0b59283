package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	s := Settings{WebhookURL: " https://hooks.local/x ", RemoteURL: "https://db.local/ ", RemoteKey: " k "}.Normalize()
	assert.Equal(t, "https://hooks.local/x", s.WebhookURL)
	assert.Equal(t, "https://db.local", s.RemoteURL)
	assert.Equal(t, "k", s.RemoteKey)
}

func TestHasRemote(t *testing.T) {
	assert.False(t, Settings{RemoteURL: "https://db.local"}.HasRemote())
	assert.False(t, Settings{RemoteKey: "k"}.HasRemote())
	assert.True(t, Settings{RemoteURL: "https://db.local", RemoteKey: "k"}.HasRemote())
	assert.False(t, Settings{}.HasWebhook())
}

func TestRedacted(t *testing.T) {
	assert.Equal(t, "****5678", Settings{RemoteKey: "12345678"}.Redacted().RemoteKey)
	assert.Equal(t, "****", Settings{RemoteKey: "abc"}.Redacted().RemoteKey)
	assert.Equal(t, "", Settings{}.Redacted().RemoteKey)
}
