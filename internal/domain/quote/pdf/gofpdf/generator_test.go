package gofpdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
)

func TestGenerate_ProducesPDF(t *testing.T) {
	l := quote.NewLine(catalog.Item{ID: "P1", Name: "Diseño web", UnitPrice: 120, BillingType: catalog.OneTime}, "a")
	l.Quantity = 2
	q := quote.Quote{
		SequenceID:   "250001",
		CreatedAt:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		ClientName:   "ACME",
		ProjectName:  "Site",
		Notes:        "Valid 30 days",
		Lines:        []quote.Line{l},
		TotalOneTime: 240,
		LineCount:    1,
	}
	g := New("Quotedesk")
	g.now = func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) }

	out, err := g.Generate(q)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "abc", trim("abc", 5))
	assert.Equal(t, "ab…", trim("abcdef", 3))
}
