// Package pdf renders saved quotes as printable documents.
package pdf

import "quotedesk/go_backend/internal/domain/quote"

const ContentType = "application/pdf"

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}

// Filename is the download name for a quote, keyed by its sequence id.
func Filename(q quote.Quote) string {
	return "quote-" + q.SequenceID + ".pdf"
}
