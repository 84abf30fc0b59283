// Package persistence fans saved state out to the local store, the hosted
// database and the webhook receiver.
package persistence

import (
	"context"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
)

// Local blob keys. The suffix versions the schema.
const (
	Namespace   = "quoting."
	CatalogKey  = Namespace + "catalog.v1"
	HistoryKey  = Namespace + "history.v1"
	SettingsKey = Namespace + "settings.v1"
)

// LocalStore keeps JSON blobs by key. Load reports found=false for an
// absent key; found=true with an error means the blob exists but does not
// decode.
type LocalStore interface {
	Load(ctx context.Context, key string, v any) (bool, error)
	Save(ctx context.Context, key string, v any) error
}

// RemoteStore is the hosted database.
type RemoteStore interface {
	Ping(ctx context.Context) error
	UpsertCatalog(ctx context.Context, items []catalog.Item) error
	FetchCatalog(ctx context.Context) ([]catalog.Item, error)
	InsertQuoteHeader(ctx context.Context, q quote.Quote) error
	InsertQuoteLines(ctx context.Context, q quote.Quote) error
}

// Notifier delivers a saved quote to an external receiver.
type Notifier interface {
	Notify(ctx context.Context, q quote.Quote) error
}
