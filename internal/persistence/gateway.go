package persistence

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
	"quotedesk/go_backend/internal/domain/settings"
)

var errNotConfigured = errors.New("destination not configured")

// Outcome is the per-destination result of persisting a quote.
type Outcome struct {
	Local   bool `json:"local"`
	Remote  bool `json:"remote"`
	Webhook bool `json:"webhook"`
}

// Status is synced when either remote destination accepted the quote.
func (o Outcome) Status() quote.SyncStatus {
	if o.Remote || o.Webhook {
		return quote.Synced
	}
	return quote.Failed
}

type (
	RemoteFactory   func(settings.Settings) RemoteStore
	NotifierFactory func(settings.Settings) Notifier
)

type Gateway struct {
	Local LocalStore

	newRemote   RemoteFactory
	newNotifier NotifierFactory

	mu       sync.RWMutex
	remote   RemoteStore
	notifier Notifier
}

// NewGateway builds a gateway. Factories may return nil when the settings
// do not configure a destination.
func NewGateway(local LocalStore, remote RemoteFactory, notifier NotifierFactory) *Gateway {
	return &Gateway{Local: local, newRemote: remote, newNotifier: notifier}
}

// Apply rebuilds the remote destinations from s.
func (g *Gateway) Apply(s settings.Settings) {
	var r RemoteStore
	var n Notifier
	if g.newRemote != nil {
		r = g.newRemote(s)
	}
	if g.newNotifier != nil {
		n = g.newNotifier(s)
	}
	g.mu.Lock()
	g.remote, g.notifier = r, n
	g.mu.Unlock()
}

// Configured reports which remote destinations are set up.
func (g *Gateway) Configured() (remote, webhook bool) {
	r, n := g.destinations()
	return r != nil, n != nil
}

func (g *Gateway) destinations() (RemoteStore, Notifier) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.remote, g.notifier
}

// SaveLocal writes one blob. Failures are returned, never swallowed.
func (g *Gateway) SaveLocal(ctx context.Context, key string, v any) error {
	if err := g.Local.Save(ctx, key, v); err != nil {
		slog.Error("local save failed", "key", key, "error", err)
		return err
	}
	return nil
}

func (g *Gateway) LoadLocal(ctx context.Context, key string, v any) (bool, error) {
	return g.Local.Load(ctx, key, v)
}

// Mirror sends q to the hosted database and the webhook concurrently.
// The local write must already have happened; Local is reported as true.
func (g *Gateway) Mirror(ctx context.Context, q quote.Quote) Outcome {
	remote, notifier := g.destinations()
	out := Outcome{Local: true}

	var eg errgroup.Group
	eg.Go(func() error {
		err := writeQuote(ctx, remote, q)
		if err != nil {
			slog.Warn("remote quote write failed", "quote_id", q.ID, "sequence_id", q.SequenceID, "error", err)
		}
		out.Remote = err == nil
		return nil
	})
	eg.Go(func() error {
		err := errNotConfigured
		if notifier != nil {
			err = notifier.Notify(ctx, q)
		}
		if err != nil {
			slog.Warn("webhook notify failed", "quote_id", q.ID, "sequence_id", q.SequenceID, "error", err)
		}
		out.Webhook = err == nil
		return nil
	})
	_ = eg.Wait()

	slog.Info("quote mirrored", "quote_id", q.ID, "sequence_id", q.SequenceID,
		"remote", out.Remote, "webhook", out.Webhook)
	return out
}

// writeQuote inserts the header, then the lines. Lines are skipped when the
// header fails.
func writeQuote(ctx context.Context, r RemoteStore, q quote.Quote) error {
	if r == nil {
		return errNotConfigured
	}
	if err := r.InsertQuoteHeader(ctx, q); err != nil {
		return err
	}
	return r.InsertQuoteLines(ctx, q)
}

// SyncCatalog upserts items by id. Items absent locally are left alone.
func (g *Gateway) SyncCatalog(ctx context.Context, items []catalog.Item) bool {
	remote, _ := g.destinations()
	if remote == nil {
		return false
	}
	if err := remote.UpsertCatalog(ctx, items); err != nil {
		slog.Warn("catalog sync failed", "items", len(items), "error", err)
		return false
	}
	return true
}

func (g *Gateway) FetchCatalog(ctx context.Context) ([]catalog.Item, bool) {
	remote, _ := g.destinations()
	if remote == nil {
		return nil, false
	}
	items, err := remote.FetchCatalog(ctx)
	if err != nil {
		slog.Warn("catalog fetch failed", "error", err)
		return nil, false
	}
	return items, true
}

// Ping probes the hosted database. It has no effect on persistence.
func (g *Gateway) Ping(ctx context.Context) bool {
	remote, _ := g.destinations()
	if remote == nil {
		return false
	}
	if err := remote.Ping(ctx); err != nil {
		slog.Info("remote probe failed", "error", err)
		return false
	}
	return true
}
