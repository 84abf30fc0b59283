// Package controller owns the application state: catalog, quote history,
// settings and the draft being assembled. All mutations go through it.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
	"quotedesk/go_backend/internal/domain/settings"
	"quotedesk/go_backend/internal/persistence"
)

var ErrQuoteNotFound = errors.New("quote not found")

type Options struct {
	Now   func() time.Time
	NewID func() string
}

type Controller struct {
	gw    *persistence.Gateway
	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	catalog  *catalog.Catalog
	history  []quote.Quote // newest first
	settings settings.Settings
	draft    quote.Draft
}

func New(gw *persistence.Gateway, opts Options) *Controller {
	c := &Controller{
		gw:      gw,
		now:     opts.Now,
		newID:   opts.NewID,
		catalog: catalog.New(nil),
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c
}

// Load restores state from the local store. A blob that does not decode is
// logged and replaced by an empty value; a store failure is returned. seed
// is used when no settings were saved yet. When the hosted database is
// reachable, a non-empty remote catalog replaces the local one.
func (c *Controller) Load(ctx context.Context, seed settings.Settings) error {
	var items []catalog.Item
	if err := c.loadBlob(ctx, persistence.CatalogKey, &items); err != nil {
		return err
	}
	var history []quote.Quote
	if err := c.loadBlob(ctx, persistence.HistoryKey, &history); err != nil {
		return err
	}
	s := seed
	found, err := c.gw.LoadLocal(ctx, persistence.SettingsKey, &s)
	switch {
	case found && err != nil:
		slog.Error("settings blob is malformed, using seed", "error", err)
		s = seed
	case err != nil:
		return err
	}
	s = s.Normalize()

	c.mu.Lock()
	c.catalog = catalog.New(items)
	c.history = history
	c.settings = s
	c.gw.Apply(s)
	c.mu.Unlock()

	slog.Info("state loaded", "catalog", len(items), "history", len(history),
		"remote", s.HasRemote(), "webhook", s.HasWebhook())

	if remote, _ := c.gw.Configured(); remote {
		if n, ok, err := c.PullCatalog(ctx); err != nil {
			return err
		} else if ok {
			slog.Info("remote catalog loaded", "items", n)
		}
	}
	return nil
}

func (c *Controller) loadBlob(ctx context.Context, key string, v any) error {
	found, err := c.gw.LoadLocal(ctx, key, v)
	if found && err != nil {
		slog.Error("local blob is malformed, starting empty", "key", key, "error", err)
		return nil
	}
	return err
}

// Settings returns the current connection settings.
func (c *Controller) Settings() settings.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// UpdateSettings persists s and reconfigures the remote destinations.
func (c *Controller) UpdateSettings(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	s = s.Normalize()

	c.mu.Lock()
	if err := c.gw.SaveLocal(ctx, persistence.SettingsKey, s); err != nil {
		c.mu.Unlock()
		return settings.Settings{}, err
	}
	c.settings = s
	c.gw.Apply(s)
	c.mu.Unlock()
	return s, nil
}

// ConnectionStatus probes the hosted database.
func (c *Controller) ConnectionStatus(ctx context.Context) bool {
	return c.gw.Ping(ctx)
}

// History returns saved quotes, newest first.
func (c *Controller) History() []quote.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.history)
}

func (c *Controller) Quote(id string) (quote.Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.quoteIndex(id)
	if i < 0 {
		return quote.Quote{}, ErrQuoteNotFound
	}
	return c.history[i], nil
}

// DeleteQuote removes a quote from local history only.
func (c *Controller) DeleteQuote(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.quoteIndex(id)
	if i < 0 {
		return ErrQuoteNotFound
	}
	next := slices.Delete(slices.Clone(c.history), i, i+1)
	if err := c.gw.SaveLocal(ctx, persistence.HistoryKey, next); err != nil {
		return err
	}
	c.history = next
	return nil
}

func (c *Controller) quoteIndex(id string) int {
	return slices.IndexFunc(c.history, func(q quote.Quote) bool { return q.ID == id })
}
