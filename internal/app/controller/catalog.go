package controller

import (
	"context"
	"log/slog"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/persistence"
)

// CatalogItems returns items matching q by name or id.
func (c *Controller) CatalogItems(q string) []catalog.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Search(q)
}

func (c *Controller) CatalogItem(id string) (catalog.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Get(id)
}

// SaveItem creates or replaces an item, persists the catalog locally and
// then upserts the full list remotely. remoteSynced reports the upsert.
// An empty id gets a generated one that no existing item uses.
func (c *Controller) SaveItem(ctx context.Context, d catalog.Draft) (it catalog.Item, remoteSynced bool, err error) {
	c.mu.Lock()
	if d.ID == "" {
		if d.ID, err = c.catalog.FreeID(); err != nil {
			c.mu.Unlock()
			return catalog.Item{}, false, err
		}
	}
	if it, err = d.Item(); err != nil {
		c.mu.Unlock()
		return catalog.Item{}, false, err
	}
	next := catalog.New(c.catalog.Items())
	replaced := next.Upsert(it)
	items := next.Items()
	if err := c.gw.SaveLocal(ctx, persistence.CatalogKey, items); err != nil {
		c.mu.Unlock()
		return catalog.Item{}, false, err
	}
	c.catalog = next
	c.mu.Unlock()

	slog.Info("catalog item saved", "id", it.ID, "replaced", replaced)
	return it, c.gw.SyncCatalog(ctx, items), nil
}

// DeleteItem removes an item locally. The hosted inventory keeps it.
func (c *Controller) DeleteItem(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := catalog.New(c.catalog.Items())
	if err := next.Delete(id); err != nil {
		return err
	}
	if err := c.gw.SaveLocal(ctx, persistence.CatalogKey, next.Items()); err != nil {
		return err
	}
	c.catalog = next
	return nil
}

// PullCatalog replaces the local catalog with the hosted inventory. ok is
// false when the fetch failed or returned nothing, in which case the local
// catalog is kept.
func (c *Controller) PullCatalog(ctx context.Context) (n int, ok bool, err error) {
	items, fetched := c.gw.FetchCatalog(ctx)
	if !fetched || len(items) == 0 {
		return 0, false, nil
	}
	next := catalog.New(items)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.gw.SaveLocal(ctx, persistence.CatalogKey, next.Items()); err != nil {
		return 0, false, err
	}
	c.catalog = next
	return next.Len(), true, nil
}
