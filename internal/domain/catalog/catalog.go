// Package catalog holds product definitions and the ordered catalog list.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrNotFound = errors.New("catalog item not found")
	ErrNoFreeID = errors.New("no free catalog id")
)

const freeIDAttempts = 32

// Catalog is an ordered list of items keyed by id.
type Catalog struct {
	items []Item
}

func New(items []Item) *Catalog {
	c := &Catalog{}
	for _, it := range items {
		c.Upsert(it)
	}
	return c
}

// Upsert replaces an item with the same id in place, or appends.
// It returns true when an existing item was replaced.
func (c *Catalog) Upsert(it Item) bool {
	for i := range c.items {
		if c.items[i].ID == it.ID {
			c.items[i] = it
			return true
		}
	}
	c.items = append(c.items, it)
	return false
}

func (c *Catalog) Delete(id string) error {
	i := c.index(id)
	if i < 0 {
		return ErrNotFound
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

func (c *Catalog) Get(id string) (Item, error) {
	i := c.index(id)
	if i < 0 {
		return Item{}, ErrNotFound
	}
	return c.items[i], nil
}

// Items returns a copy of the list.
func (c *Catalog) Items() []Item {
	return slices.Clone(c.items)
}

func (c *Catalog) Len() int { return len(c.items) }

// Search matches name or id, case-insensitive. Empty query returns all.
func (c *Catalog) Search(q string) []Item {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return c.Items()
	}
	out := make([]Item, 0)
	for _, it := range c.items {
		if strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(strings.ToLower(it.ID), q) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Catalog) index(id string) int {
	return slices.IndexFunc(c.items, func(it Item) bool { return it.ID == id })
}

// FreeID returns a generated id not used by any item. Random picks are tried
// first; a crowded catalog falls back to the lowest free id.
func (c *Catalog) FreeID() (string, error) {
	for range freeIDAttempts {
		if id := NewID(); c.index(id) < 0 {
			return id, nil
		}
	}
	for n := 1000; n <= 9999; n++ {
		if id := fmt.Sprintf("P%d", n); c.index(id) < 0 {
			return id, nil
		}
	}
	return "", ErrNoFreeID
}
