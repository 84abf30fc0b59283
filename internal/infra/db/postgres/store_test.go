package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
)

func TestInventoryBatch(t *testing.T) {
	b := inventoryBatch([]catalog.Item{
		{ID: "P1", BillingType: catalog.OneTime},
		{ID: "P2", BillingType: catalog.Monthly},
	})
	require.Equal(t, 2, b.Len())
	assert.Equal(t, upsertInventorySQL, b.QueuedQueries[0].SQL)
	assert.Equal(t, "unique", b.QueuedQueries[0].Arguments[6])
	assert.Equal(t, "monthly", b.QueuedQueries[1].Arguments[6])
}

func TestBudgetItemsBatch(t *testing.T) {
	l := quote.NewLine(catalog.Item{ID: "P1", UnitPrice: 50}, "a")
	l.Quantity = 3
	l.Discount = quote.Discount{Kind: quote.Fixed, Value: 10}
	b := budgetItemsBatch(quote.Quote{ID: "q1", Lines: []quote.Line{l}})
	require.Equal(t, 1, b.Len())
	args := b.QueuedQueries[0].Arguments
	assert.Equal(t, "q1", args[0])
	assert.Equal(t, "P1", args[1])
	assert.Equal(t, 3, args[2])
	assert.Equal(t, "fixed", args[4])
	assert.Equal(t, 120.0, args[5])
}

// Runs against a real database when TEST_DATABASE_URL is set.
func TestStore_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := New(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	s := NewStore(db)
	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Ping(ctx))

	id := "T" + uuid.NewString()[:8]
	require.NoError(t, s.UpsertCatalog(ctx, []catalog.Item{{ID: id, Name: "a", BillingType: catalog.Yearly}}))
	require.NoError(t, s.UpsertCatalog(ctx, []catalog.Item{{ID: id, Name: "b", BillingType: catalog.Yearly}}))

	items, err := s.FetchCatalog(ctx)
	require.NoError(t, err)
	var found *catalog.Item
	for i := range items {
		if items[i].ID == id {
			found = &items[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "b", found.Name)
	assert.Equal(t, catalog.Yearly, found.BillingType)

	q := quote.Quote{
		ID: uuid.NewString(), SequenceID: "990001", CreatedAt: time.Now(),
		ClientName: "c", ProjectName: "p",
		Lines: []quote.Line{quote.NewLine(catalog.Item{ID: id, UnitPrice: 10}, "l")},
	}
	require.NoError(t, s.InsertQuoteHeader(ctx, q))
	require.NoError(t, s.InsertQuoteLines(ctx, q))
	assert.Error(t, s.InsertQuoteHeader(ctx, q), "duplicate header must fail")
}
