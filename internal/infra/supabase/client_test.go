package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Prefer string
	APIKey string
	Auth   string
	Body   []byte
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, *[]recorded) {
	t.Helper()
	var mu sync.Mutex
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Prefer: r.Header.Get("Prefer"),
			APIKey: r.Header.Get("apikey"),
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		mu.Unlock()
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestPing(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, `[{"id":"P1"}]`)
	c := New(srv.URL+"/", "secret", srv.Client())

	require.NoError(t, c.Ping(context.Background()))
	require.Len(t, *calls, 1)
	got := (*calls)[0]
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/rest/v1/inventory", got.Path)
	assert.Equal(t, "limit=1&select=id", got.Query)
	assert.Equal(t, "secret", got.APIKey)
	assert.Equal(t, "Bearer secret", got.Auth)
}

func TestPing_AuthFailure(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"bad jwt"}`)
	err := New(srv.URL, "bad", srv.Client()).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supabase status 401")
	assert.Contains(t, err.Error(), "bad jwt")
}

func TestPing_MalformedResponse(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `<html>`)
	assert.Error(t, New(srv.URL, "k", srv.Client()).Ping(context.Background()))
}

func TestInvalidURL(t *testing.T) {
	err := New("db.local", "k", nil).Ping(context.Background())
	assert.EqualError(t, err, "invalid supabase url")
}

func TestUpsertCatalog(t *testing.T) {
	srv, calls := newServer(t, http.StatusCreated, "")
	c := New(srv.URL, "k", srv.Client())

	err := c.UpsertCatalog(context.Background(), []catalog.Item{
		{ID: "P1", Name: "Setup", Cost: 100, Margin: 20, UnitPrice: 120, BillingType: catalog.OneTime},
		{ID: "P2", Name: "Hosting", Cost: 5, Margin: 100, UnitPrice: 10, BillingType: catalog.Monthly, Notes: "n"},
	})
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	got := (*calls)[0]
	assert.Equal(t, "on_conflict=id", got.Query)
	assert.Equal(t, "resolution=merge-duplicates,return=minimal", got.Prefer)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(got.Body, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "unique", rows[0]["type"])
	assert.Equal(t, 120.0, rows[0]["pvp"])
	assert.Equal(t, "monthly", rows[1]["type"])
	assert.Equal(t, "n", rows[1]["observations"])
}

func TestUpsertCatalog_EmptyIsNoop(t *testing.T) {
	srv, calls := newServer(t, http.StatusCreated, "")
	require.NoError(t, New(srv.URL, "k", srv.Client()).UpsertCatalog(context.Background(), nil))
	assert.Empty(t, *calls)
}

func TestFetchCatalog(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK,
		`[{"id":"P1","name":"Setup","desc":"d","cost":100,"margin":20,"pvp":120,"type":"unique","observations":""},
		  {"id":"P2","name":"Plan","cost":1,"margin":0,"pvp":1,"type":"yearly"}]`)
	items, err := New(srv.URL, "k", srv.Client()).FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, catalog.Item{ID: "P1", Name: "Setup", Description: "d", Cost: 100, Margin: 20, UnitPrice: 120, BillingType: catalog.OneTime}, items[0])
	assert.Equal(t, catalog.Yearly, items[1].BillingType)
}

func TestInsertQuote(t *testing.T) {
	srv, calls := newServer(t, http.StatusCreated, "")
	c := New(srv.URL, "k", srv.Client())

	l := quote.NewLine(catalog.Item{ID: "P1", UnitPrice: 120}, "a")
	l.Quantity = 2
	l.Discount = quote.Discount{Kind: quote.Percent, Value: 10}
	q := quote.Quote{
		ID:           "q1",
		SequenceID:   "250001",
		CreatedAt:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		ClientName:   "ACME",
		ProjectName:  "Site",
		Notes:        "c",
		Lines:        []quote.Line{l},
		TotalOneTime: 216,
	}

	require.NoError(t, c.InsertQuoteHeader(context.Background(), q))
	require.NoError(t, c.InsertQuoteLines(context.Background(), q))
	require.Len(t, *calls, 2)

	assert.Equal(t, "/rest/v1/budgets", (*calls)[0].Path)
	var header []budgetRow
	require.NoError(t, json.Unmarshal((*calls)[0].Body, &header))
	assert.Equal(t, budgetRow{
		ID: "q1", SequenceID: "250001", ClientName: "ACME", ProjectName: "Site",
		Comments: "c", TotalUnique: 216, CreatedAt: "2025-01-02T03:04:05Z",
	}, header[0])

	assert.Equal(t, "/rest/v1/budget_items", (*calls)[1].Path)
	var items []budgetItemRow
	require.NoError(t, json.Unmarshal((*calls)[1].Body, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "q1", items[0].BudgetID)
	assert.Equal(t, "P1", items[0].ProductID)
	assert.Equal(t, "percent", items[0].DiscountType)
	assert.InDelta(t, 216.0, items[0].FinalPrice, 1e-9)
}

func TestInsertQuoteHeader_Conflict(t *testing.T) {
	srv, _ := newServer(t, http.StatusConflict, `{"code":"23505"}`)
	err := New(srv.URL, "k", srv.Client()).InsertQuoteHeader(context.Background(), quote.Quote{ID: "q1"})
	assert.ErrorContains(t, err, "409")
}
