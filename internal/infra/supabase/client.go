// Package supabase talks to the hosted database through its PostgREST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
)

type Client struct {
	BaseURL string
	Key     string
	HTTP    *http.Client
}

func New(baseURL, key string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Key: key, HTTP: httpClient}
}

// Ping reads at most one inventory id.
func (c *Client) Ping(ctx context.Context) error {
	values := url.Values{}
	values.Set("select", "id")
	values.Set("limit", "1")
	var rows []struct {
		ID string `json:"id"`
	}
	return c.get(ctx, inventoryTable, values, &rows)
}

// UpsertCatalog merges items into inventory on id conflicts.
func (c *Client) UpsertCatalog(ctx context.Context, items []catalog.Item) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]inventoryRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, toInventoryRow(it))
	}
	values := url.Values{}
	values.Set("on_conflict", "id")
	return c.post(ctx, inventoryTable, values, rows, "resolution=merge-duplicates,return=minimal")
}

func (c *Client) FetchCatalog(ctx context.Context) ([]catalog.Item, error) {
	values := url.Values{}
	values.Set("select", "*")
	var rows []inventoryRow
	if err := c.get(ctx, inventoryTable, values, &rows); err != nil {
		return nil, err
	}
	items := make([]catalog.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.item())
	}
	return items, nil
}

func (c *Client) InsertQuoteHeader(ctx context.Context, q quote.Quote) error {
	return c.post(ctx, budgetsTable, nil, []budgetRow{toBudgetRow(q)}, "return=minimal")
}

func (c *Client) InsertQuoteLines(ctx context.Context, q quote.Quote) error {
	rows := toBudgetItemRows(q)
	if len(rows) == 0 {
		return nil
	}
	return c.post(ctx, budgetItemsTable, nil, rows, "return=minimal")
}

func (c *Client) endpoint(table string, values url.Values) (string, error) {
	urlStr := c.BaseURL + "/rest/v1/" + table
	if !strings.HasPrefix(urlStr, "http://") && !strings.HasPrefix(urlStr, "https://") {
		return "", fmt.Errorf("invalid supabase url")
	}
	if len(values) > 0 {
		urlStr += "?" + values.Encode()
	}
	return urlStr, nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("apikey", c.Key)
	req.Header.Set("Authorization", "Bearer "+c.Key)
}

func (c *Client) get(ctx context.Context, table string, values url.Values, out any) error {
	urlStr, err := c.endpoint(table, values)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(ctx context.Context, table string, values url.Values, payload any, prefer string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	urlStr, err := c.endpoint(table, values)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return statusError(resp)
	}
	return nil
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("supabase status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
}
