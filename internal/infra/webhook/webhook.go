// Package webhook posts saved quotes to a user-configured URL.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quotedesk/go_backend/internal/domain/quote"
)

// PayloadVersion identifies the body layout to the receiver.
const PayloadVersion = "4.0-single-payload"

type Item struct {
	ID             string  `json:"item_id"`
	Name           string  `json:"item_name"`
	Type           string  `json:"item_type"`
	Quantity       int     `json:"item_quantity"`
	OriginalPrice  float64 `json:"item_original_pvp"`
	DiscountUnit   float64 `json:"item_discount_unit"`
	FinalPriceUnit float64 `json:"item_final_price_unit"`
	Subtotal       float64 `json:"item_subtotal"`
	Observations   string  `json:"item_observations"`
}

type Payload struct {
	BudgetID        string  `json:"budget_id"`
	Timestamp       string  `json:"timestamp"`
	Client          string  `json:"client"`
	Project         string  `json:"project"`
	Comments        string  `json:"comments"`
	TotalUnique     float64 `json:"total_unique"`
	TotalRecurring  float64 `json:"total_recurring"`
	TotalItemsCount int     `json:"total_items_count"`
	Items           []Item  `json:"items"`
	AppVersion      string  `json:"_app_version"`
}

// NewPayload enriches every line with its computed figures.
func NewPayload(q quote.Quote) Payload {
	items := make([]Item, 0, len(q.Lines))
	for _, l := range q.Lines {
		f := quote.LineFigures(l)
		items = append(items, Item{
			ID:             l.ID,
			Name:           l.Name,
			Type:           l.BillingType.Label(),
			Quantity:       l.Quantity,
			OriginalPrice:  f.UnitPrice,
			DiscountUnit:   f.Discount,
			FinalPriceUnit: f.UnitNet,
			Subtotal:       f.Total,
			Observations:   l.Notes,
		})
	}
	return Payload{
		BudgetID:        q.SequenceID,
		Timestamp:       q.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Client:          q.ClientName,
		Project:         q.ProjectName,
		Comments:        q.Notes,
		TotalUnique:     q.TotalOneTime,
		TotalRecurring:  q.TotalRecurring,
		TotalItemsCount: q.LineCount,
		Items:           items,
		AppVersion:      PayloadVersion,
	}
}

type Client struct {
	URL  string
	HTTP *http.Client
}

func New(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{URL: strings.TrimSpace(url), HTTP: httpClient}
}

// Notify sends one POST. Any non-2xx status is an error.
func (c *Client) Notify(ctx context.Context, q quote.Quote) error {
	if c.URL == "" {
		return fmt.Errorf("webhook url not set")
	}
	body, err := json.Marshal(NewPayload(q))
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("webhook status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
