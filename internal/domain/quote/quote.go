package quote

import (
	"time"

	"quotedesk/go_backend/internal/domain/catalog"
)

type DiscountKind string

const (
	Percent DiscountKind = "percent"
	Fixed   DiscountKind = "fixed"
)

// Discount is a per-unit reduction, either a percentage of the unit price
// or a fixed amount.
type Discount struct {
	Kind  DiscountKind `json:"kind"`
	Value float64      `json:"value"`
}

func (d Discount) Valid() bool {
	return d.Kind == Percent || d.Kind == Fixed
}

// Line is a catalog item snapshot placed into a quote.
type Line struct {
	catalog.Item
	LineID   string   `json:"lineId"`
	Quantity int      `json:"quantity"`
	Discount Discount `json:"discount"`
}

// NewLine snapshots it with quantity 1 and no discount.
func NewLine(it catalog.Item, lineID string) Line {
	return Line{
		Item:     it,
		LineID:   lineID,
		Quantity: 1,
		Discount: Discount{Kind: Percent},
	}
}

type SyncStatus string

const (
	Pending SyncStatus = "pending"
	Synced  SyncStatus = "synced"
	Failed  SyncStatus = "failed"
)

type Quote struct {
	ID             string     `json:"id"`
	SequenceID     string     `json:"sequenceId"`
	CreatedAt      time.Time  `json:"createdAt"`
	ClientName     string     `json:"clientName"`
	ProjectName    string     `json:"projectName"`
	Notes          string     `json:"notes"`
	Lines          []Line     `json:"lines"`
	TotalOneTime   float64    `json:"totalOneTime"`
	TotalRecurring float64    `json:"totalRecurring"`
	LineCount      int        `json:"lineCount"`
	SyncStatus     SyncStatus `json:"syncStatus"`
}

// Units is the sum of quantities over all lines.
func (q Quote) Units() int {
	n := 0
	for _, l := range q.Lines {
		n += l.Quantity
	}
	return n
}
