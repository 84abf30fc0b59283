package supabase

import (
	"time"

	"quotedesk/go_backend/internal/domain/catalog"
	"quotedesk/go_backend/internal/domain/quote"
)

const (
	inventoryTable   = "inventory"
	budgetsTable     = "budgets"
	budgetItemsTable = "budget_items"
)

type inventoryRow struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Desc         string  `json:"desc"`
	Cost         float64 `json:"cost"`
	Margin       float64 `json:"margin"`
	PVP          float64 `json:"pvp"`
	Type         string  `json:"type"`
	Observations string  `json:"observations"`
}

func toInventoryRow(it catalog.Item) inventoryRow {
	return inventoryRow{
		ID:           it.ID,
		Name:         it.Name,
		Desc:         it.Description,
		Cost:         it.Cost,
		Margin:       it.Margin,
		PVP:          it.UnitPrice,
		Type:         it.BillingType.RemoteCode(),
		Observations: it.Notes,
	}
}

func (r inventoryRow) item() catalog.Item {
	return catalog.Item{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Desc,
		Cost:        r.Cost,
		Margin:      r.Margin,
		UnitPrice:   r.PVP,
		BillingType: catalog.ParseRemoteCode(r.Type),
		Notes:       r.Observations,
	}
}

type budgetRow struct {
	ID             string  `json:"id"`
	SequenceID     string  `json:"sequence_id"`
	ClientName     string  `json:"client_name"`
	ProjectName    string  `json:"project_name"`
	Comments       string  `json:"comments"`
	TotalUnique    float64 `json:"total_unique"`
	TotalRecurring float64 `json:"total_recurring"`
	CreatedAt      string  `json:"created_at"`
}

func toBudgetRow(q quote.Quote) budgetRow {
	return budgetRow{
		ID:             q.ID,
		SequenceID:     q.SequenceID,
		ClientName:     q.ClientName,
		ProjectName:    q.ProjectName,
		Comments:       q.Notes,
		TotalUnique:    q.TotalOneTime,
		TotalRecurring: q.TotalRecurring,
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

type budgetItemRow struct {
	BudgetID     string  `json:"budget_id"`
	ProductID    string  `json:"product_id"`
	Quantity     int     `json:"quantity"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discount_type"`
	FinalPrice   float64 `json:"final_price"`
}

func toBudgetItemRows(q quote.Quote) []budgetItemRow {
	rows := make([]budgetItemRow, 0, len(q.Lines))
	for _, l := range q.Lines {
		rows = append(rows, budgetItemRow{
			BudgetID:     q.ID,
			ProductID:    l.ID,
			Quantity:     l.Quantity,
			Discount:     l.Discount.Value,
			DiscountType: string(l.Discount.Kind),
			FinalPrice:   quote.LineTotal(l),
		})
	}
	return rows
}
