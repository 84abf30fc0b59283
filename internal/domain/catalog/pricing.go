package catalog

import "fmt"

type PricingMode string

const (
	// ByMargin makes the margin authoritative; the price follows.
	ByMargin PricingMode = "margin"
	// ByPrice makes the unit price authoritative; the margin follows.
	ByPrice PricingMode = "price"
)

// Pricing is the last edited side of the cost/margin/price triangle.
type Pricing struct {
	Mode  PricingMode `json:"mode"`
	Value float64     `json:"value"`
}

func MarginOf(v float64) Pricing { return Pricing{Mode: ByMargin, Value: v} }
func PriceOf(v float64) Pricing  { return Pricing{Mode: ByPrice, Value: v} }

// Resolve returns margin and unit price for the given cost.
func (p Pricing) Resolve(cost float64) (margin, unitPrice float64, err error) {
	switch p.Mode {
	case ByMargin, "":
		return p.Value, PriceFromMargin(cost, p.Value), nil
	case ByPrice:
		return MarginFromPrice(cost, p.Value), p.Value, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown pricing mode %q", ErrInvalidItem, p.Mode)
	}
}

// Draft is an item as entered by the user, before price derivation.
type Draft struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Cost        float64     `json:"cost"`
	Pricing     Pricing     `json:"pricing"`
	BillingType BillingType `json:"billingType"`
	Notes       string      `json:"notes,omitempty"`
}

// Item derives the persisted item. The id must already be set; use
// Catalog.FreeID for new items.
func (d Draft) Item() (Item, error) {
	margin, price, err := d.Pricing.Resolve(d.Cost)
	if err != nil {
		return Item{}, err
	}
	bt := d.BillingType
	if bt == "" {
		bt = OneTime
	}
	it := Item{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Cost:        d.Cost,
		Margin:      margin,
		UnitPrice:   price,
		BillingType: bt,
		Notes:       d.Notes,
	}
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	return it, nil
}
