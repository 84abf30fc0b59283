package quote

// LineDiscountAmount is the per-unit discount. A fixed discount is not
// scaled by quantity.
func LineDiscountAmount(l Line) float64 {
	if l.Discount.Kind == Fixed {
		return l.Discount.Value
	}
	return l.UnitPrice * (l.Discount.Value / 100)
}

// LineUnitNet is the discounted unit price, floored at zero.
func LineUnitNet(l Line) float64 {
	return max(0, l.UnitPrice-LineDiscountAmount(l))
}

func LineTotal(l Line) float64 {
	return LineUnitNet(l) * float64(l.Quantity)
}

// Totals sums line totals into the one-time and recurring buckets.
func Totals(lines []Line) (oneTime, recurring float64) {
	for _, l := range lines {
		if l.BillingType.Recurring() {
			recurring += LineTotal(l)
		} else {
			oneTime += LineTotal(l)
		}
	}
	return oneTime, recurring
}

// Figures is the computed view of one line.
type Figures struct {
	UnitPrice float64 `json:"unitPrice"`
	Discount  float64 `json:"discountAmount"`
	UnitNet   float64 `json:"unitNet"`
	Total     float64 `json:"lineTotal"`
}

func LineFigures(l Line) Figures {
	return Figures{
		UnitPrice: l.UnitPrice,
		Discount:  LineDiscountAmount(l),
		UnitNet:   LineUnitNet(l),
		Total:     LineTotal(l),
	}
}
