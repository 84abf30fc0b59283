package quote

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/go_backend/internal/domain/amount"
	"quotedesk/go_backend/internal/domain/catalog"
)

func line(price float64, bt catalog.BillingType, qty int, d Discount) Line {
	return Line{
		Item:     catalog.Item{ID: "P1", UnitPrice: price, BillingType: bt},
		LineID:   "l",
		Quantity: qty,
		Discount: d,
	}
}

func TestLineDiscountAmount(t *testing.T) {
	assert.InDelta(t, 12.0, LineDiscountAmount(line(120, catalog.OneTime, 3, Discount{Percent, 10})), 1e-9)
	// fixed is per unit, not scaled by quantity
	assert.Equal(t, 5.0, LineDiscountAmount(line(120, catalog.OneTime, 3, Discount{Fixed, 5})))
	assert.Equal(t, 0.0, LineDiscountAmount(NewLine(catalog.Item{UnitPrice: 50}, "x")))
}

func TestLineUnitNet_PercentWithinBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		price := r.Float64() * 1000
		pct := r.Float64() * 100
		l := line(price, catalog.OneTime, 1, Discount{Percent, pct})
		net := LineUnitNet(l)
		assert.GreaterOrEqual(t, net, 0.0)
		assert.LessOrEqual(t, net, price)
	}
}

func TestLineUnitNet_FloorsAtZero(t *testing.T) {
	assert.Equal(t, 0.0, LineUnitNet(line(120, catalog.OneTime, 2, Discount{Percent, 150})))
	assert.Equal(t, 0.0, LineUnitNet(line(120, catalog.OneTime, 2, Discount{Fixed, 121})))
	assert.Equal(t, 0.0, LineTotal(line(120, catalog.OneTime, 2, Discount{Fixed, 500})))
}

func TestTotals_OrderIndependent(t *testing.T) {
	lines := []Line{
		line(120, catalog.OneTime, 2, Discount{Percent, 10}),
		line(9.99, catalog.Monthly, 3, Discount{Fixed, 1}),
		line(99, catalog.Yearly, 1, Discount{Percent, 0}),
		line(15.5, catalog.OneTime, 7, Discount{Fixed, 20}),
		line(0.33, catalog.Monthly, 11, Discount{Percent, 3}),
	}
	oneTime, recurring := Totals(lines)

	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 20; i++ {
		shuffled := append([]Line(nil), lines...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		o, rc := Totals(shuffled)
		assert.InDelta(t, oneTime, o, 1e-9)
		assert.InDelta(t, recurring, rc, 1e-9)
	}
}

func TestTotals_MonthlyAndYearlyShareRecurring(t *testing.T) {
	oneTime, recurring := Totals([]Line{
		line(10, catalog.Monthly, 1, Discount{Percent, 0}),
		line(100, catalog.Yearly, 1, Discount{Percent, 0}),
	})
	assert.Equal(t, 0.0, oneTime)
	assert.Equal(t, 110.0, recurring)
}

func TestEndToEnd_SingleDiscountedLine(t *testing.T) {
	it, err := catalog.Draft{ID: "P1", Name: "Setup", Cost: 100, Pricing: catalog.MarginOf(20)}.Item()
	require.NoError(t, err)
	require.Equal(t, 120.0, it.UnitPrice)

	l := NewLine(it, "l1")
	l.Quantity = 2
	l.Discount = Discount{Kind: Percent, Value: 10}

	assert.Equal(t, 108.0, amount.Round2(LineUnitNet(l)))
	assert.Equal(t, 216.0, amount.Round2(LineTotal(l)))

	oneTime, recurring := Totals([]Line{l})
	assert.Equal(t, 216.0, amount.Round2(oneTime))
	assert.Equal(t, 0.0, recurring)

	f := LineFigures(l)
	assert.Equal(t, 12.0, amount.Round2(f.Discount))
}
