package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFromMargin(t *testing.T) {
	assert.Equal(t, 120.0, PriceFromMargin(100, 20))
	assert.Equal(t, 72.0, PriceFromMargin(80, -10))
	assert.Equal(t, 0.0, PriceFromMargin(0, 30))
	assert.Equal(t, 13.33, PriceFromMargin(10, 33.333))
}

func TestMarginFromPrice_ZeroCost(t *testing.T) {
	assert.Equal(t, 0.0, MarginFromPrice(0, 120))
	assert.Equal(t, 0.0, MarginFromPrice(0, 0))
}

func TestMarginRoundTrip(t *testing.T) {
	cases := []struct {
		cost, margin float64
	}{
		{100, 20},
		{200, 15.5},
		{80, -10},
		{50, 12.34},
		{1000, 0},
		{250, 99.99},
	}
	for _, c := range cases {
		price := PriceFromMargin(c.cost, c.margin)
		assert.InDelta(t, c.margin, MarginFromPrice(c.cost, price), 0.01, "cost=%v margin=%v", c.cost, c.margin)
	}
}

func TestPricing_Resolve(t *testing.T) {
	m, p, err := MarginOf(20).Resolve(100)
	require.NoError(t, err)
	assert.Equal(t, 20.0, m)
	assert.Equal(t, 120.0, p)

	m, p, err = PriceOf(150).Resolve(100)
	require.NoError(t, err)
	assert.Equal(t, 50.0, m)
	assert.Equal(t, 150.0, p)

	m, p, err = PriceOf(15).Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)
	assert.Equal(t, 15.0, p)

	_, _, err = Pricing{Mode: "markup", Value: 1}.Resolve(1)
	assert.True(t, errors.Is(err, ErrInvalidItem))
}

func TestDraft_Item(t *testing.T) {
	it, err := Draft{ID: "P1", Name: "Hosting", Cost: 100, Pricing: MarginOf(20)}.Item()
	require.NoError(t, err)
	assert.Equal(t, 120.0, it.UnitPrice)
	assert.Equal(t, OneTime, it.BillingType)

	_, err = Draft{Name: "Setup", Cost: 10, Pricing: MarginOf(0), BillingType: Monthly}.Item()
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.Contains(t, err.Error(), "id is required")

	_, err = Draft{ID: "P2", Cost: -1, BillingType: "weekly"}.Item()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "cost must be >= 0")
	assert.Contains(t, err.Error(), `unknown billing type "weekly"`)
}

func TestBillingType_Codes(t *testing.T) {
	assert.Equal(t, "unique", OneTime.RemoteCode())
	assert.Equal(t, "yearly", Yearly.RemoteCode())
	assert.Equal(t, OneTime, ParseRemoteCode("unique"))
	assert.Equal(t, Monthly, ParseRemoteCode("Monthly"))
	assert.Equal(t, "Único", OneTime.Label())
	assert.Equal(t, "Recurrente", Yearly.Label())
	assert.False(t, OneTime.Recurring())
	assert.True(t, Yearly.Recurring())
}
