package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"quotedesk/go_backend/internal/domain/amount"
)

type BillingType string

const (
	OneTime BillingType = "one-time"
	Monthly BillingType = "monthly"
	Yearly  BillingType = "yearly"
)

func (b BillingType) Valid() bool {
	switch b {
	case OneTime, Monthly, Yearly:
		return true
	}
	return false
}

// Recurring reports whether the billing type aggregates into the recurring
// total. Monthly and yearly share one bucket with no unit normalization.
func (b BillingType) Recurring() bool {
	return b == Monthly || b == Yearly
}

// RemoteCode is the code used by the hosted inventory table.
func (b BillingType) RemoteCode() string {
	if b == OneTime {
		return "unique"
	}
	return string(b)
}

// Label is the human label sent to the webhook receiver.
func (b BillingType) Label() string {
	if b == OneTime {
		return "Único"
	}
	return "Recurrente"
}

func ParseRemoteCode(code string) BillingType {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "monthly":
		return Monthly
	case "yearly":
		return Yearly
	default:
		return OneTime
	}
}

type Item struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Cost        float64     `json:"cost"`
	Margin      float64     `json:"margin"`
	UnitPrice   float64     `json:"unitPrice"`
	BillingType BillingType `json:"billingType"`
	Notes       string      `json:"notes,omitempty"`
}

var ErrInvalidItem = errors.New("invalid catalog item")

func (it Item) Validate() error {
	var problems []string
	if strings.TrimSpace(it.ID) == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(it.Name) == "" {
		problems = append(problems, "name is required")
	}
	if it.Cost < 0 {
		problems = append(problems, "cost must be >= 0")
	}
	if !it.BillingType.Valid() {
		problems = append(problems, fmt.Sprintf("unknown billing type %q", it.BillingType))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidItem, strings.Join(problems, ", "))
	}
	return nil
}

// NewID returns a generated catalog id of the form P1234.
func NewID() string {
	return fmt.Sprintf("P%d", 1000+rand.IntN(9000))
}

// PriceFromMargin derives the unit price, rounded to cents.
func PriceFromMargin(cost, margin float64) float64 {
	return amount.Round2(cost * (1 + margin/100))
}

// MarginFromPrice back-derives the margin percent. Zero cost yields 0.
func MarginFromPrice(cost, unitPrice float64) float64 {
	if cost <= 0 {
		return 0
	}
	return amount.Round2((unitPrice/cost - 1) * 100)
}
