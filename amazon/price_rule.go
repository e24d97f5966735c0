package amazon

import (
	"github.com/shopspring/decimal"
)

// PriceRule contributes an amount to the cart total, computed over a snapshot of the cart items.
// Implementations must be stateless and must not modify the items.
type PriceRule interface {
	PriceToAggregate(items []Item) decimal.Decimal
}

// PriceRuleFunc adapts an ordinary function to the PriceRule interface.
type PriceRuleFunc func(items []Item) decimal.Decimal

// PriceToAggregate calls f(items).
func (f PriceRuleFunc) PriceToAggregate(items []Item) decimal.Decimal {
	return f(items)
}

// RegularCost sums quantity * unit price over all items.
type RegularCost struct{}

func (RegularCost) PriceToAggregate(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total())
	}

	return total
}

var electronicsSurcharge = decimal.RequireFromString("7.5")

// ExtraCostForElectronics charges a flat 7.5 once per cart that holds at least one electronic item,
// regardless of how many electronic items or which quantities.
type ExtraCostForElectronics struct{}

func (ExtraCostForElectronics) PriceToAggregate(items []Item) decimal.Decimal {
	for _, item := range items {
		if item.IsElectronic() {
			return electronicsSurcharge
		}
	}

	return decimal.Zero
}
