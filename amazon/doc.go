// Package amazon implements a shopping-cart total calculator.
//
// The calculator composes a ShoppingCart and an ordered list of PriceRule(s).
// Each rule contributes an amount computed over the same snapshot of cart items,
// and the total is the sum of all contributions.
//
// Built-in rules:
//   - RegularCost: sum of quantity * unit price over all items
//   - DeliveryPrice: tiered fee by the number of item entries in the cart
//   - ExtraCostForElectronics: flat surcharge if the cart holds any electronic item
//
// Usage:
//
//	amazon, _ := amazon.NewAmazon(
//		cart,
//		[]amazon.PriceRule{amazon.RegularCost{}, amazon.NewDeliveryPrice(), amazon.ExtraCostForElectronics{}},
//		amazon.WithLogger(slog.Default()),
//	)
//
//	total, err := amazon.Calculate(ctx)
package amazon
