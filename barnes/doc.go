// Package barnes implements a bookstore purchase calculator.
//
// BarnesAndNoble prices an Order (ISBN -> requested quantity) against a BookDatabase,
// splits each line into a fulfillable and an unavailable part, and invokes a BuyBookProcess
// for the fulfillable quantity of every line.
//
// Books have identity by ISBN: two Book values with the same ISBN are Equal and hash alike,
// whatever their price or stock. Mappings keyed by book therefore use Book.Key().
//
// Usage:
//
//	bn, _ := barnes.NewBarnesAndNoble(catalog, purchases)
//
//	order := barnes.NewOrder()
//	_ = order.Add("978-0134190440", 2)
//
//	summary, err := bn.GetPriceForCart(ctx, order)
package barnes
