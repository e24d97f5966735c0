package amazon

import "context"

// ShoppingCart defines the interface the calculator needs to read the current cart content.
type ShoppingCart interface {
	Items(ctx context.Context) ([]Item, error)
}
