// Package shoppingcart provides the ShoppingCartAdaptor, which exposes a shopping cart
// over an underlying Database collaborator.
//
// Two Database implementations exist: MemoryDatabase in this package, and
// postgresengine.CartDatabase for PostgreSQL.
//
// Usage:
//
//	db := shoppingcart.NewMemoryDatabase()
//	cart, _ := shoppingcart.NewShoppingCartAdaptor(db)
//	_ = cart.Add(ctx, item)
//	calculator, _ := amazon.NewAmazon(cart, rules)
package shoppingcart
