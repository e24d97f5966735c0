package barnes

import (
	"context"
	"errors"
)

var ErrBookNotFound = errors.New("book not found")

// BookDatabase resolves books by ISBN.
// Implementations signal an unknown ISBN with an error wrapping ErrBookNotFound.
type BookDatabase interface {
	FindByISBN(ctx context.Context, isbn string) (Book, error)
}

// BookDatabaseFunc adapts an ordinary function to the BookDatabase interface.
type BookDatabaseFunc func(ctx context.Context, isbn string) (Book, error)

// FindByISBN calls f(ctx, isbn).
func (f BookDatabaseFunc) FindByISBN(ctx context.Context, isbn string) (Book, error) {
	return f(ctx, isbn)
}

// BuyBookProcess is the purchase side effect, invoked with the fulfillable quantity of an order line.
type BuyBookProcess interface {
	BuyBook(ctx context.Context, book Book, quantity int) error
}

// BuyBookProcessFunc adapts an ordinary function to the BuyBookProcess interface.
type BuyBookProcessFunc func(ctx context.Context, book Book, quantity int) error

// BuyBook calls f(ctx, book, quantity).
func (f BuyBookProcessFunc) BuyBook(ctx context.Context, book Book, quantity int) error {
	return f(ctx, book, quantity)
}
