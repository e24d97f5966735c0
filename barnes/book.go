package barnes

import (
	"errors"
	"hash/fnv"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

var ErrEmptyISBN = errors.New("isbn must not be empty")
var ErrNegativePrice = errors.New("price must not be negative")
var ErrNegativeStock = errors.New("stock quantity must not be negative")

// Book is an immutable catalog entry. Its identity is the ISBN alone.
type Book struct {
	isbn     string
	price    decimal.Decimal
	quantity int
}

// BuildBook is a factory method for Book.
// Returns an error wrapping pricing.ErrInvalidInput for an empty ISBN, a negative price or negative stock.
func BuildBook(isbn string, price decimal.Decimal, quantity int) (Book, error) {
	if isbn == "" {
		return Book{}, errors.Join(pricing.ErrInvalidInput, ErrEmptyISBN)
	}

	if price.IsNegative() {
		return Book{}, errors.Join(pricing.ErrInvalidInput, ErrNegativePrice)
	}

	if quantity < 0 {
		return Book{}, errors.Join(pricing.ErrInvalidInput, ErrNegativeStock)
	}

	return Book{isbn: isbn, price: price, quantity: quantity}, nil
}

func (b Book) ISBN() string {
	return b.isbn
}

func (b Book) Price() decimal.Decimal {
	return b.price
}

// Quantity returns the available stock.
func (b Book) Quantity() int {
	return b.quantity
}

// Key returns the identity key of the book, to be used as a map key.
func (b Book) Key() string {
	return b.isbn
}

// Equal reports whether both books share the same ISBN. Price and stock are ignored.
func (b Book) Equal(other Book) bool {
	return b.isbn == other.isbn
}

// Hash returns a 64-bit FNV-1a hash of the ISBN, consistent with Equal.
func (b Book) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(b.isbn))

	return h.Sum64()
}
