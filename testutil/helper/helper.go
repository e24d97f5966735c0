package helper

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/pricing-calculators-go/amazon"
	"github.com/AntonStoeckl/pricing-calculators-go/barnes"
)

// Dec parses a decimal literal, failing the test on malformed input.
func Dec(t testing.TB, value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	assert.NoError(t, err, "error in arranging test data")

	return d
}

func GivenItem(t testing.TB, itemType amazon.ItemType, name string, quantity int, unitPrice string) amazon.Item {
	item, err := amazon.BuildItem(itemType, name, quantity, Dec(t, unitPrice))
	assert.NoError(t, err, "error in arranging test data")

	return item
}

func FixtureLaptop(t testing.TB) amazon.Item {
	return GivenItem(t, amazon.Electronic, "Laptop", 1, "1000")
}

func FixtureCookBook(t testing.TB) amazon.Item {
	return GivenItem(t, amazon.Other, "Book", 2, "20")
}

func GivenBook(t testing.TB, isbn string, price string, stock int) barnes.Book {
	book, err := barnes.BuildBook(isbn, Dec(t, price), stock)
	assert.NoError(t, err, "error in arranging test data")

	return book
}

func GivenOrder(t testing.TB, lines ...barnes.OrderLine) *barnes.Order {
	order := barnes.NewOrder()

	for _, line := range lines {
		assert.NoError(t, order.Add(line.ISBN, line.Quantity), "error in arranging test data")
	}

	return order
}

// ItemInserter is implemented by every cart storage.
type ItemInserter interface {
	Insert(ctx context.Context, item amazon.Item) error
}

func GivenItemsWereInserted(t testing.TB, ctx context.Context, db ItemInserter, items ...amazon.Item) {
	for _, item := range items {
		assert.NoError(t, db.Insert(ctx, item), "error in arranging test data")
	}
}

// BookFinder serves books from memory, keyed by ISBN.
type BookFinder map[string]barnes.Book

func NewBookFinder(books ...barnes.Book) BookFinder {
	finder := make(BookFinder, len(books))
	for _, book := range books {
		finder[book.Key()] = book
	}

	return finder
}

func (f BookFinder) FindByISBN(_ context.Context, isbn string) (barnes.Book, error) {
	book, ok := f[isbn]
	if !ok {
		return barnes.Book{}, barnes.ErrBookNotFound
	}

	return book, nil
}

// PurchaseCall is one captured BuyBook invocation.
type PurchaseCall struct {
	ISBN     string
	Quantity int
}

// BuyBookProcessSpy captures BuyBook invocations and optionally fails them.
// With failOnISBN set, only purchases of that isbn fail.
type BuyBookProcessSpy struct {
	calls      []PurchaseCall
	err        error
	failOnISBN string
}

func NewBuyBookProcessSpy() *BuyBookProcessSpy {
	return &BuyBookProcessSpy{calls: make([]PurchaseCall, 0)}
}

func NewFailingBuyBookProcessSpy(err error) *BuyBookProcessSpy {
	return &BuyBookProcessSpy{calls: make([]PurchaseCall, 0), err: err}
}

func NewBuyBookProcessSpyFailingFor(isbn string, err error) *BuyBookProcessSpy {
	return &BuyBookProcessSpy{calls: make([]PurchaseCall, 0), err: err, failOnISBN: isbn}
}

func (s *BuyBookProcessSpy) BuyBook(_ context.Context, book barnes.Book, quantity int) error {
	s.calls = append(s.calls, PurchaseCall{ISBN: book.ISBN(), Quantity: quantity})

	if s.failOnISBN != "" && s.failOnISBN != book.ISBN() {
		return nil
	}

	return s.err
}

func (s *BuyBookProcessSpy) Calls() []PurchaseCall {
	return s.calls
}
