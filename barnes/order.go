package barnes

import (
	"errors"
	"slices"
	"sort"

	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

var ErrNegativeRequestedQuantity = errors.New("requested quantity must not be negative")

// OrderLine is a requested quantity for one ISBN.
type OrderLine struct {
	ISBN     string
	Quantity int
}

// Order is an insertion-ordered mapping of ISBN to requested quantity.
// The order of its lines is the order in which purchases are executed.
type Order struct {
	lines []OrderLine
	index map[string]int
}

// NewOrder creates an empty Order.
func NewOrder() *Order {
	return &Order{
		lines: make([]OrderLine, 0),
		index: make(map[string]int),
	}
}

// OrderFromMap builds an Order from a plain map. Lines are ordered by ISBN ascending.
func OrderFromMap(quantities map[string]int) (*Order, error) {
	isbns := make([]string, 0, len(quantities))
	for isbn := range quantities {
		isbns = append(isbns, isbn)
	}

	sort.Strings(isbns)

	order := NewOrder()
	for _, isbn := range isbns {
		if err := order.Add(isbn, quantities[isbn]); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Add requests quantity copies of the book with the given ISBN.
// Adding an ISBN that is already part of the order increases its quantity and keeps its position.
func (o *Order) Add(isbn string, quantity int) error {
	if isbn == "" {
		return errors.Join(pricing.ErrInvalidInput, ErrEmptyISBN)
	}

	if quantity < 0 {
		return errors.Join(pricing.ErrInvalidInput, ErrNegativeRequestedQuantity)
	}

	if o.index == nil {
		o.index = make(map[string]int)
	}

	if i, ok := o.index[isbn]; ok {
		o.lines[i].Quantity += quantity
		return nil
	}

	o.index[isbn] = len(o.lines)
	o.lines = append(o.lines, OrderLine{ISBN: isbn, Quantity: quantity})

	return nil
}

// Lines returns a copy of the order lines in insertion order.
func (o *Order) Lines() []OrderLine {
	return slices.Clone(o.lines)
}

// Len returns the number of distinct ISBNs in the order.
func (o *Order) Len() int {
	return len(o.lines)
}

// QuantityOf returns the requested quantity for the ISBN, or 0 if it is not part of the order.
func (o *Order) QuantityOf(isbn string) int {
	if i, ok := o.index[isbn]; ok {
		return o.lines[i].Quantity
	}

	return 0
}
