package barnes

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// UnavailableBook is a shortfall recorded for one book: the quantity that was requested but not in stock.
type UnavailableBook struct {
	Book      Book
	Shortfall int
}

// PurchaseSummary is the result of pricing one order. A fresh summary is built per call.
type PurchaseSummary struct {
	totalPrice decimal.Decimal
	books      []UnavailableBook
	index      map[string]int // Book.Key() -> position in books
}

func newPurchaseSummary() *PurchaseSummary {
	return &PurchaseSummary{
		totalPrice: decimal.Zero,
		books:      make([]UnavailableBook, 0),
		index:      make(map[string]int),
	}
}

func (s *PurchaseSummary) addToTotalPrice(amount decimal.Decimal) {
	s.totalPrice = s.totalPrice.Add(amount)
}

func (s *PurchaseSummary) addUnavailable(book Book, shortfall int) {
	if i, ok := s.index[book.Key()]; ok {
		s.books[i].Shortfall += shortfall
		return
	}

	s.index[book.Key()] = len(s.books)
	s.books = append(s.books, UnavailableBook{Book: book, Shortfall: shortfall})
}

// TotalPrice returns the price of all fulfillable quantities.
func (s *PurchaseSummary) TotalPrice() decimal.Decimal {
	return s.totalPrice
}

// Unavailable returns a copy of the shortfall per book, keyed by Book.Key().
func (s *PurchaseSummary) Unavailable() map[string]int {
	unavailable := make(map[string]int, len(s.books))
	for _, b := range s.books {
		unavailable[b.Book.Key()] = b.Shortfall
	}

	return unavailable
}

// UnavailableFor returns the shortfall recorded for the book.
// Lookup is by identity, so any Book with the same ISBN finds the entry.
func (s *PurchaseSummary) UnavailableFor(book Book) (int, bool) {
	i, ok := s.index[book.Key()]
	if !ok {
		return 0, false
	}

	return s.books[i].Shortfall, true
}

// UnavailableBooks returns the recorded shortfalls in the order they were recorded.
func (s *PurchaseSummary) UnavailableBooks() []UnavailableBook {
	books := make([]UnavailableBook, len(s.books))
	copy(books, s.books)

	return books
}

// IsAllAvailable reports whether every requested copy could be fulfilled.
func (s *PurchaseSummary) IsAllAvailable() bool {
	return len(s.books) == 0
}

type purchaseSummaryJSON struct {
	TotalPrice  string                `json:"totalPrice"`
	Unavailable []unavailableBookJSON `json:"unavailable"`
}

type unavailableBookJSON struct {
	ISBN      string `json:"isbn"`
	Shortfall int    `json:"shortfall"`
}

// MarshalJSON encodes the summary with the total as a decimal string and shortfalls in recording order.
func (s *PurchaseSummary) MarshalJSON() ([]byte, error) {
	out := purchaseSummaryJSON{
		TotalPrice:  s.totalPrice.String(),
		Unavailable: make([]unavailableBookJSON, 0, len(s.books)),
	}

	for _, b := range s.books {
		out.Unavailable = append(out.Unavailable, unavailableBookJSON{ISBN: b.Book.ISBN(), Shortfall: b.Shortfall})
	}

	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(out)
}
