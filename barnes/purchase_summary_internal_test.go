package barnes

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func givenBook(t *testing.T, isbn string) Book {
	book, err := BuildBook(isbn, decimal.NewFromInt(10), 1)
	assert.NoError(t, err, "error in arranging test data")

	return book
}

func Test_PurchaseSummary_AddUnavailable_AccumulatesPerBookInRecordingOrder(t *testing.T) {
	// arrange
	first := givenBook(t, "978-0134757599")
	second := givenBook(t, "978-0132350884")
	summary := newPurchaseSummary()

	// act
	summary.addUnavailable(first, 2)
	summary.addUnavailable(second, 1)
	summary.addUnavailable(first, 3)

	// assert
	books := summary.UnavailableBooks()
	assert.Len(t, books, 2)
	assert.True(t, books[0].Book.Equal(first))
	assert.Equal(t, 5, books[0].Shortfall)
	assert.True(t, books[1].Book.Equal(second))
	assert.Equal(t, 1, books[1].Shortfall)

	shortfall, found := summary.UnavailableFor(first)
	assert.True(t, found)
	assert.Equal(t, 5, shortfall)
	assert.Equal(t, map[string]int{first.Key(): 5, second.Key(): 1}, summary.Unavailable())
	assert.False(t, summary.IsAllAvailable())
}

func Test_PurchaseSummary_UnavailableFor_UnknownBook(t *testing.T) {
	// arrange
	summary := newPurchaseSummary()

	// act
	shortfall, found := summary.UnavailableFor(givenBook(t, "978-0321125217"))

	// assert
	assert.False(t, found)
	assert.Equal(t, 0, shortfall)
	assert.True(t, summary.IsAllAvailable())
}
