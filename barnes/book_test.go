package barnes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/pricing-calculators-go/barnes"
	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
	. "github.com/AntonStoeckl/pricing-calculators-go/testutil/helper" //nolint:revive
)

func Test_Book_IdentityIsTheISBN(t *testing.T) {
	// arrange
	book := GivenBook(t, isbnCleanCode, "10", 5)
	samePrintingOtherStock := GivenBook(t, isbnCleanCode, "12", 0)
	otherBook := GivenBook(t, isbnRefactoring, "10", 5)

	// act & assert
	assert.True(t, book.Equal(samePrintingOtherStock))
	assert.Equal(t, book.Hash(), samePrintingOtherStock.Hash())
	assert.Equal(t, book.Key(), samePrintingOtherStock.Key())
	assert.False(t, book.Equal(otherBook))
	assert.NotEqual(t, book.Hash(), otherBook.Hash())
}

func Test_BuildBook(t *testing.T) {
	// act
	book, err := barnes.BuildBook(isbnCleanCode, Dec(t, "37.49"), 3)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, isbnCleanCode, book.ISBN())
	assert.Equal(t, "37.49", book.Price().String())
	assert.Equal(t, 3, book.Quantity())
}

func Test_BuildBook_RejectsInvalidInput(t *testing.T) {
	_, errEmptyISBN := barnes.BuildBook("", Dec(t, "1"), 1)
	assert.ErrorIs(t, errEmptyISBN, pricing.ErrInvalidInput)
	assert.ErrorIs(t, errEmptyISBN, barnes.ErrEmptyISBN)

	_, errNegativePrice := barnes.BuildBook(isbnCleanCode, Dec(t, "-1"), 1)
	assert.ErrorIs(t, errNegativePrice, barnes.ErrNegativePrice)

	_, errNegativeStock := barnes.BuildBook(isbnCleanCode, Dec(t, "1"), -1)
	assert.ErrorIs(t, errNegativeStock, barnes.ErrNegativeStock)
}
