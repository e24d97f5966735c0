package shoppingcart_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/pricing-calculators-go/amazon"
	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
	"github.com/AntonStoeckl/pricing-calculators-go/shoppingcart"
	. "github.com/AntonStoeckl/pricing-calculators-go/testutil/helper" //nolint:revive
)

type failingDatabase struct {
	err error
}

func (db failingDatabase) Insert(_ context.Context, _ amazon.Item) error     { return db.err }
func (db failingDatabase) SelectAll(_ context.Context) ([]amazon.Item, error) { return nil, db.err }
func (db failingDatabase) Count(_ context.Context) (int, error)               { return 0, db.err }
func (db failingDatabase) Reset(_ context.Context) error                      { return db.err }

func givenCart(t *testing.T, options ...shoppingcart.Option) *shoppingcart.ShoppingCartAdaptor {
	cart, err := shoppingcart.NewShoppingCartAdaptor(shoppingcart.NewMemoryDatabase(), options...)
	assert.NoError(t, err, "error in arranging test data")

	return cart
}

func Test_NewShoppingCartAdaptor_FailsWithNilDatabase(t *testing.T) {
	// act
	cart, err := shoppingcart.NewShoppingCartAdaptor(nil)

	// assert
	assert.ErrorIs(t, err, pricing.ErrNilCollaborator)
	assert.Nil(t, cart)
}

func Test_ShoppingCartAdaptor_NumberOfItems_CountsDuplicateEntries(t *testing.T) {
	// setup
	ctx := context.Background()
	cart := givenCart(t)

	// arrange
	laptop := FixtureLaptop(t)
	assert.NoError(t, cart.Add(ctx, laptop))
	assert.NoError(t, cart.Add(ctx, laptop))
	assert.NoError(t, cart.Add(ctx, FixtureCookBook(t)))

	// act
	numberOfItems, err := cart.NumberOfItems(ctx)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 3, numberOfItems)
}

func Test_ShoppingCartAdaptor_Items_ReturnsInsertionOrder(t *testing.T) {
	// setup
	ctx := context.Background()
	cart := givenCart(t)

	// arrange
	assert.NoError(t, cart.Add(ctx, FixtureCookBook(t)))
	assert.NoError(t, cart.Add(ctx, FixtureLaptop(t)))

	// act
	items, err := cart.Items(ctx)

	// assert
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Book", items[0].Name())
	assert.Equal(t, "Laptop", items[1].Name())
}

func Test_ShoppingCartAdaptor_Clear_EmptiesCart(t *testing.T) {
	// setup
	ctx := context.Background()
	cart := givenCart(t)

	// arrange
	assert.NoError(t, cart.Add(ctx, FixtureLaptop(t)))

	// act
	err := cart.Clear(ctx)

	// assert
	assert.NoError(t, err)
	numberOfItems, err := cart.NumberOfItems(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, numberOfItems)
}

func Test_ShoppingCartAdaptor_WrapsDatabaseErrors(t *testing.T) {
	// setup
	ctx := context.Background()
	dbErr := errors.New("disk full")
	cart, err := shoppingcart.NewShoppingCartAdaptor(failingDatabase{err: dbErr})
	assert.NoError(t, err)

	// act
	addErr := cart.Add(ctx, FixtureLaptop(t))
	_, itemsErr := cart.Items(ctx)
	_, countErr := cart.NumberOfItems(ctx)
	clearErr := cart.Clear(ctx)

	// assert
	assert.ErrorIs(t, addErr, shoppingcart.ErrAddingItemFailed)
	assert.ErrorIs(t, addErr, dbErr)
	assert.ErrorIs(t, itemsErr, shoppingcart.ErrReadingCartFailed)
	assert.ErrorIs(t, countErr, shoppingcart.ErrReadingCartFailed)
	assert.ErrorIs(t, clearErr, shoppingcart.ErrClearingCartFailed)
}

func Test_ShoppingCartAdaptor_WithLogger_LogsOperations(t *testing.T) {
	// setup
	ctx := context.Background()
	logger, logHandler := NewSpyLogger()
	cart := givenCart(t, shoppingcart.WithLogger(logger))

	// act
	assert.NoError(t, cart.Add(ctx, FixtureLaptop(t)))
	assert.NoError(t, cart.Clear(ctx))

	// assert
	assert.True(t,
		logHandler.HasLogWithMessage(slog.LevelDebug, "item added to cart").
			WithAttrValue("item_name", "Laptop").
			WithAttrValue("item_type", "ELECTRONIC").
			WithAttrValue("quantity", "1").
			Assert(), "should log the added item",
	)
	assert.True(t, logHandler.HasLog(slog.LevelInfo, "cart cleared"))
}

func Test_ShoppingCartAdaptor_WithLogger_LogsFailures(t *testing.T) {
	// setup
	ctx := context.Background()
	logger, logHandler := NewSpyLogger()
	cart, err := shoppingcart.NewShoppingCartAdaptor(failingDatabase{err: errors.New("disk full")}, shoppingcart.WithLogger(logger))
	assert.NoError(t, err)

	// act
	_ = cart.Clear(ctx)

	// assert
	assert.True(t,
		logHandler.HasLogWithMessage(slog.LevelError, "failed to clear cart").
			WithAttrValue("error", "disk full").
			Assert(), "should log the failure",
	)
	assert.False(t, logHandler.HasLog(slog.LevelInfo, "cart cleared"))
}
