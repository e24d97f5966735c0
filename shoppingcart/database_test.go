package shoppingcart_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/pricing-calculators-go/shoppingcart"
	. "github.com/AntonStoeckl/pricing-calculators-go/testutil/helper" //nolint:revive
)

func Test_MemoryDatabase_SelectAll_ReturnsCopy(t *testing.T) {
	// setup
	ctx := context.Background()
	db := shoppingcart.NewMemoryDatabase()

	// arrange
	GivenItemsWereInserted(t, ctx, db, FixtureLaptop(t))

	// act
	items, err := db.SelectAll(ctx)
	assert.NoError(t, err)
	items[0] = FixtureCookBook(t)

	// assert
	stored, err := db.SelectAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", stored[0].Name())
}

func Test_MemoryDatabase_RespectsCancelledContext(t *testing.T) {
	// setup
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	db := shoppingcart.NewMemoryDatabase()

	// act
	insertErr := db.Insert(ctx, FixtureLaptop(t))
	_, selectErr := db.SelectAll(ctx)
	_, countErr := db.Count(ctx)
	resetErr := db.Reset(ctx)

	// assert
	assert.ErrorIs(t, insertErr, context.Canceled)
	assert.ErrorIs(t, selectErr, context.Canceled)
	assert.ErrorIs(t, countErr, context.Canceled)
	assert.ErrorIs(t, resetErr, context.Canceled)
}

func Test_MemoryDatabase_ConcurrentInserts(t *testing.T) {
	// setup
	ctx := context.Background()
	db := shoppingcart.NewMemoryDatabase()
	item := FixtureCookBook(t)

	// act
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = db.Insert(ctx, item)
		}()
	}
	wg.Wait()

	// assert
	count, err := db.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 50, count)
}
