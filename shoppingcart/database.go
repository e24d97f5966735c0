package shoppingcart

import (
	"context"
	"slices"
	"sync"

	"github.com/AntonStoeckl/pricing-calculators-go/amazon"
)

// Database defines the storage operations needed by the ShoppingCartAdaptor.
// SelectAll must return the items in insertion order.
type Database interface {
	Insert(ctx context.Context, item amazon.Item) error
	SelectAll(ctx context.Context) ([]amazon.Item, error)
	Count(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

// MemoryDatabase is an insertion-ordered in-memory Database, safe for concurrent use.
type MemoryDatabase struct {
	mu    sync.RWMutex
	items []amazon.Item
}

// NewMemoryDatabase creates an empty MemoryDatabase.
func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{items: make([]amazon.Item, 0)}
}

func (db *MemoryDatabase) Insert(ctx context.Context, item amazon.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	db.items = append(db.items, item)

	return nil
}

// SelectAll returns a copy of the stored items, so callers can't modify the stored state.
func (db *MemoryDatabase) SelectAll(ctx context.Context) ([]amazon.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	return slices.Clone(db.items), nil
}

func (db *MemoryDatabase) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.items), nil
}

func (db *MemoryDatabase) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	db.items = db.items[:0]

	return nil
}
