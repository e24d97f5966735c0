package shoppingcart

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/pricing-calculators-go/amazon"
	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

const (
	logMsgItemAdded   = "item added to cart"
	logMsgAddFailed   = "failed to add item to cart"
	logMsgReadFailed  = "failed to read cart"
	logMsgCartCleared = "cart cleared"
	logMsgClearFailed = "failed to clear cart"
	logAttrError      = "error"
	logAttrItemName   = "item_name"
	logAttrItemType   = "item_type"
	logAttrQuantity   = "quantity"
)

var ErrAddingItemFailed = errors.New("adding item to cart failed")
var ErrReadingCartFailed = errors.New("reading cart failed")
var ErrClearingCartFailed = errors.New("clearing cart failed")

// ShoppingCartAdaptor exposes a shopping cart over a Database.
// It satisfies amazon.ShoppingCart.
type ShoppingCartAdaptor struct {
	db     Database
	logger pricing.Logger
}

// Option defines a functional option for configuring ShoppingCartAdaptor.
type Option func(*ShoppingCartAdaptor) error

// WithLogger sets the logger for the ShoppingCartAdaptor.
func WithLogger(logger pricing.Logger) Option {
	return func(c *ShoppingCartAdaptor) error {
		c.logger = logger
		return nil
	}
}

// NewShoppingCartAdaptor creates a ShoppingCartAdaptor over the given Database.
func NewShoppingCartAdaptor(db Database, options ...Option) (*ShoppingCartAdaptor, error) {
	if db == nil {
		return nil, pricing.ErrNilCollaborator
	}

	c := &ShoppingCartAdaptor{db: db}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add stores the item as a new cart entry. Adding the same product twice creates two entries.
func (c *ShoppingCartAdaptor) Add(ctx context.Context, item amazon.Item) error {
	if err := c.db.Insert(ctx, item); err != nil {
		c.logError(logMsgAddFailed, err, logAttrItemName, item.Name())
		return errors.Join(ErrAddingItemFailed, err)
	}

	if c.logger != nil {
		c.logger.Debug(
			logMsgItemAdded,
			logAttrItemName, item.Name(),
			logAttrItemType, string(item.Type()),
			logAttrQuantity, item.Quantity(),
		)
	}

	return nil
}

// Items returns the cart entries in the order they were added.
func (c *ShoppingCartAdaptor) Items(ctx context.Context) ([]amazon.Item, error) {
	items, err := c.db.SelectAll(ctx)
	if err != nil {
		c.logError(logMsgReadFailed, err)
		return nil, errors.Join(ErrReadingCartFailed, err)
	}

	return items, nil
}

// NumberOfItems returns the number of entries in the cart, not the sum of their quantities.
func (c *ShoppingCartAdaptor) NumberOfItems(ctx context.Context) (int, error) {
	count, err := c.db.Count(ctx)
	if err != nil {
		c.logError(logMsgReadFailed, err)
		return 0, errors.Join(ErrReadingCartFailed, err)
	}

	return count, nil
}

// Clear removes all entries from the cart.
func (c *ShoppingCartAdaptor) Clear(ctx context.Context) error {
	if err := c.db.Reset(ctx); err != nil {
		c.logError(logMsgClearFailed, err)
		return errors.Join(ErrClearingCartFailed, err)
	}

	if c.logger != nil {
		c.logger.Info(logMsgCartCleared)
	}

	return nil
}

func (c *ShoppingCartAdaptor) logError(msg string, err error, args ...any) {
	if c.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		c.logger.Error(msg, allArgs...)
	}
}
