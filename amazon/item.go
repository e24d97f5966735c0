package amazon

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

var ErrUnknownItemType = errors.New("unknown item type")
var ErrEmptyItemName = errors.New("item name must not be empty")
var ErrNegativeQuantity = errors.New("quantity must not be negative")
var ErrNegativeUnitPrice = errors.New("unit price must not be negative")

// ItemType classifies an Item for pricing rules.
type ItemType string

const (
	Electronic ItemType = "ELECTRONIC"
	Other      ItemType = "OTHER"
)

// ParseItemType converts the stored representation back into an ItemType.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case Electronic, Other:
		return ItemType(s), nil
	default:
		return "", errors.Join(pricing.ErrInvalidInput, fmt.Errorf("%w: %q", ErrUnknownItemType, s))
	}
}

// Item is an immutable line in a shopping cart.
//
// It should only be constructed with BuildItem, which validates the input.
type Item struct {
	itemType  ItemType
	name      string
	quantity  int
	unitPrice decimal.Decimal
}

// BuildItem is a factory method for Item.
// Returns an error wrapping pricing.ErrInvalidInput for an unknown type, an empty name,
// a negative quantity or a negative unit price.
func BuildItem(itemType ItemType, name string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if _, err := ParseItemType(string(itemType)); err != nil {
		return Item{}, err
	}

	if name == "" {
		return Item{}, errors.Join(pricing.ErrInvalidInput, ErrEmptyItemName)
	}

	if quantity < 0 {
		return Item{}, errors.Join(pricing.ErrInvalidInput, ErrNegativeQuantity)
	}

	if unitPrice.IsNegative() {
		return Item{}, errors.Join(pricing.ErrInvalidInput, ErrNegativeUnitPrice)
	}

	return Item{
		itemType:  itemType,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func (i Item) Type() ItemType {
	return i.itemType
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Total returns quantity * unit price.
func (i Item) Total() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// IsElectronic reports whether the item is of type Electronic.
func (i Item) IsElectronic() bool {
	return i.itemType == Electronic
}
