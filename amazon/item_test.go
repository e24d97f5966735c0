package amazon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/pricing-calculators-go/amazon"
	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
	. "github.com/AntonStoeckl/pricing-calculators-go/testutil/helper" //nolint:revive
)

func Test_BuildItem_Success(t *testing.T) {
	// act
	item, err := amazon.BuildItem(amazon.Electronic, "Laptop", 2, Dec(t, "999.99"))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, amazon.Electronic, item.Type())
	assert.Equal(t, "Laptop", item.Name())
	assert.Equal(t, 2, item.Quantity())
	assert.Equal(t, "999.99", item.UnitPrice().String())
	assert.Equal(t, "1999.98", item.Total().String())
	assert.True(t, item.IsElectronic())
}

func Test_BuildItem_AcceptsZeroQuantityAndPrice(t *testing.T) {
	// act
	item, err := amazon.BuildItem(amazon.Other, "Free sample", 0, Dec(t, "0"))

	// assert
	assert.NoError(t, err)
	assert.True(t, item.Total().IsZero())
	assert.False(t, item.IsElectronic())
}

func Test_BuildItem_RejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name      string
		itemType  amazon.ItemType
		itemName  string
		quantity  int
		unitPrice string
		expected  error
	}{
		{name: "unknown type", itemType: "FOOD", itemName: "Apple", quantity: 1, unitPrice: "1", expected: amazon.ErrUnknownItemType},
		{name: "empty name", itemType: amazon.Other, itemName: "", quantity: 1, unitPrice: "1", expected: amazon.ErrEmptyItemName},
		{name: "negative quantity", itemType: amazon.Other, itemName: "Book", quantity: -1, unitPrice: "1", expected: amazon.ErrNegativeQuantity},
		{name: "negative unit price", itemType: amazon.Other, itemName: "Book", quantity: 1, unitPrice: "-0.01", expected: amazon.ErrNegativeUnitPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := amazon.BuildItem(tc.itemType, tc.itemName, tc.quantity, Dec(t, tc.unitPrice))

			// assert
			assert.ErrorIs(t, err, pricing.ErrInvalidInput)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func Test_ParseItemType(t *testing.T) {
	electronic, err := amazon.ParseItemType("ELECTRONIC")
	assert.NoError(t, err)
	assert.Equal(t, amazon.Electronic, electronic)

	other, err := amazon.ParseItemType("OTHER")
	assert.NoError(t, err)
	assert.Equal(t, amazon.Other, other)

	_, err = amazon.ParseItemType("electronic")
	assert.ErrorIs(t, err, amazon.ErrUnknownItemType)
}
