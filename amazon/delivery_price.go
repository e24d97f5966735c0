package amazon

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

var ErrNoDeliveryTiers = errors.New("at least one delivery tier must be supplied")
var ErrDeliveryTiersNotAscending = errors.New("delivery tiers must have strictly ascending min items")
var ErrDeliveryFeeNotMonotonic = errors.New("delivery fees must not decrease with more items")
var ErrNegativeDeliveryFee = errors.New("delivery fee must not be negative")

// DeliveryTier applies Fee to carts with at least MinItems item entries,
// up to the MinItems of the next tier.
type DeliveryTier struct {
	MinItems int
	Fee      decimal.Decimal
}

// DefaultDeliveryTiers returns the standard fee schedule:
//
//	0 items     -> 0
//	1..3 items  -> 5
//	4..10 items -> 12.5
//	11+ items   -> 20
func DefaultDeliveryTiers() []DeliveryTier {
	return []DeliveryTier{
		{MinItems: 0, Fee: decimal.Zero},
		{MinItems: 1, Fee: decimal.NewFromInt(5)},
		{MinItems: 4, Fee: decimal.RequireFromString("12.5")},
		{MinItems: 11, Fee: decimal.NewFromInt(20)},
	}
}

// DeliveryPrice charges a tiered fee based on the number of item entries in the cart.
// Quantities are not taken into account: two entries of the same product count as two.
type DeliveryPrice struct {
	tiers []DeliveryTier
}

// DeliveryPriceOption configures a DeliveryPrice.
type DeliveryPriceOption func(*DeliveryPrice) error

// WithDeliveryTiers replaces the default fee schedule.
// Tiers must be supplied with strictly ascending MinItems and non-decreasing, non-negative fees.
// Carts with fewer entries than the first tier's MinItems pay nothing.
func WithDeliveryTiers(tiers ...DeliveryTier) DeliveryPriceOption {
	return func(dp *DeliveryPrice) error {
		if err := validateDeliveryTiers(tiers); err != nil {
			return err
		}

		dp.tiers = append([]DeliveryTier(nil), tiers...)

		return nil
	}
}

// NewDeliveryPrice creates a DeliveryPrice with the default fee schedule.
// It panics if an option is invalid; use BuildDeliveryPrice to handle the error instead.
func NewDeliveryPrice(options ...DeliveryPriceOption) DeliveryPrice {
	dp, err := BuildDeliveryPrice(options...)
	if err != nil {
		panic(err)
	}

	return dp
}

// BuildDeliveryPrice creates a DeliveryPrice and returns an error for invalid options.
func BuildDeliveryPrice(options ...DeliveryPriceOption) (DeliveryPrice, error) {
	dp := DeliveryPrice{tiers: DefaultDeliveryTiers()}

	for _, option := range options {
		if err := option(&dp); err != nil {
			return DeliveryPrice{}, err
		}
	}

	return dp, nil
}

// PriceToAggregate returns the fee of the highest tier whose MinItems does not exceed the number of entries.
// The zero value of DeliveryPrice uses the default fee schedule.
func (dp DeliveryPrice) PriceToAggregate(items []Item) decimal.Decimal {
	tiers := dp.tiers
	if tiers == nil {
		tiers = DefaultDeliveryTiers()
	}

	return feeFor(tiers, len(items))
}

// Tiers returns a copy of the configured fee schedule.
func (dp DeliveryPrice) Tiers() []DeliveryTier {
	if dp.tiers == nil {
		return DefaultDeliveryTiers()
	}

	return append([]DeliveryTier(nil), dp.tiers...)
}

func feeFor(tiers []DeliveryTier, numberOfItems int) decimal.Decimal {
	fee := decimal.Zero

	for _, tier := range tiers {
		if numberOfItems < tier.MinItems {
			break
		}

		fee = tier.Fee
	}

	return fee
}

func validateDeliveryTiers(tiers []DeliveryTier) error {
	if len(tiers) == 0 {
		return errors.Join(pricing.ErrInvalidInput, ErrNoDeliveryTiers)
	}

	for i, tier := range tiers {
		if tier.Fee.IsNegative() {
			return errors.Join(pricing.ErrInvalidInput, ErrNegativeDeliveryFee)
		}

		if i == 0 {
			continue
		}

		if tier.MinItems <= tiers[i-1].MinItems {
			return errors.Join(pricing.ErrInvalidInput, ErrDeliveryTiersNotAscending)
		}

		if tier.Fee.LessThan(tiers[i-1].Fee) {
			return errors.Join(pricing.ErrInvalidInput, ErrDeliveryFeeNotMonotonic)
		}
	}

	return nil
}
