package amazon_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/pricing-calculators-go/amazon"
	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
	. "github.com/AntonStoeckl/pricing-calculators-go/testutil/helper" //nolint:revive
)

type cartStub struct {
	items []amazon.Item
	err   error
	calls int
}

func (c *cartStub) Items(_ context.Context) ([]amazon.Item, error) {
	c.calls++

	return c.items, c.err
}

func allRules() []amazon.PriceRule {
	return []amazon.PriceRule{
		amazon.RegularCost{},
		amazon.NewDeliveryPrice(),
		amazon.ExtraCostForElectronics{},
	}
}

func Test_NewAmazon_FailsWithNilCart(t *testing.T) {
	// act
	calculator, err := amazon.NewAmazon(nil, allRules())

	// assert
	assert.ErrorIs(t, err, pricing.ErrNilCollaborator)
	assert.Nil(t, calculator)
}

func Test_Calculate_AppliesAllRules(t *testing.T) {
	// arrange
	cart := &cartStub{items: []amazon.Item{FixtureLaptop(t), FixtureCookBook(t)}}
	calculator, err := amazon.NewAmazon(cart, allRules())
	assert.NoError(t, err)

	// act
	total, err := calculator.Calculate(context.Background())

	// assert
	assert.NoError(t, err)
	assert.True(t, Dec(t, "1052.5").Equal(total), "1000 + 40 + 5 + 7.5, got %s", total)
	assert.Equal(t, 1, cart.calls, "cart should be read exactly once")
}

func Test_Calculate_WithSingleRule(t *testing.T) {
	testCases := []struct {
		name     string
		rule     amazon.PriceRule
		expected string
	}{
		{name: "regular cost", rule: amazon.RegularCost{}, expected: "1040"},
		{name: "delivery price", rule: amazon.NewDeliveryPrice(), expected: "5"},
		{name: "extra cost for electronics", rule: amazon.ExtraCostForElectronics{}, expected: "7.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			cart := &cartStub{items: []amazon.Item{FixtureLaptop(t), FixtureCookBook(t)}}
			calculator, err := amazon.NewAmazon(cart, []amazon.PriceRule{tc.rule})
			assert.NoError(t, err)

			// act
			total, err := calculator.Calculate(context.Background())

			// assert
			assert.NoError(t, err)
			assert.True(t, Dec(t, tc.expected).Equal(total), "expected %s, got %s", tc.expected, total)
		})
	}
}

func Test_Calculate_IsZeroForEmptyCart(t *testing.T) {
	// arrange
	calculator, err := amazon.NewAmazon(&cartStub{}, allRules())
	assert.NoError(t, err)

	// act
	total, err := calculator.Calculate(context.Background())

	// assert
	assert.NoError(t, err)
	assert.True(t, total.IsZero())
}

func Test_Calculate_IsZeroWithoutRules(t *testing.T) {
	// arrange
	cart := &cartStub{items: []amazon.Item{FixtureLaptop(t)}}
	calculator, err := amazon.NewAmazon(cart, nil)
	assert.NoError(t, err)

	// act
	total, err := calculator.Calculate(context.Background())

	// assert
	assert.NoError(t, err)
	assert.True(t, total.IsZero())
}

func Test_Calculate_IsNotAffectedByMutatingTheRuleSlice(t *testing.T) {
	// arrange
	cart := &cartStub{items: []amazon.Item{FixtureLaptop(t)}}
	rules := []amazon.PriceRule{amazon.RegularCost{}}
	calculator, err := amazon.NewAmazon(cart, rules)
	assert.NoError(t, err)

	rules[0] = amazon.PriceRuleFunc(func(_ []amazon.Item) decimal.Decimal {
		return decimal.NewFromInt(1)
	})

	// act
	total, err := calculator.Calculate(context.Background())

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "1000", total.String())
}

func Test_Calculate_FailsWhenCartFails(t *testing.T) {
	// arrange
	cartErr := errors.New("connection lost")
	calculator, err := amazon.NewAmazon(&cartStub{err: cartErr}, allRules())
	assert.NoError(t, err)

	// act
	total, err := calculator.Calculate(context.Background())

	// assert
	assert.ErrorIs(t, err, amazon.ErrLoadingCartFailed)
	assert.ErrorIs(t, err, cartErr)
	assert.True(t, total.IsZero())
}

func Test_Calculate_WithLogger_LogsTotal(t *testing.T) {
	// arrange
	logger, logHandler := NewSpyLogger()
	cart := &cartStub{items: []amazon.Item{FixtureLaptop(t), FixtureCookBook(t)}}
	calculator, err := amazon.NewAmazon(cart, allRules(), amazon.WithLogger(logger))
	assert.NoError(t, err)

	// act
	_, err = calculator.Calculate(context.Background())

	// assert
	assert.NoError(t, err)
	assert.True(t,
		logHandler.HasLogWithMessage(slog.LevelInfo, "cart total calculated").
			WithAttrValue("item_count", "2").
			WithAttrValue("rule_count", "3").
			WithAttrValue("total", "1052.5").
			WithAttr("duration_ms").
			Assert(), "should log the total with item and rule counts",
	)
}

func Test_Calculate_WithContextualLogger_LogsError(t *testing.T) {
	// arrange
	logger, logHandler := NewSpyLogger()
	calculator, err := amazon.NewAmazon(
		&cartStub{err: errors.New("connection lost")},
		allRules(),
		amazon.WithContextualLogger(logger),
	)
	assert.NoError(t, err)

	// act
	_, err = calculator.Calculate(context.Background())

	// assert
	assert.Error(t, err)
	assert.True(t,
		logHandler.HasLogWithMessage(slog.LevelError, "failed to load cart items").
			WithAttrValue("error", "connection lost").
			Assert(), "should log the cart failure",
	)
}

func Test_Calculate_WithMetrics_RecordsDurationAndTotal(t *testing.T) {
	// arrange
	metrics := NewMetricsCollectorSpy()
	cart := &cartStub{items: []amazon.Item{FixtureLaptop(t), FixtureCookBook(t)}}
	calculator, err := amazon.NewAmazon(cart, allRules(), amazon.WithMetrics(metrics))
	assert.NoError(t, err)

	// act
	_, err = calculator.Calculate(context.Background())

	// assert
	assert.NoError(t, err)
	assert.True(t, metrics.HasDurationRecord(pricing.MetricCalculationDuration))

	values := metrics.GetValueRecords()
	assert.Len(t, values, 1)
	assert.Equal(t, pricing.MetricCalculationTotal, values[0].Metric)
	assert.InDelta(t, 1052.5, values[0].Value, 0.0001)
	assert.Equal(t, "amazon", values[0].Labels[pricing.LabelCalculator])
}

func Test_Calculate_WithMetrics_CountsErrors(t *testing.T) {
	// arrange
	metrics := NewMetricsCollectorSpy()
	calculator, err := amazon.NewAmazon(
		&cartStub{err: errors.New("connection lost")},
		allRules(),
		amazon.WithMetrics(metrics),
	)
	assert.NoError(t, err)

	// act
	_, err = calculator.Calculate(context.Background())

	// assert
	assert.Error(t, err)
	assert.True(t, metrics.HasCounterRecordWithLabel(pricing.MetricCalculationErrors, pricing.LabelErrorType, "loading_cart_failed"))
	assert.False(t, metrics.HasDurationRecord(pricing.MetricCalculationDuration))
}
