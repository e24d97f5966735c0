package amazon

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

const (
	calculatorName         = "amazon"
	operationCalculate     = "calculate"
	logMsgCalculated       = "cart total calculated"
	logMsgLoadingCartFail  = "failed to load cart items"
	logAttrError           = "error"
	logAttrItemCount       = "item_count"
	logAttrRuleCount       = "rule_count"
	logAttrTotal           = "total"
	logAttrDurationMS      = "duration_ms"
	errorTypeLoadingFailed = "loading_cart_failed"
)

var ErrLoadingCartFailed = errors.New("loading cart items failed")

// Amazon calculates the total of a shopping cart by summing the contributions of its price rules.
type Amazon struct {
	cart             ShoppingCart
	rules            []PriceRule
	logger           pricing.Logger
	contextualLogger pricing.ContextualLogger
	metricsCollector pricing.MetricsCollector
}

// Option defines a functional option for configuring Amazon.
type Option func(*Amazon) error

// WithLogger sets the logger for the calculator.
func WithLogger(logger pricing.Logger) Option {
	return func(a *Amazon) error {
		a.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the calculator.
// It takes precedence over the plain Logger when both are configured.
func WithContextualLogger(logger pricing.ContextualLogger) Option {
	return func(a *Amazon) error {
		a.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the calculator.
func WithMetrics(collector pricing.MetricsCollector) Option {
	return func(a *Amazon) error {
		a.metricsCollector = collector
		return nil
	}
}

// NewAmazon creates a calculator over the given cart and rules.
// The rules are applied in the given order; the slice is copied.
func NewAmazon(cart ShoppingCart, rules []PriceRule, options ...Option) (*Amazon, error) {
	if cart == nil {
		return nil, pricing.ErrNilCollaborator
	}

	a := &Amazon{
		cart:  cart,
		rules: append([]PriceRule(nil), rules...),
	}

	for _, option := range options {
		if err := option(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Calculate reads the cart items once and returns the sum of all rule contributions over them.
// An empty cart or an empty rule list yields zero.
func (a *Amazon) Calculate(ctx context.Context) (decimal.Decimal, error) {
	start := time.Now()

	items, err := a.cart.Items(ctx)
	if err != nil {
		a.logError(ctx, logMsgLoadingCartFail, err)
		a.recordError(errorTypeLoadingFailed)

		return decimal.Zero, errors.Join(ErrLoadingCartFailed, err)
	}

	total := decimal.Zero
	for _, rule := range a.rules {
		total = total.Add(rule.PriceToAggregate(items))
	}

	duration := time.Since(start)
	a.recordSuccess(duration, total)
	a.logInfo(
		ctx,
		logMsgCalculated,
		logAttrItemCount, len(items),
		logAttrRuleCount, len(a.rules),
		logAttrTotal, total.String(),
		logAttrDurationMS, pricing.ToMilliseconds(duration),
	)

	return total, nil
}

func (a *Amazon) logInfo(ctx context.Context, msg string, args ...any) {
	if a.contextualLogger != nil {
		a.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if a.logger != nil {
		a.logger.Info(msg, args...)
	}
}

func (a *Amazon) logError(ctx context.Context, msg string, err error) {
	if a.contextualLogger != nil {
		a.contextualLogger.ErrorContext(ctx, msg, logAttrError, err.Error())
		return
	}

	if a.logger != nil {
		a.logger.Error(msg, logAttrError, err.Error())
	}
}

func (a *Amazon) recordSuccess(duration time.Duration, total decimal.Decimal) {
	if a.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		pricing.LabelCalculator: calculatorName,
		pricing.LabelOperation:  operationCalculate,
		pricing.LabelStatus:     pricing.StatusSuccess,
	}

	a.metricsCollector.RecordDuration(pricing.MetricCalculationDuration, duration, labels)
	a.metricsCollector.RecordValue(pricing.MetricCalculationTotal, total.InexactFloat64(), labels)
}

func (a *Amazon) recordError(errorType string) {
	if a.metricsCollector == nil {
		return
	}

	a.metricsCollector.IncrementCounter(pricing.MetricCalculationErrors, map[string]string{
		pricing.LabelCalculator: calculatorName,
		pricing.LabelOperation:  operationCalculate,
		pricing.LabelStatus:     pricing.StatusError,
		pricing.LabelErrorType:  errorType,
	})
}
