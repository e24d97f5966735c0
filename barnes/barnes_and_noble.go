package barnes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

const (
	calculatorName          = "barnes_and_noble"
	operationGetPrice       = "get_price_for_cart"
	logMsgPriced            = "order priced"
	logMsgLookupFailed      = "book lookup failed, order rejected"
	logMsgPurchaseFailed    = "buy book process failed"
	logMsgShortfall         = "requested quantity exceeds stock"
	logAttrError            = "error"
	logAttrDurationMS       = "duration_ms"
	logAttrISBN             = "isbn"
	logAttrRequested        = "requested"
	logAttrAvailable        = "available"
	logAttrLineCount        = "line_count"
	logAttrTotal            = "total"
	logAttrUnavailableCount = "unavailable_count"
	errorTypeLookup         = "lookup_failed"
	errorTypePurchase       = "purchase_failed"
)

var ErrLookupFailed = errors.New("looking up book failed")
var ErrPurchaseFailed = errors.New("buying book failed")

// BarnesAndNoble prices orders against a BookDatabase and buys the fulfillable quantities.
type BarnesAndNoble struct {
	bookDatabase     BookDatabase
	process          BuyBookProcess
	logger           pricing.Logger
	contextualLogger pricing.ContextualLogger
	metricsCollector pricing.MetricsCollector
}

// Option defines a functional option for configuring BarnesAndNoble.
type Option func(*BarnesAndNoble) error

// WithLogger sets the logger for the calculator.
func WithLogger(logger pricing.Logger) Option {
	return func(bn *BarnesAndNoble) error {
		bn.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the calculator.
// It takes precedence over the plain Logger when both are configured.
func WithContextualLogger(logger pricing.ContextualLogger) Option {
	return func(bn *BarnesAndNoble) error {
		bn.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the calculator.
func WithMetrics(collector pricing.MetricsCollector) Option {
	return func(bn *BarnesAndNoble) error {
		bn.metricsCollector = collector
		return nil
	}
}

// NewBarnesAndNoble creates a calculator with the given book lookup and purchase side effect.
func NewBarnesAndNoble(bookDatabase BookDatabase, process BuyBookProcess, options ...Option) (*BarnesAndNoble, error) {
	if bookDatabase == nil || process == nil {
		return nil, pricing.ErrNilCollaborator
	}

	bn := &BarnesAndNoble{
		bookDatabase: bookDatabase,
		process:      process,
	}

	for _, option := range options {
		if err := option(bn); err != nil {
			return nil, err
		}
	}

	return bn, nil
}

type resolvedLine struct {
	book      Book
	requested int
}

// GetPriceForCart prices the order and buys the fulfillable quantity of every line.
//
// A nil order yields a nil summary and no error.
//
// All books are resolved before any purchase happens: if one lookup fails (including ErrBookNotFound),
// the whole order is rejected and the BuyBookProcess is never invoked.
//
// For each line, in order:
//   - fulfillable = min(requested, stock)
//   - the BuyBookProcess is invoked with the fulfillable quantity, also when it is 0
//   - the total grows by fulfillable * price
//   - a shortfall of requested - stock is recorded if the request exceeds the stock
//
// Purchases are not rolled back. If the BuyBookProcess fails for a line, processing stops and the
// summary of the lines bought so far is returned together with an error wrapping ErrPurchaseFailed.
// The failed line and the lines after it are not part of that summary.
func (bn *BarnesAndNoble) GetPriceForCart(ctx context.Context, order *Order) (*PurchaseSummary, error) {
	if order == nil {
		return nil, nil //nolint:nilnil // an absent order deliberately yields an absent summary
	}

	start := time.Now()

	lines, err := bn.resolve(ctx, order)
	if err != nil {
		bn.recordError(errorTypeLookup)
		return nil, err
	}

	summary := newPurchaseSummary()

	for _, line := range lines {
		if err := bn.retrieveBook(ctx, line, summary); err != nil {
			bn.recordError(errorTypePurchase)
			return summary, err
		}
	}

	duration := time.Since(start)
	bn.recordSuccess(duration, summary.TotalPrice())
	bn.logInfo(
		ctx,
		logMsgPriced,
		logAttrLineCount, len(lines),
		logAttrTotal, summary.TotalPrice().String(),
		logAttrUnavailableCount, len(summary.books),
		logAttrDurationMS, pricing.ToMilliseconds(duration),
	)

	return summary, nil
}

func (bn *BarnesAndNoble) resolve(ctx context.Context, order *Order) ([]resolvedLine, error) {
	lines := make([]resolvedLine, 0, order.Len())

	for _, line := range order.Lines() {
		book, err := bn.bookDatabase.FindByISBN(ctx, line.ISBN)
		if err != nil {
			bn.logError(ctx, logMsgLookupFailed, err, logAttrISBN, line.ISBN)
			return nil, errors.Join(ErrLookupFailed, fmt.Errorf("isbn %s: %w", line.ISBN, err))
		}

		lines = append(lines, resolvedLine{book: book, requested: line.Quantity})
	}

	return lines, nil
}

// retrieveBook buys the fulfillable quantity of one line and adds the line to the summary
// once the purchase succeeded.
func (bn *BarnesAndNoble) retrieveBook(ctx context.Context, line resolvedLine, summary *PurchaseSummary) error {
	book := line.book
	fulfillable := min(line.requested, book.Quantity())
	shortfall := line.requested - fulfillable

	if shortfall > 0 {
		bn.logDebug(
			ctx,
			logMsgShortfall,
			logAttrISBN, book.ISBN(),
			logAttrRequested, line.requested,
			logAttrAvailable, book.Quantity(),
		)
	}

	if err := bn.process.BuyBook(ctx, book, fulfillable); err != nil {
		bn.logError(ctx, logMsgPurchaseFailed, err, logAttrISBN, book.ISBN())
		return errors.Join(ErrPurchaseFailed, fmt.Errorf("isbn %s: %w", book.ISBN(), err))
	}

	summary.addToTotalPrice(book.Price().Mul(decimal.NewFromInt(int64(fulfillable))))

	if shortfall > 0 {
		summary.addUnavailable(book, shortfall)
	}

	return nil
}

func (bn *BarnesAndNoble) logDebug(ctx context.Context, msg string, args ...any) {
	if bn.contextualLogger != nil {
		bn.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if bn.logger != nil {
		bn.logger.Debug(msg, args...)
	}
}

func (bn *BarnesAndNoble) logInfo(ctx context.Context, msg string, args ...any) {
	if bn.contextualLogger != nil {
		bn.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if bn.logger != nil {
		bn.logger.Info(msg, args...)
	}
}

func (bn *BarnesAndNoble) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if bn.contextualLogger != nil {
		bn.contextualLogger.ErrorContext(ctx, msg, allArgs...)
		return
	}

	if bn.logger != nil {
		bn.logger.Error(msg, allArgs...)
	}
}

func (bn *BarnesAndNoble) recordSuccess(duration time.Duration, total decimal.Decimal) {
	if bn.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		pricing.LabelCalculator: calculatorName,
		pricing.LabelOperation:  operationGetPrice,
		pricing.LabelStatus:     pricing.StatusSuccess,
	}

	bn.metricsCollector.RecordDuration(pricing.MetricCalculationDuration, duration, labels)
	bn.metricsCollector.RecordValue(pricing.MetricCalculationTotal, total.InexactFloat64(), labels)
}

func (bn *BarnesAndNoble) recordError(errorType string) {
	if bn.metricsCollector == nil {
		return
	}

	bn.metricsCollector.IncrementCounter(pricing.MetricCalculationErrors, map[string]string{
		pricing.LabelCalculator: calculatorName,
		pricing.LabelOperation:  operationGetPrice,
		pricing.LabelStatus:     pricing.StatusError,
		pricing.LabelErrorType:  errorType,
	})
}
