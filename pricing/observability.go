package pricing

import (
	"context"
	"math"
	"time"
)

// Logger interface for operational logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger interface for context-aware logging.
// *slog.Logger satisfies both Logger and ContextualLogger.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector interface for collecting calculator and storage metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

const (
	MetricCalculationDuration = "pricing_calculation_duration_seconds"
	MetricCalculationTotal    = "pricing_calculation_total_amount"
	MetricCalculationErrors   = "pricing_calculation_errors_total"
	MetricDatabaseDuration    = "pricing_database_duration_seconds"
	MetricDatabaseErrors      = "pricing_database_errors_total"

	LabelCalculator = "calculator"
	LabelOperation  = "operation"
	LabelStatus     = "status"
	LabelErrorType  = "error_type"

	StatusSuccess = "success"
	StatusError   = "error"
)

// ToMilliseconds converts a duration to milliseconds, rounded to three decimal places.
// All duration_ms log attributes use it.
func ToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
