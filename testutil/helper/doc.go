// Package helper provides test helpers for the pricing calculators:
// fixture builders for items, books and orders, a slog.Handler spy,
// a MetricsCollector spy, and factories for PostgreSQL-backed storage in integration tests.
package helper
