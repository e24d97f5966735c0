// Package pricing provides the shared kernel of the pricing calculators.
//
// It defines the dependency-free observability interfaces (Logger, ContextualLogger,
// MetricsCollector) used by the calculators and the storage engine, the common
// sentinel errors, and context helpers for read consistency.
//
// Monetary amounts are represented as decimal.Decimal throughout the module.
package pricing
