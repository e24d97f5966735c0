// Package postgreswrapper creates CartDatabase and BookCatalog instances for integration tests.
//
// The adapter is selected by the ADAPTER_TYPE environment variable (pgx.pool, sql.db, sqlx.db),
// so the same test suite runs against every supported adapter. Tests are skipped when no
// test database is configured.
package postgreswrapper
