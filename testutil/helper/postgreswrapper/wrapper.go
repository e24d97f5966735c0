package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/pricing-calculators-go/postgresengine"
	"github.com/AntonStoeckl/pricing-calculators-go/testutil/postgresengine/config"
)

// Adapter type constants
const (
	typePGXPool = "pgx.pool"
	typeSQLDB   = "sql.db"
	typeSQLXDB  = "sqlx.db"
)

// Test table names, so integration tests never touch production tables.
const (
	testCartTableName      = "test_cart_items"
	testBooksTableName     = "test_books"
	testPurchasesTableName = "test_book_purchases"
)

// Wrapper abstracts over the different adapter types.
type Wrapper interface {
	GetCartDatabase() *postgresengine.CartDatabase
	GetBookCatalog() *postgresengine.BookCatalog
	Exec(ctx context.Context, query string) error
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing.
type PGXPoolWrapper struct {
	pool    *pgxpool.Pool
	cart    *postgresengine.CartDatabase
	catalog *postgresengine.BookCatalog
}

func (w *PGXPoolWrapper) GetCartDatabase() *postgresengine.CartDatabase { return w.cart }
func (w *PGXPoolWrapper) GetBookCatalog() *postgresengine.BookCatalog   { return w.catalog }

func (w *PGXPoolWrapper) Exec(ctx context.Context, query string) error {
	_, err := w.pool.Exec(ctx, query)
	return err
}

func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing.
type SQLDBWrapper struct {
	db      *sql.DB
	cart    *postgresengine.CartDatabase
	catalog *postgresengine.BookCatalog
}

func (w *SQLDBWrapper) GetCartDatabase() *postgresengine.CartDatabase { return w.cart }
func (w *SQLDBWrapper) GetBookCatalog() *postgresengine.BookCatalog   { return w.catalog }

func (w *SQLDBWrapper) Exec(ctx context.Context, query string) error {
	_, err := w.db.ExecContext(ctx, query)
	return err
}

func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing.
type SQLXWrapper struct {
	db      *sqlx.DB
	cart    *postgresengine.CartDatabase
	catalog *postgresengine.BookCatalog
}

func (w *SQLXWrapper) GetCartDatabase() *postgresengine.CartDatabase { return w.cart }
func (w *SQLXWrapper) GetBookCatalog() *postgresengine.BookCatalog   { return w.catalog }

func (w *SQLXWrapper) Exec(ctx context.Context, query string) error {
	_, err := w.db.ExecContext(ctx, query)
	return err
}

func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// TestOptions returns the table name options used by every wrapper, followed by the given options.
func TestOptions(options ...postgresengine.Option) []postgresengine.Option {
	return append(
		[]postgresengine.Option{
			postgresengine.WithCartTableName(testCartTableName),
			postgresengine.WithBooksTableName(testBooksTableName),
			postgresengine.WithPurchasesTableName(testPurchasesTableName),
		},
		options...,
	)
}

// CreateWrapperWithTestConfig creates the wrapper selected by ADAPTER_TYPE and makes sure the schema exists.
// The test is skipped if no test database is configured.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresengine.Option) Wrapper {
	if !config.HasTestDSN() {
		t.Skip("no test database configured")
	}

	allOptions := TestOptions(options...)
	adapterTypeFromEnv := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	var wrapper Wrapper

	switch adapterTypeFromEnv {
	case typePGXPool, "":
		pool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolTestConfig())
		assert.NoError(t, err, "error connecting to DB pool in test setup")

		cart, err := postgresengine.NewCartDatabaseFromPGXPool(pool, allOptions...)
		assert.NoError(t, err, "error creating cart database in test setup")

		catalog, err := postgresengine.NewBookCatalogFromPGXPool(pool, allOptions...)
		assert.NoError(t, err, "error creating book catalog in test setup")

		wrapper = &PGXPoolWrapper{pool: pool, cart: cart, catalog: catalog}

	case typeSQLDB:
		db := config.PostgresSQLDBTestConfig()

		cart, err := postgresengine.NewCartDatabaseFromSQLDB(db, allOptions...)
		assert.NoError(t, err, "error creating cart database in test setup")

		catalog, err := postgresengine.NewBookCatalogFromSQLDB(db, allOptions...)
		assert.NoError(t, err, "error creating book catalog in test setup")

		wrapper = &SQLDBWrapper{db: db, cart: cart, catalog: catalog}

	case typeSQLXDB:
		db := config.PostgresSQLXTestConfig()

		cart, err := postgresengine.NewCartDatabaseFromSQLX(db, allOptions...)
		assert.NoError(t, err, "error creating cart database in test setup")

		catalog, err := postgresengine.NewBookCatalogFromSQLX(db, allOptions...)
		assert.NoError(t, err, "error creating book catalog in test setup")

		wrapper = &SQLXWrapper{db: db, cart: cart, catalog: catalog}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterTypeFromEnv))
	}

	ctx := context.Background()
	assert.NoError(t, wrapper.GetCartDatabase().CreateSchema(ctx), "error creating cart schema")
	assert.NoError(t, wrapper.GetBookCatalog().CreateSchema(ctx), "error creating book schema")

	return wrapper
}

// CleanUp empties all test tables for the given wrapper.
func CleanUp(t testing.TB, wrapper Wrapper) {
	query := fmt.Sprintf(
		"TRUNCATE TABLE %s, %s, %s RESTART IDENTITY",
		testCartTableName,
		testBooksTableName,
		testPurchasesTableName,
	)

	err := wrapper.Exec(context.Background(), query)
	assert.NoError(t, err, "error cleaning up the test tables")
}

// CountPurchases returns the number of recorded purchases for the given ISBN.
func CountPurchases(t testing.TB, wrapper Wrapper, isbn string) int {
	var cnt int
	var err error

	query := fmt.Sprintf("SELECT count(*) FROM %s WHERE isbn = $1", testPurchasesTableName)

	switch w := wrapper.(type) {
	case *PGXPoolWrapper:
		err = w.pool.QueryRow(context.Background(), query, isbn).Scan(&cnt)

	case *SQLDBWrapper:
		err = w.db.QueryRow(query, isbn).Scan(&cnt)

	case *SQLXWrapper:
		err = w.db.Get(&cnt, query, isbn)

	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", w))
	}

	assert.NoError(t, err, "error counting purchases")

	return cnt
}
