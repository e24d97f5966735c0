package postgresengine

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/pricing-calculators-go/amazon"
	"github.com/AntonStoeckl/pricing-calculators-go/internal/adapters"
)

const (
	colID        = "id"
	colItemType  = "item_type"
	colName      = "name"
	colQuantity  = "quantity"
	colUnitPrice = "unit_price"
	aliasCount   = "item_count"
	castAsText   = "TEXT"

	operationCartInsert = "cart_insert"
	operationCartSelect = "cart_select_all"
	operationCartCount  = "cart_count"
	operationCartReset  = "cart_reset"
)

var ErrBuildingItemFailed = errors.New("building item from database row failed")

// CartDatabase stores shopping cart items in a PostgreSQL table.
// It implements shoppingcart.Database.
type CartDatabase struct {
	engine
}

// NewCartDatabaseFromPGXPool creates a new CartDatabase using a pgx Pool with optional configuration.
func NewCartDatabaseFromPGXPool(db *pgxpool.Pool, options ...Option) (*CartDatabase, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newCartDatabase(adapters.NewPGXAdapter(db), options...)
}

// NewCartDatabaseFromPGXPoolWithReplica creates a new CartDatabase that reads from the replica
// when the context asks for eventual consistency.
func NewCartDatabaseFromPGXPoolWithReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*CartDatabase, error) {
	if db == nil || replica == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newCartDatabase(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewCartDatabaseFromSQLDB creates a new CartDatabase using a sql.DB with optional configuration.
func NewCartDatabaseFromSQLDB(db *sql.DB, options ...Option) (*CartDatabase, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newCartDatabase(adapters.NewSQLAdapter(db), options...)
}

// NewCartDatabaseFromSQLX creates a new CartDatabase using a sqlx.DB with optional configuration.
func NewCartDatabaseFromSQLX(db *sqlx.DB, options ...Option) (*CartDatabase, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newCartDatabase(adapters.NewSQLXAdapter(db), options...)
}

func newCartDatabase(db adapters.DBAdapter, options ...Option) (*CartDatabase, error) {
	e, err := newEngine(db, options...)
	if err != nil {
		return nil, err
	}

	return &CartDatabase{engine: e}, nil
}

// Insert appends the item as a new row.
func (c *CartDatabase) Insert(ctx context.Context, item amazon.Item) error {
	sqlQuery, err := c.buildInsertQuery(item)
	if err != nil {
		return c.buildFailed(operationCartInsert, err)
	}

	_, err = c.executeStatement(ctx, operationCartInsert, sqlQuery)

	return err
}

// SelectAll returns all items in insertion order.
func (c *CartDatabase) SelectAll(ctx context.Context) ([]amazon.Item, error) {
	sqlQuery, err := c.buildSelectQuery()
	if err != nil {
		return nil, c.buildFailed(operationCartSelect, err)
	}

	rows, err := c.executeQuery(ctx, operationCartSelect, sqlQuery)
	if err != nil {
		return nil, err
	}
	defer c.closeRows(rows)

	return c.processItemRows(rows)
}

// processItemRows scans database rows and converts them to items.
func (c *CartDatabase) processItemRows(rows adapters.DBRows) ([]amazon.Item, error) {
	items := make([]amazon.Item, 0)

	var (
		itemType  string
		name      string
		quantity  int
		unitPrice string
	)

	for rows.Next() {
		if scanErr := rows.Scan(&itemType, &name, &quantity, &unitPrice); scanErr != nil {
			return nil, c.scanFailed(operationCartSelect, scanErr)
		}

		item, buildErr := itemFromRow(itemType, name, quantity, unitPrice)
		if buildErr != nil {
			c.logError(ErrBuildingItemFailed.Error(), buildErr, logAttrOperation, operationCartSelect)
			return nil, errors.Join(ErrBuildingItemFailed, buildErr)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, c.scanFailed(operationCartSelect, err)
	}

	return items, nil
}

func itemFromRow(itemType string, name string, quantity int, unitPrice string) (amazon.Item, error) {
	parsedType, err := amazon.ParseItemType(itemType)
	if err != nil {
		return amazon.Item{}, err
	}

	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return amazon.Item{}, err
	}

	return amazon.BuildItem(parsedType, name, quantity, price)
}

// Count returns the number of rows.
func (c *CartDatabase) Count(ctx context.Context) (int, error) {
	sqlQuery, err := c.buildCountQuery()
	if err != nil {
		return 0, c.buildFailed(operationCartCount, err)
	}

	rows, err := c.executeQuery(ctx, operationCartCount, sqlQuery)
	if err != nil {
		return 0, err
	}
	defer c.closeRows(rows)

	var count int64

	if rows.Next() {
		if scanErr := rows.Scan(&count); scanErr != nil {
			return 0, c.scanFailed(operationCartCount, scanErr)
		}
	}

	if err := rows.Err(); err != nil {
		return 0, c.scanFailed(operationCartCount, err)
	}

	return int(count), nil
}

// Reset deletes all rows.
func (c *CartDatabase) Reset(ctx context.Context) error {
	sqlQuery, err := c.buildDeleteQuery()
	if err != nil {
		return c.buildFailed(operationCartReset, err)
	}

	rowsAffected, err := c.executeStatement(ctx, operationCartReset, sqlQuery)
	if err != nil {
		return err
	}

	c.logOperation(operationCartReset, "rows_affected", rowsAffected)

	return nil
}

func (c *CartDatabase) buildInsertQuery(item amazon.Item) (sqlQueryString, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(c.cartTableName).
		Rows(goqu.Record{
			colItemType:  string(item.Type()),
			colName:      item.Name(),
			colQuantity:  item.Quantity(),
			colUnitPrice: item.UnitPrice().String(),
		})

	sqlQuery, _, err := insertStmt.ToSQL()

	return sqlQuery, err
}

func (c *CartDatabase) buildSelectQuery() (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(c.cartTableName).
		Select(
			goqu.C(colItemType),
			goqu.C(colName),
			goqu.C(colQuantity),
			goqu.Cast(goqu.C(colUnitPrice), castAsText),
		).
		Order(goqu.I(colID).Asc())

	sqlQuery, _, err := selectStmt.ToSQL()

	return sqlQuery, err
}

func (c *CartDatabase) buildCountQuery() (sqlQueryString, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(c.cartTableName).
		Select(goqu.COUNT(goqu.Star()).As(aliasCount)).
		ToSQL()

	return sqlQuery, err
}

func (c *CartDatabase) buildDeleteQuery() (sqlQueryString, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		Delete(c.cartTableName).
		ToSQL()

	return sqlQuery, err
}
