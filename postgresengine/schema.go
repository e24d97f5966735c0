package postgresengine

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const (
	operationCreateSchema = "create_schema"

	ddlCartItems = `CREATE TABLE IF NOT EXISTS %s (
	id BIGSERIAL PRIMARY KEY,
	item_type TEXT NOT NULL,
	name TEXT NOT NULL,
	quantity INTEGER NOT NULL CHECK (quantity >= 0),
	unit_price NUMERIC NOT NULL CHECK (unit_price >= 0)
)`

	ddlBooks = `CREATE TABLE IF NOT EXISTS %s (
	isbn TEXT PRIMARY KEY,
	price NUMERIC NOT NULL CHECK (price >= 0),
	quantity INTEGER NOT NULL CHECK (quantity >= 0)
)`

	ddlBookPurchases = `CREATE TABLE IF NOT EXISTS %s (
	purchase_id UUID PRIMARY KEY,
	isbn TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	total_price NUMERIC NOT NULL,
	purchased_at TIMESTAMPTZ NOT NULL,
	details JSONB NOT NULL
)`
)

// CreateSchema creates the cart table if it does not exist yet.
func (c *CartDatabase) CreateSchema(ctx context.Context) error {
	return c.createTables(ctx, fmt.Sprintf(ddlCartItems, quoteIdentifier(c.cartTableName)))
}

// CreateSchema creates the books and purchases tables if they do not exist yet.
func (bc *BookCatalog) CreateSchema(ctx context.Context) error {
	return bc.createTables(
		ctx,
		fmt.Sprintf(ddlBooks, quoteIdentifier(bc.booksTableName)),
		fmt.Sprintf(ddlBookPurchases, quoteIdentifier(bc.purchasesTableName)),
	)
}

func (e engine) createTables(ctx context.Context, statements ...string) error {
	for _, statement := range statements {
		if _, err := e.executeStatement(ctx, operationCreateSchema, statement); err != nil {
			return err
		}
	}

	return nil
}

// quoteIdentifier renders a table name as a PostgreSQL quoted identifier, doubling embedded quotes.
func quoteIdentifier(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
