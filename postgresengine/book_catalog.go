package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/pricing-calculators-go/barnes"
	"github.com/AntonStoeckl/pricing-calculators-go/internal/adapters"
)

const (
	colISBN        = "isbn"
	colPrice       = "price"
	colPurchaseID  = "purchase_id"
	colTotalPrice  = "total_price"
	colPurchasedAt = "purchased_at"
	colDetails     = "details"
	castJsonb      = "?::jsonb"
	castUUID       = "?::uuid"
	castInteger    = "?::integer"
	castNumeric    = "?::numeric"
	castTimestamp  = "?::timestamptz"
	cteUpdated     = "updated"

	operationBookFind   = "book_find_by_isbn"
	operationBookUpsert = "book_upsert"
	operationPurchase   = "book_purchase"

	logMsgPurchaseRecorded = "purchase recorded"
	logAttrISBN            = "isbn"
	logAttrQuantity        = "quantity"
	logAttrPurchaseID      = "purchase_id"
)

var (
	ErrInsufficientStock     = errors.New("not enough copies in stock")
	ErrBuildingBookFailed    = errors.New("building book from database row failed")
	ErrEncodingDetailsFailed = errors.New("encoding purchase details failed")
)

// BookCatalog stores books and their stock in PostgreSQL and records purchases.
// It implements barnes.BookDatabase and barnes.BuyBookProcess.
type BookCatalog struct {
	engine
	clock func() time.Time
}

type purchaseDetails struct {
	ISBN      string `json:"isbn"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
}

// NewBookCatalogFromPGXPool creates a new BookCatalog using a pgx Pool with optional configuration.
func NewBookCatalogFromPGXPool(db *pgxpool.Pool, options ...Option) (*BookCatalog, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newBookCatalog(adapters.NewPGXAdapter(db), options...)
}

// NewBookCatalogFromPGXPoolWithReplica creates a new BookCatalog whose lookups are served by the
// replica when the context asks for eventual consistency.
func NewBookCatalogFromPGXPoolWithReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*BookCatalog, error) {
	if db == nil || replica == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newBookCatalog(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewBookCatalogFromSQLDB creates a new BookCatalog using a sql.DB with optional configuration.
func NewBookCatalogFromSQLDB(db *sql.DB, options ...Option) (*BookCatalog, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newBookCatalog(adapters.NewSQLAdapter(db), options...)
}

// NewBookCatalogFromSQLX creates a new BookCatalog using a sqlx.DB with optional configuration.
func NewBookCatalogFromSQLX(db *sqlx.DB, options ...Option) (*BookCatalog, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newBookCatalog(adapters.NewSQLXAdapter(db), options...)
}

func newBookCatalog(db adapters.DBAdapter, options ...Option) (*BookCatalog, error) {
	e, err := newEngine(db, options...)
	if err != nil {
		return nil, err
	}

	return &BookCatalog{engine: e, clock: time.Now}, nil
}

// FindByISBN loads the book with the given ISBN.
// Returns an error wrapping barnes.ErrBookNotFound if there is no such book.
func (bc *BookCatalog) FindByISBN(ctx context.Context, isbn string) (barnes.Book, error) {
	sqlQuery, err := bc.buildFindQuery(isbn)
	if err != nil {
		return barnes.Book{}, bc.buildFailed(operationBookFind, err)
	}

	rows, err := bc.executeQuery(ctx, operationBookFind, sqlQuery)
	if err != nil {
		return barnes.Book{}, err
	}
	defer bc.closeRows(rows)

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			return barnes.Book{}, bc.scanFailed(operationBookFind, rowsErr)
		}

		return barnes.Book{}, fmt.Errorf("%w: %s", barnes.ErrBookNotFound, isbn)
	}

	var (
		foundISBN string
		price     string
		stock     int
	)

	if scanErr := rows.Scan(&foundISBN, &price, &stock); scanErr != nil {
		return barnes.Book{}, bc.scanFailed(operationBookFind, scanErr)
	}

	parsedPrice, err := decimal.NewFromString(price)
	if err != nil {
		return barnes.Book{}, errors.Join(ErrBuildingBookFailed, err)
	}

	book, err := barnes.BuildBook(foundISBN, parsedPrice, stock)
	if err != nil {
		return barnes.Book{}, errors.Join(ErrBuildingBookFailed, err)
	}

	return book, nil
}

// Save inserts the book or replaces price and stock of an existing book with the same ISBN.
func (bc *BookCatalog) Save(ctx context.Context, book barnes.Book) error {
	sqlQuery, err := bc.buildUpsertQuery(book)
	if err != nil {
		return bc.buildFailed(operationBookUpsert, err)
	}

	_, err = bc.executeStatement(ctx, operationBookUpsert, sqlQuery)

	return err
}

// BuyBook takes quantity copies out of stock and records the purchase with a new UUIDv7.
// Both happen in one statement, so stock is never lowered without a recorded purchase.
// A quantity of 0 records nothing. Returns ErrInsufficientStock if fewer copies are in stock.
func (bc *BookCatalog) BuyBook(ctx context.Context, book barnes.Book, quantity int) error {
	if quantity == 0 {
		return nil
	}

	purchaseID, err := uuid.NewV7()
	if err != nil {
		return err
	}

	sqlQuery, err := bc.buildPurchaseQuery(purchaseID, book, quantity)
	if err != nil {
		return bc.buildFailed(operationPurchase, err)
	}

	rowsAffected, err := bc.executeStatement(ctx, operationPurchase, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: isbn %s, quantity %d", ErrInsufficientStock, book.ISBN(), quantity)
	}

	bc.logOperation(
		logMsgPurchaseRecorded,
		logAttrPurchaseID, purchaseID.String(),
		logAttrISBN, book.ISBN(),
		logAttrQuantity, quantity,
	)

	return nil
}

func (bc *BookCatalog) buildFindQuery(isbn string) (sqlQueryString, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(bc.booksTableName).
		Select(
			goqu.C(colISBN),
			goqu.Cast(goqu.C(colPrice), castAsText),
			goqu.C(colQuantity),
		).
		Where(goqu.C(colISBN).Eq(isbn)).
		Limit(1).
		ToSQL()

	return sqlQuery, err
}

func (bc *BookCatalog) buildUpsertQuery(book barnes.Book) (sqlQueryString, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		Insert(bc.booksTableName).
		Rows(goqu.Record{
			colISBN:     book.ISBN(),
			colPrice:    book.Price().String(),
			colQuantity: book.Quantity(),
		}).
		OnConflict(goqu.DoUpdate(colISBN, goqu.Record{
			colPrice:    goqu.I("excluded." + colPrice),
			colQuantity: goqu.I("excluded." + colQuantity),
		})).
		ToSQL()

	return sqlQuery, err
}

// buildPurchaseQuery lowers the stock and inserts the purchase row in one statement.
// The insert selects from the updated row, so nothing is inserted if the stock is too low.
func (bc *BookCatalog) buildPurchaseQuery(purchaseID uuid.UUID, book barnes.Book, quantity int) (sqlQueryString, error) {
	total := book.Price().Mul(decimal.NewFromInt(int64(quantity)))

	details, err := jsoniter.ConfigFastest.Marshal(purchaseDetails{
		ISBN:      book.ISBN(),
		Quantity:  quantity,
		UnitPrice: book.Price().String(),
		Total:     total.String(),
	})
	if err != nil {
		return "", errors.Join(ErrEncodingDetailsFailed, err)
	}

	builder := goqu.Dialect(dialectPostgres)

	// Define the stock decrease for the CTE
	cteStmt := builder.
		Update(bc.booksTableName).
		Set(goqu.Record{colQuantity: goqu.L(`"`+colQuantity+`" - ?`, quantity)}).
		Where(
			goqu.C(colISBN).Eq(book.ISBN()),
			goqu.C(colQuantity).Gte(quantity),
		).
		Returning(colISBN)

	// Define the SELECT for the INSERT
	selectStmt := builder.
		From(cteUpdated).
		Select(
			goqu.L(castUUID, purchaseID.String()),
			goqu.I(cteUpdated+"."+colISBN),
			goqu.L(castInteger, quantity),
			goqu.L(castNumeric, total.String()),
			goqu.L(castTimestamp, bc.clock().UTC()),
			goqu.L(castJsonb, string(details)),
		)

	// Finalize the full INSERT query
	insertStmt := builder.
		Insert(bc.purchasesTableName).
		Cols(colPurchaseID, colISBN, colQuantity, colTotalPrice, colPurchasedAt, colDetails).
		FromQuery(selectStmt).
		With(cteUpdated, cteStmt)

	sqlQuery, _, err := insertStmt.ToSQL()

	return sqlQuery, err
}
