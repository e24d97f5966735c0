package postgresengine

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/pricing-calculators-go/internal/adapters"
	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

const (
	defaultCartTableName      = "cart_items"
	defaultBooksTableName     = "books"
	defaultPurchasesTableName = "book_purchases"
	dialectPostgres           = "postgres"
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database execution failed"
	logMsgCloseRowsFailed     = "failed to close database rows"
	logMsgScanRowFailed       = "failed to scan database row"
	logMsgRowsAffectedFailed  = "failed to get rows affected count"
	logMsgBuildQueryFailed    = "failed to build sql"
	logMsgSQLExecuted         = "executed sql for: "
	logMsgOperation           = "storage operation: "
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrDurationMS         = "duration_ms"
	logAttrOperation          = "operation"
	errorTypeBuildQuery       = "build_query"
	errorTypeQuery            = "query"
	errorTypeExec             = "exec"
	errorTypeScan             = "scan"
)

var (
	ErrBuildingQueryFailed       = errors.New("building query failed")
	ErrQueryingFailed            = errors.New("querying database failed")
	ErrExecutingFailed           = errors.New("executing statement failed")
	ErrScanningRowFailed         = errors.New("scanning db row failed")
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
)

// engine holds what CartDatabase and BookCatalog share: the adapter, table names, and observability.
type engine struct {
	db                 adapters.DBAdapter
	cartTableName      string
	booksTableName     string
	purchasesTableName string
	logger             pricing.Logger
	metricsCollector   pricing.MetricsCollector
}

func newEngine(db adapters.DBAdapter, options ...Option) (engine, error) {
	e := engine{
		db:                 db,
		cartTableName:      defaultCartTableName,
		booksTableName:     defaultBooksTableName,
		purchasesTableName: defaultPurchasesTableName,
	}

	for _, option := range options {
		if err := option(&e); err != nil {
			return engine{}, err
		}
	}

	return e, nil
}

// executeQuery executes the SQL query and returns the rows, logging and measuring the execution.
func (e engine) executeQuery(ctx context.Context, operation string, sqlQuery sqlQueryString) (adapters.DBRows, error) {
	start := time.Now()
	rows, queryErr := e.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	e.logQueryWithDuration(sqlQuery, operation, duration)

	if queryErr != nil {
		e.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		e.recordError(operation, errorTypeQuery)

		return nil, errors.Join(ErrQueryingFailed, queryErr)
	}

	e.recordDuration(operation, duration)

	return rows, nil
}

// executeStatement executes the SQL statement and returns the number of affected rows.
func (e engine) executeStatement(ctx context.Context, operation string, sqlQuery sqlQueryString) (rowsAffectedInt64, error) {
	start := time.Now()
	result, execErr := e.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	e.logQueryWithDuration(sqlQuery, operation, duration)

	if execErr != nil {
		e.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		e.recordError(operation, errorTypeExec)

		return 0, errors.Join(ErrExecutingFailed, execErr)
	}

	e.recordDuration(operation, duration)

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		e.logError(logMsgRowsAffectedFailed, rowsAffectedErr)

		return 0, errors.Join(ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, nil
}

// closeRows closes database rows and logs any errors.
func (e engine) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if e.logger != nil {
			e.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

func (e engine) scanFailed(operation string, err error) error {
	e.logError(logMsgScanRowFailed, err, logAttrOperation, operation)
	e.recordError(operation, errorTypeScan)

	return errors.Join(ErrScanningRowFailed, err)
}

func (e engine) buildFailed(operation string, err error) error {
	e.logError(logMsgBuildQueryFailed, err, logAttrOperation, operation)
	e.recordError(operation, errorTypeBuildQuery)

	return errors.Join(ErrBuildingQueryFailed, err)
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (e engine) logQueryWithDuration(sqlQuery string, operation string, duration time.Duration) {
	if e.logger != nil {
		e.logger.Debug(logMsgSQLExecuted+operation, logAttrDurationMS, pricing.ToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (e engine) logOperation(action string, args ...any) {
	if e.logger != nil {
		e.logger.Info(logMsgOperation+action, args...)
	}
}

func (e engine) logError(message string, err error, args ...any) {
	if e.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		e.logger.Error(message, allArgs...)
	}
}

func (e engine) recordDuration(operation string, duration time.Duration) {
	if e.metricsCollector != nil {
		e.metricsCollector.RecordDuration(pricing.MetricDatabaseDuration, duration, map[string]string{
			pricing.LabelOperation: operation,
			pricing.LabelStatus:    pricing.StatusSuccess,
		})
	}
}

func (e engine) recordError(operation, errorType string) {
	if e.metricsCollector != nil {
		e.metricsCollector.IncrementCounter(pricing.MetricDatabaseErrors, map[string]string{
			pricing.LabelOperation: operation,
			pricing.LabelStatus:    pricing.StatusError,
			pricing.LabelErrorType: errorType,
		})
	}
}
