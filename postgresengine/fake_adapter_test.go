package postgresengine

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/AntonStoeckl/pricing-calculators-go/internal/adapters"
)

// fakeAdapter records every statement and serves canned rows, so SQL building and row mapping
// can be tested without a database.
type fakeAdapter struct {
	queries      []string
	rows         [][]any
	rowsErr      error
	queryErr     error
	execErr      error
	rowsAffected []int64
	execCalls    int
}

func (f *fakeAdapter) Query(_ context.Context, query string) (adapters.DBRows, error) {
	f.queries = append(f.queries, query)
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	return &fakeRows{rows: f.rows, err: f.rowsErr, pos: -1}, nil
}

func (f *fakeAdapter) Exec(_ context.Context, query string) (adapters.DBResult, error) {
	f.queries = append(f.queries, query)
	if f.execErr != nil {
		return nil, f.execErr
	}

	affected := int64(1)
	if f.execCalls < len(f.rowsAffected) {
		affected = f.rowsAffected[f.execCalls]
	}
	f.execCalls++

	return fakeResult(affected), nil
}

type fakeRows struct {
	rows   [][]any
	err    error
	pos    int
	closed bool
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos]
	if len(row) != len(dest) {
		return fmt.Errorf("expected %d destinations, got %d", len(row), len(dest))
	}

	for i, value := range row {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer {
			return errors.New("scan destination must be a pointer")
		}

		source := reflect.ValueOf(value)
		if !source.Type().AssignableTo(target.Elem().Type()) {
			return fmt.Errorf("cannot scan %T into %s", value, target.Elem().Type())
		}

		target.Elem().Set(source)
	}

	return nil
}

func (r *fakeRows) Err() error {
	return r.err
}

func (r *fakeRows) Close() error {
	r.closed = true
	return nil
}

type fakeResult int64

func (r fakeResult) RowsAffected() (int64, error) {
	return int64(r), nil
}
