package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campusfund/internal/infra"
)

// call is one statement seen by fakeSQL.
type call struct {
	marker string
	args   []any
}

// fakeSQL answers queries by marker. Unmatched QueryRow calls return
// pgx.ErrNoRows; unmatched Query calls return no rows.
type fakeSQL struct {
	rows  map[string][][]any
	row   map[string][]any
	errs  map[string]error
	tags  map[string]int64
	calls []call
}

func newFakeSQL() *fakeSQL {
	return &fakeSQL{
		rows: map[string][][]any{},
		row:  map[string][]any{},
		errs: map[string]error{},
		tags: map[string]int64{},
	}
}

func (f *fakeSQL) record(query string, args []any) (string, error) {
	marker, _, err := infra.ExtractMarker(query)
	if err != nil {
		return "", err
	}
	f.calls = append(f.calls, call{marker: marker, args: args})
	return marker, f.errs[marker]
}

func (f *fakeSQL) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	marker, err := f.record(query, args)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	n, ok := f.tags[marker]
	if !ok {
		n = 1
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", n)), nil
}

func (f *fakeSQL) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	marker, err := f.record(query, args)
	if err != nil {
		return simpleRow{scan: func(...any) error { return err }}
	}
	vals, ok := f.row[marker]
	if !ok {
		return simpleRow{}
	}
	return simpleRow{scan: func(dest ...any) error { return assign(dest, vals) }}
}

func (f *fakeSQL) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	marker, err := f.record(query, args)
	if err != nil {
		return nil, err
	}
	return &fakeRows{data: f.rows[marker], idx: -1}, nil
}

// lastArgs returns the arguments of the most recent call with the marker
// carried by query.
func (f *fakeSQL) lastArgs(query string) []any {
	marker, _, _ := infra.ExtractMarker(query)
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].marker == marker {
			return f.calls[i].args
		}
	}
	return nil
}

func (f *fakeSQL) count(query string) int {
	marker, _, _ := infra.ExtractMarker(query)
	n := 0
	for _, c := range f.calls {
		if c.marker == marker {
			n++
		}
	}
	return n
}

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type testRowsBase struct{}

func (testRowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (testRowsBase) Conn() *pgx.Conn { return nil }

func (testRowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (testRowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (testRowsBase) RawValues() [][]byte { return nil }

type fakeRows struct {
	testRowsBase
	data [][]any
	idx  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error { return assign(dest, r.data[r.idx]) }

// assign copies vals into the scan destinations. A nil value leaves the
// destination untouched, which mirrors scanning SQL NULL into a pointer.
func assign(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(vals))
	}
	for i, v := range vals {
		if v == nil {
			continue
		}
		target := reflect.ValueOf(dest[i]).Elem()
		src := reflect.ValueOf(v)
		if !src.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan column %d: cannot assign %s to %s", i, src.Type(), target.Type())
		}
		target.Set(src)
	}
	return nil
}

func sp(s string) *string { return &s }

func markerFor(query string) string {
	m, _, err := infra.ExtractMarker(query)
	if err != nil {
		panic(err)
	}
	return m
}
