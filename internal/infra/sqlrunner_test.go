package infra

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestExtractMarker(t *testing.T) {
	marker, body, err := ExtractMarker("\n--sql 798eb1a0-025c-4e80-952c-572e54a2ee29\nselect 1;\n")
	if err != nil {
		t.Fatalf("ExtractMarker() error: %v", err)
	}
	if marker != "798eb1a0-025c-4e80-952c-572e54a2ee29" {
		t.Fatalf("marker = %q", marker)
	}
	if body != "select 1;" {
		t.Fatalf("body = %q", body)
	}
}

func TestExtractMarkerRejectsMissingMarker(t *testing.T) {
	for _, q := range []string{"", "select 1;", "--sql not-a-uuid\nselect 1;", "-- sql 798eb1a0-025c-4e80-952c-572e54a2ee29\nselect 1;"} {
		if _, _, err := ExtractMarker(q); err == nil {
			t.Fatalf("ExtractMarker(%q) expected error", q)
		}
	}
}

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	if !IsUniqueViolation(unique) || IsForeignKeyViolation(unique) {
		t.Fatalf("unique violation misclassified")
	}
	if !IsForeignKeyViolation(fk) || IsUniqueViolation(fk) {
		t.Fatalf("foreign key violation misclassified")
	}
	if !IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)) {
		t.Fatalf("IsNoRows() should unwrap")
	}
	if IsNoRows(nil) || IsUniqueViolation(nil) {
		t.Fatalf("nil error classified as failure")
	}
}
