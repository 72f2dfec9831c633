package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "campaigns/1/a.png", want: "campaigns/1/a.png"},
		{in: "/campaigns/1/a.png", want: "campaigns/1/a.png"},
		{in: "./campaigns\\1\\a.png", want: "campaigns/1/a.png"},
		{in: "campaigns/../a.png", want: "a.png"},
		{in: "../etc/passwd", wantErr: true},
		{in: "..", wantErr: true},
		{in: "  ", wantErr: true},
	}
	for _, tc := range tests {
		got, err := sanitizeKey(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("sanitizeKey(%q) expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("sanitizeKey(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestSaveAndServe(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, "http://localhost:8080/static/")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	url, err := store.Save(context.Background(), "campaigns/2/tree.png", []byte("png"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "http://localhost:8080/static/campaigns/2/tree.png" {
		t.Fatalf("url = %q", url)
	}
	data, err := os.ReadFile(filepath.Join(dir, "campaigns", "2", "tree.png"))
	if err != nil || string(data) != "png" {
		t.Fatalf("stored file = %q, %v", data, err)
	}

	rec := httptest.NewRecorder()
	store.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/2/tree.png", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "png" {
		t.Fatalf("serve: %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	store.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/2/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("directory listing status = %d", rec.Code)
	}
}

func TestSaveCancelled(t *testing.T) {
	store, _ := NewFileStore(t.TempDir(), "http://x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, "a.png", []byte("x")); err == nil {
		t.Fatal("expected context error")
	}
}
