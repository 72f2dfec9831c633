package infra

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLoggerProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production")

	logger.Debug().Msg("hidden")
	logger.Info().Str("campaign_id", "1").Msg("visible")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "visible" || entry["campaign_id"] != "1" || entry["service"] != "campusfund" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}
