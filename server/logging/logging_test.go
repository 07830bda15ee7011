package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewToParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewTo(&buf, "WARN")
	if log.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("unexpected level: %v", log.GetLevel())
	}
	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	log.Warn().Str("k", "v").Msg("kept")
	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a JSON log line: %v (%q)", err, buf.String())
	}
	if line["k"] != "v" || line["message"] != "kept" || line["time"] == nil {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestNewToDefaultsToInfo(t *testing.T) {
	for _, lvl := range []string{"", "chatty"} {
		if got := NewTo(&bytes.Buffer{}, lvl).GetLevel(); got != zerolog.InfoLevel {
			t.Fatalf("level %q: expected info, got %v", lvl, got)
		}
	}
}
