package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod", "warn")

	l.Info().Msg("hidden")
	l.Warn().Str("field", "value").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"field":"value"`) || !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("expected JSON warn line, got %s", out)
	}
}

func TestNewLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod", "chatty")
	if l.GetLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", l.GetLevel())
	}
}
