package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(&bytes.Buffer{}, tt.level)
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("New(%q).GetLevel() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")

	logger.Debug().Msg("hidden")
	logger.Info().Str("slug", "1-intro").Msg("rendered")

	out := buf.String()
	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Errorf("debug message written at info level: %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("rendered")) || !bytes.Contains(buf.Bytes(), []byte("1-intro")) {
		t.Errorf("expected message and field in output, got %q", out)
	}
}
