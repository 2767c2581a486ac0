package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantDebug bool
	}{
		{"info by default", Config{}, false},
		{"debug", Config{Debug: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := New(buf, tt.cfg)
			l.Debug("date.decoded", "packed", 0x58B4)
			l.Info("input.read")

			out := buf.String()
			if got := strings.Contains(out, "date.decoded"); got != tt.wantDebug {
				t.Errorf("debug message logged = %v, want %v:\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "input.read") {
				t.Errorf("info message missing:\n%s", out)
			}
			if !strings.Contains(out, "Z ") && !strings.Contains(out, "Z\n") {
				t.Errorf("time is not rendered in UTC:\n%s", out)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Errorf("Discard() logger is enabled for info")
	}
}
