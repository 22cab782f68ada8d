package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.verbose)
			logger.Debug("debug line", zap.String("path", "a.json"))
			logger.Warn("warn line")
			_ = logger.Sync()

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug emitted = %v, want %v; output:\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "warn line") {
				t.Errorf("expected warn line in output:\n%s", out)
			}
			if tt.verbose && !strings.Contains(out, "a.json") {
				t.Errorf("expected field value in output:\n%s", out)
			}
		})
	}
}
