package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
)

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   tracelog.LogLevel
		want slog.Level
	}{
		{tracelog.LogLevelError, slog.LevelError},
		{tracelog.LogLevelWarn, slog.LevelWarn},
		{tracelog.LogLevelInfo, slog.LevelInfo},
		{tracelog.LogLevelDebug, slog.LevelDebug},
		{tracelog.LogLevelTrace, slog.LevelDebug},
	}

	for _, tt := range tests {
		if got := slogLevel(tt.in); got != tt.want {
			t.Errorf("slogLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSlogTracer_ForwardsData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	slogTracer(logger)(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{"sql": "SELECT 1"})

	out := buf.String()
	if !strings.Contains(out, "msg=Query") || !strings.Contains(out, `sql="SELECT 1"`) {
		t.Errorf("unexpected log output: %s", out)
	}
}
