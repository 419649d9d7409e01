package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestConsoleHandlerSplitsErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(NewConsoleHandler(&out, &errOut, LevelTrace))

	logger.Log(context.Background(), LevelTrace, "tick")
	logger.Info("started")
	logger.Error("failed", "error", "boom")

	assert.Contains(t, out.String(), "level=TRACE msg=tick")
	assert.Contains(t, out.String(), "msg=started")
	assert.NotContains(t, out.String(), "failed")
	assert.Contains(t, errOut.String(), "msg=failed error=boom")
	assert.NotContains(t, errOut.String(), "started")
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(NewConsoleHandler(&out, &errOut, slog.LevelInfo)).With("component", "engine")

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "component=engine")
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	r := NewRaw(&buf).(*rawLogger)
	r.now = func() time.Time { return time.Date(2024, 1, 1, 12, 30, 5, 0, time.UTC) }

	r.Log(false, []byte{0x02, 0x00, 0x04})
	r.Log(true, []byte{0xff})
	r.Log(false, nil)

	assert.Equal(t,
		"12:30:05.000 ->dev   3 bytes: 02 00 04\n"+
			"12:30:05.000 <-dev   1 bytes: ff\n",
		buf.String())
}

func TestRawLoggerNilWriter(t *testing.T) {
	assert.NotPanics(t, func() { NewRaw(nil).Log(false, []byte{1}) })
}
