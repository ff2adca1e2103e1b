package log

import (
	"context"
	"testing"
	"time"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/slogtest"
	"github.com/stretchr/testify/assert"
)

func TestWithTimeout(t *testing.T) {
	t.Setenv("DECK_TIMEOUT", "")

	ctx, cancel := WithTimeout(context.Background(), time.Minute)
	defer cancel()
	dl, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), dl, 5*time.Second)

	t.Setenv("DECK_TIMEOUT", "0")
	ctx, cancel = WithTimeout(context.Background(), time.Minute)
	defer cancel()
	_, ok = ctx.Deadline()
	assert.False(t, ok)
}

func TestContextLogger(t *testing.T) {
	ctx := WithTB(context.Background(), t, nil)
	ctx = Named(ctx, "deck")
	ctx = Leveled(ctx, slog.LevelDebug)

	Debug(ctx, "debug message", slog.F("k", "v"))
	Warn(ctx, "warn message")

	ctx = WithTB(context.Background(), t, &slogtest.Options{IgnoreErrors: true})
	Error(ctx, "error message", slog.Error(context.Canceled))
}
