package suite

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New - returns a context bounded by maxWaitDuration and a logger that writes to the test log.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

type testWriter struct {
	t *testing.T
}

func (that testWriter) Write(p []byte) (int, error) {
	that.t.Log(strings.TrimSuffix(string(p), "\n"))

	return len(p), nil
}
