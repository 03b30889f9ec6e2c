package adogrid

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("LogFind", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.LogFind(ctx, 12, 3, 7, nil)
		assert.Contains(t, buf.String(), "find completed")
		assert.Contains(t, buf.String(), "rows=12")
		assert.Contains(t, buf.String(), "index=7")

		buf.Reset()
		l.LogFind(ctx, 12, 3, 0, errors.New("boom"))
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "error=boom")
	})

	t.Run("WithDimension", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, nil)).WithDimension(4)

		l.Info("hello")
		assert.Contains(t, buf.String(), "dimension=4")
	})

	t.Run("Constructors", func(t *testing.T) {
		assert.NotNil(t, NewLogger(nil))
		assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
		assert.NotNil(t, NewTextLogger(slog.LevelWarn))
		assert.False(t, NoopLogger().Enabled(ctx, slog.LevelError))
	})
}
