package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"scoop/config"
	deliverycontext "scoop/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))

	return entry
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	sql := func() (string, int64) { return `SELECT * FROM "creams"`, 3 }

	t.Run("failed query uses the request logger", func(t *testing.T) {
		base, baseBuf := captureLogger()
		reqLogger, reqBuf := captureLogger()
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With("request_id", "req-7"))

		newGormSlogLogger(base, cfg).Trace(ctx, time.Now(), sql, errors.New("boom"))

		assert.Zero(t, baseBuf.Len())
		entry := lastEntry(t, reqBuf)
		assert.Equal(t, "query failed", entry["msg"])
		assert.Equal(t, "req-7", entry["request_id"])
		assert.Equal(t, "boom", entry["error"])
	})

	t.Run("record not found is not logged", func(t *testing.T) {
		base, buf := captureLogger()

		newGormSlogLogger(base, cfg).Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)

		assert.Zero(t, buf.Len())
	})

	t.Run("slow query warns", func(t *testing.T) {
		base, buf := captureLogger()

		newGormSlogLogger(base, cfg).Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)

		entry := lastEntry(t, buf)
		assert.Equal(t, "slow query", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.EqualValues(t, 3, entry["rows"])
	})

	t.Run("fast query is quiet outside debug", func(t *testing.T) {
		base, buf := captureLogger()

		newGormSlogLogger(base, cfg).Trace(context.Background(), time.Now(), sql, nil)

		assert.Zero(t, buf.Len())
	})

	t.Run("debug logs every query", func(t *testing.T) {
		base, buf := captureLogger()
		debugCfg := &config.Config{}
		debugCfg.Env.Debug = true

		newGormSlogLogger(base, debugCfg).Trace(context.Background(), time.Now(), sql, nil)

		assert.Equal(t, "query", lastEntry(t, buf)["msg"])
	})
}
