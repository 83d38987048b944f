package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"stampcard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newCapturingGormLogger(t *testing.T, debug bool) (gormlogger.Interface, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))

	return rec
}

func TestGormSlogLoggerTrace(t *testing.T) {
	stmt := func() (string, int64) { return `SELECT * FROM "customers"`, 1 }

	t.Run("fast query is quiet outside debug", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, false)
		l.Trace(context.Background(), time.Now(), stmt, nil)
		assert.Zero(t, buf.Len())
	})

	t.Run("fast query is logged in debug", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, true)
		l.Trace(context.Background(), time.Now(), stmt, nil)

		rec := lastRecord(t, buf)
		assert.Equal(t, "sql", rec["msg"])
		assert.Equal(t, "INFO", rec["level"])
	})

	t.Run("failure carries the error", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, false)
		l.Trace(context.Background(), time.Now(), stmt, assert.AnError)

		rec := lastRecord(t, buf)
		assert.Equal(t, "sql failed", rec["msg"])
		assert.Equal(t, assert.AnError.Error(), rec["error"])
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, false)
		l.Trace(context.Background(), time.Now(), stmt, gorm.ErrRecordNotFound)
		assert.Zero(t, buf.Len())
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), stmt, nil)

		rec := lastRecord(t, buf)
		assert.Equal(t, "sql slow", rec["msg"])
		assert.Equal(t, "WARN", rec["level"])
	})

	t.Run("silent mode drops everything", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, true)
		l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), stmt, assert.AnError)
		assert.Zero(t, buf.Len())
	})
}

func TestGormSlogLoggerPrintf(t *testing.T) {
	l, buf := newCapturingGormLogger(t, false)

	l.Info(context.Background(), "skipped %d", 1)
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "replica %s lagging", "r1")
	rec := lastRecord(t, buf)
	assert.Equal(t, "replica r1 lagging", rec["message"])
}
