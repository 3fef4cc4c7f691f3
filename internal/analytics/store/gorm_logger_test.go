package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/analytics/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func statement() (string, int64) {
	return "INSERT INTO link_visits ...", 1
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("logs failed queries as errors", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		logger := store.NewGormLogger(zap.New(core))

		logger.Trace(context.Background(), time.Now(), statement, errors.New("relation missing"))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
		assert.Equal(t, "INSERT INTO link_visits ...", entry.ContextMap()["sql"])
	})

	t.Run("ignores record not found", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		logger := store.NewGormLogger(zap.New(core))

		logger.Trace(context.Background(), time.Now(), statement, gorm.ErrRecordNotFound)

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		logger := store.NewGormLogger(zap.New(core))

		logger.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("fast queries only at info mode", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		logger := store.NewGormLogger(zap.New(core))

		logger.Trace(context.Background(), time.Now(), statement, nil)
		assert.Equal(t, 0, logs.Len())

		logger.LogMode(gormlogger.Info).Trace(context.Background(), time.Now(), statement, nil)
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		logger := store.NewGormLogger(zap.New(core)).LogMode(gormlogger.Silent)

		logger.Trace(context.Background(), time.Now(), statement, errors.New("boom"))
		logger.Error(context.Background(), "boom %d", 1)

		assert.Equal(t, 0, logs.Len())
	})
}

func TestGormLogger_Messages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := store.NewGormLogger(zap.New(core)).LogMode(gormlogger.Info)

	logger.Info(context.Background(), "migrated %s", "link_visits")
	logger.Warn(context.Background(), "slow migration")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "migrated link_visits", logs.All()[0].Message)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}
