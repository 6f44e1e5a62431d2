package log

import (
	"context"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogCommand(t *testing.T) {
	logs := xlog.InitObserver(zapcore.InfoLevel)
	defer xlog.InitForTest()

	ctx := context.Background()
	LogCommand(ctx, "loans", time.Now(), nil)
	LogCommand(ctx, "pay", time.Now(), assert.AnError, xlog.String("account", "ACC1"))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "success", entries[0].ContextMap()["status"])
	assert.Equal(t, "loans", entries[0].ContextMap()["command"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "fail", entries[1].ContextMap()["status"])
	assert.Equal(t, "ACC1", entries[1].ContextMap()["account"])
}
