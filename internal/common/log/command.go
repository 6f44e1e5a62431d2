package log

import (
	"context"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
)

// LogCommand writes the audit line of one CLI invocation.
func LogCommand(ctx context.Context, command string, startedAt time.Time, err error, fields ...xlog.Field) {
	fields = append(fields,
		xlog.String("command", command),
		xlog.Duration("duration", time.Since(startedAt)),
	)
	if err != nil {
		fields = append(fields, xlog.String("status", "fail"), xlog.Err(err))
		xlog.Warn(ctx, "[COMMAND]", fields...)
		return
	}

	fields = append(fields, xlog.String("status", "success"))
	xlog.Info(ctx, "[COMMAND]", fields...)
}
