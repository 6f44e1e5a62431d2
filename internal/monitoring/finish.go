package monitoring

import (
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err    error
	fields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.fields = append(o.fields, fields...)
	}
}

// Finish ends the segment. Since err is evaluated when Finish is called, defer
// it through a closure over a named error result.
func (m *Monitor) Finish(opts ...FinishOption) {
	o := &finishOptions{}
	for _, opt := range opts {
		opt(o)
	}

	fields := append(o.fields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", time.Since(m.start)),
	)

	switch {
	case o.err != nil:
		fields = append(fields, xlog.String("status", "error"), xlog.Err(o.err))
		xlog.Warn(m.ctx, messagePrefix[m.layer], fields...)
	case m.layer == LayerDelivery || m.layer == LayerService:
		// repositories are already logged by the request wrapper
		fields = append(fields, xlog.String("status", "success"))
		xlog.Info(m.ctx, messagePrefix[m.layer], fields...)
	}

	if m.segment != nil {
		m.segment.End()
	}
}
