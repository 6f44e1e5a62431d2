package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog/ctxdata"

	"github.com/go-resty/resty/v2"
)

type RequestWrapper struct {
	client      *resty.Client
	metrics     metrics.Metrics
	serviceName string
	logPrefix   string
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, serviceName, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		metrics:     metrics,
		serviceName: serviceName,
		logPrefix:   logPrefix,
	}
}

// DoRequest sends one request and logs/records it. A non-2xx status is not an
// error here; err is only returned when no response was received. endpoint
// is the low cardinality label used for metrics.
func (w *RequestWrapper) DoRequest(ctx context.Context, method, url, endpoint string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	startTime := time.Now()

	logFields := []xlog.Field{
		xlog.String("url", url),
		xlog.String("method", method),
	}

	xlog.Info(ctx, w.logPrefix, append(logFields, xlog.String("message", "send request"))...)

	req := w.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("Cache-Control", "no-cache").
		SetHeader(ctxdata.HeaderCorrelationId, ctxdata.GetCorrelationId(ctx))
	if reqFunc != nil {
		req = reqFunc(req)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case http.MethodGet:
		httpRes, err = req.Get(url)
	case http.MethodPost:
		httpRes, err = req.Post(url)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedHTTPMethod, method)
	}

	if err != nil {
		w.record(startTime, method, endpoint, 0)
		xlog.Warn(ctx, w.logPrefix, append(logFields, xlog.Err(err))...)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	w.record(startTime, method, endpoint, httpRes.StatusCode())

	logFields = append(logFields,
		xlog.String("httpStatusCode", httpRes.Status()),
		xlog.String("httpResponse", string(httpRes.Body())),
		xlog.Duration("latency", time.Since(startTime)),
	)

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		xlog.Warn(ctx, w.logPrefix, logFields...)
	} else {
		xlog.Info(ctx, w.logPrefix, logFields...)
	}

	return httpRes, nil
}

func (w *RequestWrapper) record(startTime time.Time, method, endpoint string, statusCode int) {
	if w.metrics == nil {
		return
	}
	w.metrics.GetHTTPClientPrometheus().Record(time.Since(startTime), w.serviceName, method, endpoint, statusCode)
}
