package repositories

//go:generate mockgen -source=collection_api.go -destination=mock/collection_api.go -package=mock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bitbucket.org/Amartha/go-emi-collection/internal/common"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/httpclient"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/config"
	"bitbucket.org/Amartha/go-emi-collection/internal/models"
	"bitbucket.org/Amartha/go-emi-collection/internal/monitoring"

	"github.com/go-resty/resty/v2"
)

const (
	CollectionServiceName = "collection-api"

	pathCustomers = "/customers"
	pathPayments  = "/payments"
)

var logMessage = "[COLLECTION-API]"

// CollectionAPI is the remote loan collection service.
type CollectionAPI interface {
	// GetCustomers returns the directory exactly as sent, in response order.
	// Errors are *common.TransportError or *common.DecodeError.
	GetCustomers(ctx context.Context) ([]models.LoanAccountPayload, error)

	// SubmitPayment returns the response for any status code; the caller
	// decides what the status means. Errors are *common.TransportError.
	SubmitPayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResponse, error)
}

type collectionAPI struct {
	baseURL string
	wrapper *httpclient.RequestWrapper
}

func NewCollectionAPI(conf config.HTTPConfiguration, mtc metrics.Metrics) CollectionAPI {
	restyClient := resty.New()

	// payments must never be replayed by the transport
	restyClient = restyClient.
		SetTransport(monitoring.NewMiddlewareRoundTripper(restyClient.GetClient().Transport)).
		SetRetryCount(0).
		SetTimeout(conf.Timeout)

	return &collectionAPI{
		baseURL: conf.BaseURL,
		wrapper: httpclient.NewRequestWrapper(restyClient, mtc, CollectionServiceName, logMessage),
	}
}

func (c *collectionAPI) GetCustomers(ctx context.Context) (res []models.LoanAccountPayload, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	const op = "GetCustomers"
	url := fmt.Sprintf("%s%s", c.baseURL, pathCustomers)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, url, pathCustomers, nil)
	if err != nil {
		return nil, &common.TransportError{Op: op, Err: err}
	}

	if httpRes.StatusCode() != http.StatusOK {
		return nil, &common.TransportError{
			Op:  op,
			Err: fmt.Errorf("%w: got %d", common.ErrUnexpectedStatus, httpRes.StatusCode()),
		}
	}

	body := bytes.TrimSpace(httpRes.Body())
	if bytes.Equal(body, []byte("null")) {
		return nil, &common.DecodeError{Op: op, Err: common.ErrNullDirectory}
	}

	if err = json.Unmarshal(body, &res); err != nil {
		return nil, &common.DecodeError{Op: op, Err: fmt.Errorf("error unmarshal response: %w", err)}
	}

	return res, nil
}

func (c *collectionAPI) SubmitPayment(ctx context.Context, req models.PaymentRequest) (res models.PaymentResponse, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	url := fmt.Sprintf("%s%s", c.baseURL, pathPayments)

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodPost, url, pathPayments, func(r *resty.Request) *resty.Request {
		return r.SetHeader("Content-Type", "application/json").SetBody(req)
	})
	if err != nil {
		return res, &common.TransportError{Op: "SubmitPayment", Err: err}
	}

	res.StatusCode = httpRes.StatusCode()

	// the message is optional on every path, an unusable body just means no message
	var body models.PaymentResponseBody
	if jsonErr := json.Unmarshal(httpRes.Body(), &body); jsonErr == nil && body.Message != nil {
		res.Message = *body.Message
	}

	return res, nil
}
