package repositories

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/config"
	"bitbucket.org/Amartha/go-emi-collection/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newTestCollectionAPI(t *testing.T, handler http.HandlerFunc) CollectionAPI {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewCollectionAPI(config.HTTPConfiguration{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, metrics.NewWithRegisterer(prometheus.NewRegistry(), "test"))
}

func TestCollectionAPI_GetCustomers(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       []models.LoanAccountPayload
		wantErr    error
	}{
		{
			name:       "success keeps response order",
			statusCode: http.StatusOK,
			body: `[
				{"account_number":"ACC2","issue_date":"2023-01-01","interest_rate":12,"tenure":24,"emi_due":5000},
				{"account_number":"ACC1","issue_date":"2022-06-15","interest_rate":9.5,"tenure":12,"emi_due":1200.50}
			]`,
			want: []models.LoanAccountPayload{
				{
					AccountNumber: ptr("ACC2"),
					IssueDate:     ptr("2023-01-01"),
					InterestRate:  ptr(models.MustDecimal("12")),
					Tenure:        ptr(24),
					EMIDue:        ptr(models.MustDecimal("5000")),
				},
				{
					AccountNumber: ptr("ACC1"),
					IssueDate:     ptr("2022-06-15"),
					InterestRate:  ptr(models.MustDecimal("9.5")),
					Tenure:        ptr(12),
					EMIDue:        ptr(models.MustDecimal("1200.5")),
				},
			},
		},
		{
			name:       "empty array",
			statusCode: http.StatusOK,
			body:       `[]`,
			want:       []models.LoanAccountPayload{},
		},
		{
			name:       "missing keys are left nil",
			statusCode: http.StatusOK,
			body:       `[{"account_number":"ACC1"}]`,
			want:       []models.LoanAccountPayload{{AccountNumber: ptr("ACC1")}},
		},
		{
			name:       "null body",
			statusCode: http.StatusOK,
			body:       `null`,
			wantErr:    common.ErrNullDirectory,
		},
		{
			name:       "object instead of array",
			statusCode: http.StatusOK,
			body:       `{"data":[]}`,
			wantErr:    common.ErrDecode,
		},
		{
			name:       "malformed body",
			statusCode: http.StatusOK,
			body:       `[{"account_number":`,
			wantErr:    common.ErrDecode,
		},
		{
			name:       "non 200 status",
			statusCode: http.StatusInternalServerError,
			body:       `{"message":"down"}`,
			wantErr:    common.ErrUnexpectedStatus,
		},
		{
			name:       "201 is not accepted",
			statusCode: http.StatusCreated,
			body:       `[]`,
			wantErr:    common.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestCollectionAPI(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/customers", r.URL.Path)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := api.GetCustomers(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, decimalComparer()); diff != "" {
				t.Errorf("GetCustomers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectionAPI_GetCustomers_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	api := NewCollectionAPI(config.HTTPConfiguration{BaseURL: srv.URL, Timeout: time.Second}, nil)

	_, err := api.GetCustomers(context.Background())
	assert.ErrorIs(t, err, common.ErrTransport)
}

func TestCollectionAPI_SubmitPayment(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       models.PaymentResponse
	}{
		{
			name:       "success with message",
			statusCode: http.StatusOK,
			body:       `{"message":"Received"}`,
			want:       models.PaymentResponse{StatusCode: http.StatusOK, Message: "Received"},
		},
		{
			name:       "success without body",
			statusCode: http.StatusCreated,
			want:       models.PaymentResponse{StatusCode: http.StatusCreated},
		},
		{
			name:       "rejection with message",
			statusCode: http.StatusBadRequest,
			body:       `{"message":"Amount exceeds EMI"}`,
			want:       models.PaymentResponse{StatusCode: http.StatusBadRequest, Message: "Amount exceeds EMI"},
		},
		{
			name:       "rejection with html body",
			statusCode: http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			want:       models.PaymentResponse{StatusCode: http.StatusBadGateway},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestCollectionAPI(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/payments", r.URL.Path)
				assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

				raw, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"account_number":"ACC1","amount":500}`, string(raw))

				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := api.SubmitPayment(context.Background(), models.PaymentRequest{
				AccountNumber: "ACC1",
				Amount:        models.MustDecimal("500"),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectionAPI_SubmitPayment_AmountIsNumber(t *testing.T) {
	api := newTestCollectionAPI(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 12.75, payload["amount"])
		w.WriteHeader(http.StatusOK)
	})

	_, err := api.SubmitPayment(context.Background(), models.PaymentRequest{
		AccountNumber: "ACC9",
		Amount:        models.MustDecimal("12.75"),
	})
	require.NoError(t, err)
}

func TestCollectionAPI_SubmitPayment_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	api := NewCollectionAPI(config.HTTPConfiguration{BaseURL: srv.URL, Timeout: time.Second}, nil)

	_, err := api.SubmitPayment(context.Background(), models.PaymentRequest{
		AccountNumber: "ACC1",
		Amount:        models.MustDecimal("500"),
	})
	assert.ErrorIs(t, err, common.ErrTransport)
}
