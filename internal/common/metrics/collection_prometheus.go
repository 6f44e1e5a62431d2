package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels shared by the directory and payment counters.
const (
	ResultSuccess    = "success"
	ResultValidation = "validation_error"
	ResultTransport  = "transport_error"
	ResultBusiness   = "business_error"
	ResultDecode     = "decode_error"
	ResultStale      = "stale"
)

type CollectionPrometheusMetrics struct {
	directoryLoads     *prometheus.CounterVec
	paymentSubmissions *prometheus.CounterVec
}

func newCollectionPrometheusMetrics(reg prometheus.Registerer, namespace string) *CollectionPrometheusMetrics {
	directoryLoads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loan_directory_loads_total",
			Help:      "Loan directory loads by result.",
		},
		[]string{"result"},
	)
	paymentSubmissions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_submissions_total",
			Help:      "Payment submissions by result.",
		},
		[]string{"result"},
	)

	reg.MustRegister(directoryLoads, paymentSubmissions)

	return &CollectionPrometheusMetrics{
		directoryLoads:     directoryLoads,
		paymentSubmissions: paymentSubmissions,
	}
}

func (m *CollectionPrometheusMetrics) RecordDirectoryLoad(result string) {
	m.directoryLoads.WithLabelValues(result).Inc()
}

func (m *CollectionPrometheusMetrics) RecordPaymentSubmission(result string) {
	m.paymentSubmissions.WithLabelValues(result).Inc()
}
