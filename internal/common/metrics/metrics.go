package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics interface {
	PrometheusRegisterer() prometheus.Registerer
	GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics
	GetCollectionPrometheus() *CollectionPrometheusMetrics
}

type metrics struct {
	reg               prometheus.Registerer
	httpClientMetrics *HTTPClientPrometheusMetrics
	collectionMetrics *CollectionPrometheusMetrics
}

// New registers the collectors on the default prometheus registry.
func New(namespace string) Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, namespace)
}

func NewWithRegisterer(reg prometheus.Registerer, namespace string) Metrics {
	namespace = FlattenName(namespace)
	return &metrics{
		reg:               reg,
		httpClientMetrics: newHTTPClientPrometheusMetrics(reg, namespace),
		collectionMetrics: newCollectionPrometheusMetrics(reg, namespace),
	}
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics {
	return m.httpClientMetrics
}

func (m *metrics) GetCollectionPrometheus() *CollectionPrometheusMetrics {
	return m.collectionMetrics
}
