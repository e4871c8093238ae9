package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freightdesk",
			Name:      "gateway_retries_total",
			Help:      "Order service calls that needed more than one attempt",
		},
		[]string{"service", "method", "grpc_code"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "freightdesk",
			Name:      "gateway_request_duration_seconds",
			Help:      "Duration of order service calls including retries",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "grpc_code"},
	)
)
