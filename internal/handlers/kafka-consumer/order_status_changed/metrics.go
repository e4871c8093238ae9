package order_status_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_changed_messages_total",
			Help: "Total number of order.status.changed messages by outcome",
		},
		[]string{"outcome"},
	)

	ProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_status_changed_processing_seconds",
			Help:    "Time spent applying one order.status.changed message",
			Buckets: prometheus.DefBuckets,
		},
	)
)
