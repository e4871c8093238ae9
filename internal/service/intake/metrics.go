package intake

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DraftsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "intake_drafts_active",
			Help: "Number of order drafts held in memory",
		},
	)

	DraftSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_draft_submissions_total",
			Help: "Total number of draft submissions by outcome",
		},
		[]string{"result"},
	)

	DraftsEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_drafts_evicted_total",
			Help: "Total number of idle drafts evicted",
		},
	)
)
