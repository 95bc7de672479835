package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalyticsRequestsTotal counts analytics endpoint calls by outcome.
	AnalyticsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mentorlink_analytics_requests_total",
		Help: "Analytics requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	// AggregationLatency tracks how long a full summary aggregation takes.
	AggregationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mentorlink_analytics_aggregation_seconds",
		Help:    "Latency of mentor analytics aggregation",
		Buckets: prometheus.DefBuckets,
	})

	// ReportExportLatency tracks the full export path, store reads and PDF rendering.
	ReportExportLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mentorlink_report_export_seconds",
		Help:    "Latency of mentor report export",
		Buckets: prometheus.DefBuckets,
	})
)
