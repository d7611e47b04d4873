package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "speaker_client",
			Name:      "requests_total",
			Help:      "Remote requests attempted, by repository operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "speaker_client",
			Name:      "request_failures_total",
			Help:      "Repository operations that returned an error.",
		},
		[]string{"operation"},
	)
)
