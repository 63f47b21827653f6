// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus collectors for the popvote server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Chart draw results
const (
	ResultOK    = "ok"
	ResultEmpty = "empty"
	ResultError = "error"
)

// Registry holds every popvote collector. A private registry keeps tests
// independent of the global default.
var Registry = prometheus.NewRegistry()

var (
	ChartDraws = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "popvote",
		Name:      "chart_draws_total",
		Help:      "Chart draws by chart kind and result.",
	}, []string{"kind", "result"})

	ChartReleases = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Namespace: "popvote",
		Name:      "chart_releases_total",
		Help:      "Chart instances released before a redraw.",
	})

	PreferenceWrites = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "popvote",
		Name:      "preference_writes_total",
		Help:      "Preference writes by key.",
	}, []string{"key"})

	RequestDuration = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "popvote",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "code"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
