// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the auth gateway and
// serves them over HTTP.
//
// All collectors live in a dedicated registry owned by *Metrics, so several
// instances (one per test) never collide. Observe* methods are no-ops on a
// nil *Metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth outcomes used as the "outcome" label of auth_attempts_total.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

// latencyBuckets cover fast validation rejections up to slow hashing plus
// a backend call. Unit: seconds.
var latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.2, 0.3, 0.5, 1, 2, 5}

// Metrics is the set of gateway collectors.
type Metrics struct {
	registry *prometheus.Registry

	// HTTPRequests counts inbound requests by route pattern, method and status.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration observes inbound request latency by route pattern and method.
	HTTPDuration *prometheus.HistogramVec

	// RPCRequests counts backend calls by full method name and status code.
	RPCRequests *prometheus.CounterVec
	// RPCDuration observes backend call latency by full method name.
	RPCDuration *prometheus.HistogramVec

	// AuthAttempts counts login and registration attempts by outcome.
	AuthAttempts *prometheus.CounterVec
}

// NewMetrics creates the collectors under namespace in a fresh registry,
// together with the Go runtime and process collectors.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route and method",
				Buckets:   latencyBuckets,
			},
			[]string{"route", "method"},
		),

		RPCRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rpc_client",
				Name:      "requests_total",
				Help:      "Total number of backend RPC calls by method and status code",
			},
			[]string{"method", "code"},
		),
		RPCDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "rpc_client",
				Name:      "request_duration_seconds",
				Help:      "Backend RPC call latency by method",
				Buckets:   latencyBuckets,
			},
			[]string{"method"},
		),

		AuthAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "attempts_total",
				Help:      "Login and registration attempts by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
	}
}

// ObserveHTTP records one finished inbound request.
func (m *Metrics) ObserveHTTP(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// ObserveRPC records one finished backend call.
func (m *Metrics) ObserveRPC(method, code string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(method, code).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// IncAuthAttempt records the outcome of a login or registration.
func (m *Metrics) IncAuthAttempt(operation, outcome string) {
	if m == nil {
		return
	}
	m.AuthAttempts.WithLabelValues(operation, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format. A nil
// *Metrics serves an empty registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
