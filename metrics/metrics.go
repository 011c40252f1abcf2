// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics defines the Prometheus instruments for the HTTP surface.
// Standalone so both middleware and main can use them without a cycle.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	VotesSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "election_votes_submitted_total",
		Help: "Ballots successfully persisted",
	})
)

// Register registers the instruments on the given registry (or the default
// if nil). Re-registration is tolerated so tests can call this freely.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{RequestsTotal, RequestDuration, VotesSubmitted} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}

// Handler returns the exposition endpoint for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
