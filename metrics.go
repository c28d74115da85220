package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// This file defines the Prometheus metrics that are exposed by the application.

// httpRequestsTotal tracks inbound requests by path, method and status code.
var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "weatherlookup_http_requests_total",
	Help: "Total number of HTTP requests by path, method and code.",
}, []string{"path", "method", "code"})

// externalRequestDuration observes the latency of calls to upstream APIs, by host.
var externalRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "weatherlookup_external_request_duration_seconds",
	Help:    "Duration of requests to upstream APIs by host.",
	Buckets: prometheus.DefBuckets,
}, []string{"host"})

// weatherLookupsTotal counts completed lookups by query kind and outcome.
var weatherLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "weatherlookup_lookups_total",
	Help: "Total number of weather lookups by query kind and outcome.",
}, []string{"kind", "outcome"})
