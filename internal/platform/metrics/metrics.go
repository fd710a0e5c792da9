// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

/*
Package metrics exposes Prometheus instrumentation for the HTTP layer.

It records request counts, latencies, and in-flight gauges, labelled by the
router's route pattern (not the raw path) to keep label cardinality bounded.

Endpoints:

  - GET /metrics: Prometheus scrape target (mounted in internal/api).
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// # Collectors

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "forfit_http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forfit_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forfit_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Init registers all collectors with the default Prometheus registry.
// Call exactly once during startup, before the server accepts traffic.
func Init() {
	prometheus.MustRegister(httpInFlight, httpRequestsTotal, httpRequestDuration)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// # Instrumentation Middleware

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// Instrument measures RPS, latency, and in-flight requests for every handler.
//
// # Label Cardinality
//
// The route label uses the chi route pattern (e.g. /api/v1/members/{id})
// resolved after the request is served, so path parameters never explode
// the label space.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		httpInFlight.Inc()
		startTime := time.Now()

		wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
		next.ServeHTTP(wrappedWriter, request)

		route := "unmatched"
		if routeContext := chi.RouteContext(request.Context()); routeContext != nil && routeContext.RoutePattern() != "" {
			route = routeContext.RoutePattern()
		}
		status := strconv.Itoa(wrappedWriter.status)

		httpRequestDuration.WithLabelValues(request.Method, route, status).Observe(time.Since(startTime).Seconds())
		httpRequestsTotal.WithLabelValues(request.Method, route, status).Inc()
		httpInFlight.Dec()
	})
}
