// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_http_requests_total",
			Help: "Total number of HTTP requests by route and status class",
		},
		[]string{"method", "route", "status"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	UsersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_users_created_total",
			Help: "Total number of users created",
		},
	)

	ExercisesLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_exercises_logged_total",
			Help: "Total number of exercises logged",
		},
	)
)

// Metrics records request counts and latencies. Requests are labelled by the
// ServeMux pattern that matched, so path ids never become label values.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		RequestsInFlight.Inc()
		defer RequestsInFlight.Dec()

		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		// the mux fills in r.Pattern on the way through
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		statusClass := fmt.Sprintf("%dxx", rec.status/100)

		RequestsTotal.WithLabelValues(r.Method, route, statusClass).Inc()
		RequestDurationSeconds.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
