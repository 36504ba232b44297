// Package metrics defines and registers all custom Prometheus metrics for the
// BCR car-rental API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bcr"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "wrong_password", or "not_registered"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Rental metrics ────────────────────────────────────────────────────────────

// RentalsCreatedTotal counts successful bookings.
var RentalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rentals_created_total",
		Help:      "Total number of rentals created.",
	},
)

// RentalConflictsTotal counts bookings rejected because the user already held
// an active rental.
var RentalConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rental_conflicts_total",
		Help:      "Total number of bookings rejected due to an active rental.",
	},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CarCacheTotal counts car cache lookups.
// Label:
//   - result: "hit" or "miss"
var CarCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "car_cache_total",
		Help:      "Total number of car cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
