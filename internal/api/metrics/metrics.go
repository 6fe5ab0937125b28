// Package metrics defines all custom Prometheus metrics for the job portal
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves on the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobportal"

// ── Identity metrics ──────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Labels:
//   - role: "Company" or "Employee"
//   - result: "created", "duplicate", "invalid", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts. Failed logins are never labelled with
// the failure cause; the result label only says success or failure.
// Labels:
//   - role: "Company" or "Employee"
//   - result: "success", "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// ── Application metrics ───────────────────────────────────────────────────────

// ApplicationsSubmittedTotal counts job application submissions.
// Label:
//   - result: "created", "rejected", "duplicate", "error"
var ApplicationsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job application submissions, by result.",
	},
	[]string{"result"},
)

// DocumentBytesStored sums the sizes of successfully stored CV documents.
var DocumentBytesStored = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "document_bytes_stored_total",
		Help:      "Total bytes of application documents written to storage.",
	},
)

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsPostedTotal counts job postings created by companies.
var JobsPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_posted_total",
		Help:      "Total number of job postings created.",
	},
)
