// Package metrics provides Prometheus exporters for application metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the MesseCall rostering service.
var (
	// Counters.
	SuggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messecall_suggestions_total",
			Help: "Total number of assignment suggestions computed",
		},
		[]string{"church"},
	)

	AssignmentsProposedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messecall_assignments_proposed_total",
			Help: "Total number of assignments materialized from suggestions",
		},
		[]string{"church"},
	)

	AssignmentsApprovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "messecall_assignments_approved_total",
			Help: "Total number of assignments approved",
		},
	)

	SwapsAcceptedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "messecall_swaps_accepted_total",
			Help: "Total number of swap requests accepted",
		},
	)

	PointsAwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messecall_points_awarded_total",
			Help: "Total points awarded, labeled by badge",
		},
		[]string{"badge"},
	)

	NotificationsDispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messecall_notifications_dispatched_total",
			Help: "Total notifications delivered by the dispatcher",
		},
		[]string{"status"},
	)

	BackupLookupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "messecall_backup_lookups_total",
			Help: "Total number of backup-candidate lookups",
		},
	)

	// Histograms.
	EligibleCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "messecall_eligible_candidates",
			Help:    "Number of eligible candidates per suggestion request",
			Buckets: prometheus.LinearBuckets(0, 2, 10), // 0 to 18 candidates
		},
	)
)
