// Package metrics defines the custom Prometheus metrics for the task API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register themselves with the default registry at init time; the
// router exposes them on /metrics together with the per-request metrics from
// echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "task_api"

// AuthAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "accepted" or "rejected"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, labelled by result.",
	},
	[]string{"result"},
)

// TasksCreatedTotal counts successfully created tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created.",
	},
)

// TasksToggledTotal counts completed-flag toggles.
var TasksToggledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_toggled_total",
		Help:      "Total number of task status toggles.",
	},
)

// TasksDeletedTotal counts permanently removed tasks.
var TasksDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_deleted_total",
		Help:      "Total number of tasks deleted.",
	},
)
