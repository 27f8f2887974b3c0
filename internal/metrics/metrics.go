package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReturnRequestsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_requests_created_total",
		Help: "Total number of return requests persisted, by creation mode.",
	},
		[]string{"mode"},
	)

	ReturnRequestsReplayedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "returns_requests_replayed_total",
		Help: "Total number of creation calls answered from an existing idempotency key.",
	})

	EligibilityDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_eligibility_decisions_total",
		Help: "Total number of eligibility checks, by outcome and reason.",
	},
		[]string{"eligible", "reason"},
	)

	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_transitions_total",
		Help: "Total number of committed lifecycle transitions, by event.",
	},
		[]string{"event"},
	)

	LabelJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_label_jobs_total",
		Help: "Total number of shipping label job runs, by outcome.",
	},
		[]string{"outcome"},
	)

	OutboxTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_outbox_tasks_total",
		Help: "Total number of outbox task completions, by topic and final status.",
	},
		[]string{"topic", "status"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "returns_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	RuleCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "returns_rule_cache_items",
		Help: "Current number of merchants held in the rule cache.",
	})
)
