// Package metrics exposes Prometheus metrics for scenario evaluations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the custom prometheus registry for the planner.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// ScenarioEvaluationsTotal counts evaluations by scenario and outcome
// (shortage, surplus, error).
var ScenarioEvaluationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "planner",
	Name:      "scenario_evaluations_total",
	Help:      "Number of scenario evaluations by scenario and outcome",
}, []string{"scenario", "outcome"})

// ShortageFTE tracks the size of shortages found.
var ShortageFTE = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "planner",
	Name:      "shortage_fte",
	Help:      "Shortage in FTE found by scenario evaluations",
	Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
})

// WarehouseFetchDuration measures how long collecting region facts takes.
var WarehouseFetchDuration = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "planner",
	Name:      "warehouse_fetch_duration_seconds",
	Help:      "Time spent fetching region, catalog and forecast facts",
	Buckets:   prometheus.DefBuckets,
})

// ScenarioAll labels failures of a whole-table comparison.
const ScenarioAll = "all"

const (
	OutcomeShortage = "shortage"
	OutcomeSurplus  = "surplus"
	OutcomeError    = "error"
)

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
