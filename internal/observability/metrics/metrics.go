package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "agrifleet_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	generateRuns    *prometheus.CounterVec
	generateLatency *prometheus.HistogramVec

	devicesGenerated  prometheus.Counter
	historyPoints     prometheus.Counter
	simCardsGenerated prometheus.Counter

	snapshotSaves       *prometheus.CounterVec
	snapshotSaveLatency *prometheus.HistogramVec
	snapshotLoads       *prometheus.CounterVec
)

// Init registers the generator metrics once.
func Init() {
	registerOnce.Do(func() {
		generateRuns = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "generate_runs_total",
				Help: "Total snapshot generation runs by result",
			},
			[]string{"result"},
		)
		generateLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "generate_latency_seconds",
				Help:    "Snapshot generation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		devicesGenerated = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "devices_generated_total",
				Help: "Total generated device records",
			},
		)
		historyPoints = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "history_points_total",
				Help: "Total synthesized historical data points",
			},
		)
		simCardsGenerated = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "sim_cards_generated_total",
				Help: "Total generated SIM card records",
			},
		)

		snapshotSaves = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "snapshot_saves_total",
				Help: "Total snapshot save operations by result",
			},
			[]string{"result"},
		)
		snapshotSaveLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "snapshot_save_latency_seconds",
				Help:    "Snapshot save latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		snapshotLoads = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "snapshot_loads_total",
				Help: "Total snapshot load operations by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			generateRuns,
			generateLatency,
			devicesGenerated,
			historyPoints,
			simCardsGenerated,
			snapshotSaves,
			snapshotSaveLatency,
			snapshotLoads,
		)
	})
}

// ObserveGenerate records one generation run.
func ObserveGenerate(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if generateRuns != nil {
		generateRuns.WithLabelValues(result).Inc()
	}
	if generateLatency != nil {
		generateLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// AddGenerated bumps the generated-record counters.
func AddGenerated(devices, points, simCards int) {
	if devicesGenerated != nil && devices > 0 {
		devicesGenerated.Add(float64(devices))
	}
	if historyPoints != nil && points > 0 {
		historyPoints.Add(float64(points))
	}
	if simCardsGenerated != nil && simCards > 0 {
		simCardsGenerated.Add(float64(simCards))
	}
}

// ObserveSnapshotSave records one snapshot save.
func ObserveSnapshotSave(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if snapshotSaves != nil {
		snapshotSaves.WithLabelValues(result).Inc()
	}
	if snapshotSaveLatency != nil {
		snapshotSaveLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncSnapshotLoad records one snapshot load.
func IncSnapshotLoad(result string) {
	if result == "" {
		result = resultSuccess
	}
	if snapshotLoads != nil {
		snapshotLoads.WithLabelValues(result).Inc()
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
