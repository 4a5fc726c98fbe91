package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Synchronizer metrics
	SyncRuns         prometheus.Counter
	SyncDuration     prometheus.Histogram
	SnapshotsWritten prometheus.Counter

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		SyncRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "networth_sync_runs_total",
			Help: "Total number of snapshot synchronization runs",
		}),
		SyncDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "networth_sync_duration_seconds",
			Help:    "Duration of snapshot synchronization runs",
			Buckets: prometheus.DefBuckets,
		}),
		SnapshotsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "networth_snapshots_written_total",
			Help: "Total number of snapshot rows written by the synchronizer",
		}),
		AuthAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "networth_auth_attempts_total",
			Help: "Authentication attempts by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveSync implements usecase.SyncRecorder.
func (m *Metrics) ObserveSync(duration time.Duration, snapshots int) {
	m.SyncRuns.Inc()
	m.SyncDuration.Observe(duration.Seconds())
	m.SnapshotsWritten.Add(float64(snapshots))
}
