package observability

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	syncTags = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spellctl",
			Subsystem: "sync",
			Name:      "tags_total",
			Help:      "Language tags processed by sync, by result.",
		},
		[]string{"result"},
	)
	reconcileRoots = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spellctl",
			Subsystem: "reconcile",
			Name:      "roots_total",
			Help:      "Settings roots reconciled, by result.",
		},
		[]string{"result"},
	)
	reconcileRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spellctl",
			Subsystem: "reconcile",
			Name:      "records_total",
			Help:      "Override records written, by kind.",
		},
		[]string{"kind"},
	)
	lastRevision = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "spellctl",
			Subsystem: "reconcile",
			Name:      "last_revision_count",
			Help:      "Most recent revision counter stamped on a root.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(syncTags, reconcileRoots, reconcileRecords, lastRevision)
	})
}

func RecordTag(registered bool) {
	RegisterMetrics()
	result := "registered"
	if !registered {
		result = "skipped"
	}
	syncTags.WithLabelValues(result).Inc()
}

func RecordRoot(created, deleted int, count uint32, err error) {
	RegisterMetrics()
	if err != nil {
		reconcileRoots.WithLabelValues("failed").Inc()
		return
	}
	reconcileRoots.WithLabelValues("ok").Inc()
	reconcileRecords.WithLabelValues("create").Add(float64(created))
	reconcileRecords.WithLabelValues("delete").Add(float64(deleted))
	lastRevision.Set(float64(count))
}

// WriteTextfile writes the default registry in the node_exporter textfile
// format. An empty path is a no-op.
func WriteTextfile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	RegisterMetrics()
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
