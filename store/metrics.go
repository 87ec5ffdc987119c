package store

import "github.com/prometheus/client_golang/prometheus"

// Dispatch outcomes recorded by Metrics.
const (
	resultChanged   = "changed"
	resultUnchanged = "unchanged"
	resultUnknown   = "unknown"
)

// unknownActionLabel is the action label recorded for every unrecognized tag.
const unknownActionLabel = "unknown"

// Metrics counts store activity. A nil *Metrics records nothing.
type Metrics struct {
	Dispatches       *prometheus.CounterVec
	UndoRestores     prometheus.Counter
	SnapshotFailures prometheus.Counter
	SaveFailures     prometheus.Counter
}

// NewMetrics creates the store collectors and registers them with reg, or
// with the default registerer when reg is nil.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_dispatch_total",
			Help:      "Count of dispatched actions by outcome.",
		}, []string{"action", "result"}),
		UndoRestores: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_undo_restores_total",
			Help:      "Number of undo snapshots restored.",
		}),
		SnapshotFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_snapshot_failures_total",
			Help:      "Number of undo snapshots skipped because the state could not be copied.",
		}),
		SaveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_save_failures_total",
			Help:      "Number of state saves that failed.",
		}),
	}
	reg.MustRegister(m.Dispatches, m.UndoRestores, m.SnapshotFailures, m.SaveFailures)
	return m
}

func (m *Metrics) dispatched(action ActionType, result string) {
	if m == nil {
		return
	}
	label := string(action)
	if !action.Known() {
		label = unknownActionLabel
	}
	m.Dispatches.WithLabelValues(label, result).Inc()
}

func (m *Metrics) restored() {
	if m == nil {
		return
	}
	m.UndoRestores.Inc()
}

func (m *Metrics) snapshotFailed() {
	if m == nil {
		return
	}
	m.SnapshotFailures.Inc()
}

func (m *Metrics) saveFailed() {
	if m == nil {
		return
	}
	m.SaveFailures.Inc()
}
