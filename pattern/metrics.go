package pattern

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by Fit and Generator.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Fits counts completed fits. Labels: method (fast, exhaustive).
	Fits *prometheus.CounterVec

	// FitDuration measures wall time per fit. Labels: method.
	FitDuration *prometheus.HistogramVec

	// Elements counts committed elements. Labels: kind.
	Elements *prometheus.CounterVec

	// Trials counts candidate trials. Labels: kind, outcome (committed,
	// outscored, rejected).
	Trials *prometheus.CounterVec

	// OptimizerMoves counts moves applied by spanopt during exhaustive trials.
	OptimizerMoves prometheus.Counter

	// Draws counts generated values.
	Draws prometheus.Counter

	// Exhausted counts unique draws that failed with ErrExhaustedKeyspace.
	Exhausted prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Fits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strpattern",
			Subsystem: "fit",
			Name:      "total",
			Help:      "Completed pattern fits by method",
		}, []string{"method"}),
		FitDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "strpattern",
			Subsystem: "fit",
			Name:      "duration_seconds",
			Help:      "Pattern fit duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"method"}),
		Elements: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strpattern",
			Subsystem: "fit",
			Name:      "elements_total",
			Help:      "Committed elements by kind",
		}, []string{"kind"}),
		Trials: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strpattern",
			Subsystem: "fit",
			Name:      "trials_total",
			Help:      "Candidate element trials by kind and outcome",
		}, []string{"kind", "outcome"}),
		OptimizerMoves: f.NewCounter(prometheus.CounterOpts{
			Namespace: "strpattern",
			Subsystem: "spanopt",
			Name:      "moves_total",
			Help:      "Moves applied by the span-assignment optimizer",
		}),
		Draws: f.NewCounter(prometheus.CounterOpts{
			Namespace: "strpattern",
			Subsystem: "draw",
			Name:      "total",
			Help:      "Values drawn from patterns",
		}),
		Exhausted: f.NewCounter(prometheus.CounterOpts{
			Namespace: "strpattern",
			Subsystem: "draw",
			Name:      "exhausted_total",
			Help:      "Unique draws that ran out of unseen values",
		}),
	}
}

func (m *Metrics) observeFit(method Method, seconds float64) {
	if m == nil {
		return
	}
	m.Fits.WithLabelValues(method.String()).Inc()
	m.FitDuration.WithLabelValues(method.String()).Observe(seconds)
}

func (m *Metrics) observeTrial(kind, outcome string, moves int) {
	if m == nil {
		return
	}
	m.Trials.WithLabelValues(kind, outcome).Inc()
	m.OptimizerMoves.Add(float64(moves))
}

func (m *Metrics) observeElement(kind string) {
	if m == nil {
		return
	}
	m.Elements.WithLabelValues(kind).Inc()
}

func (m *Metrics) observeDraw(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Exhausted.Inc()
		return
	}
	m.Draws.Inc()
}
