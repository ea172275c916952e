package planner

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	metricsNamespace = "gridastar"
	searchSubsystem  = "search"
)

// Search outcome labels.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeInvalid     = "invalid"
	OutcomeError       = "error"
)

// Metrics holds the Prometheus collectors for route searches.
//
// Thread Safety: All operations are thread-safe.
type Metrics struct {
	// SearchesTotal counts searches by outcome.
	// Labels: outcome (found, unreachable, invalid, error)
	SearchesTotal *prometheus.CounterVec

	// Expanded observes cells expanded per search.
	Expanded prometheus.Histogram

	// StaleEntries counts superseded frontier entries discarded.
	StaleEntries prometheus.Counter

	// DurationSeconds observes wall time per search.
	DurationSeconds prometheus.Histogram

	// RouteSteps observes route length in steps for found routes.
	RouteSteps prometheus.Histogram
}

// NewMetrics registers the search collectors with reg.
// Use prometheus.NewRegistry() in tests to keep registrations isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SearchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "searches_total",
			Help:      "Route searches by outcome",
		}, []string{"outcome"}),
		Expanded: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "expanded_cells",
			Help:      "Cells expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		StaleEntries: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "stale_entries_total",
			Help:      "Superseded frontier entries discarded",
		}),
		DurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "duration_seconds",
			Help:      "Wall time per search",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		RouteSteps: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "route_steps",
			Help:      "Route length in steps for found routes",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// observe records one search. A nil receiver is a no-op.
func (m *Metrics) observe(outcome string, o Outcome) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeInvalid {
		return
	}
	m.Expanded.Observe(float64(o.Result.Expanded))
	m.StaleEntries.Add(float64(o.Result.Stale))
	m.DurationSeconds.Observe(o.Elapsed.Seconds())
	if outcome == OutcomeFound {
		m.RouteSteps.Observe(float64(o.Result.Route.Len()))
	}
}

// WriteMetrics writes every metric family of g to w in the Prometheus text
// exposition format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
