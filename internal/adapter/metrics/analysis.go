package metrics

import "github.com/prometheus/client_golang/prometheus"

// AnalysisMetrics holds Prometheus metrics for the feedback analysis pipeline.
type AnalysisMetrics struct {
	SubmissionsTotal  *prometheus.CounterVec
	ThemesTotal       *prometheus.CounterVec
	CacheLookupsTotal *prometheus.CounterVec
}

// NewAnalysisMetrics creates and registers analysis pipeline metrics on the given registry.
func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	m := &AnalysisMetrics{
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Total number of accepted feedback submissions, by sentiment label.",
		}, []string{"label"}),
		ThemesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "themes_detected_total",
			Help:      "Total number of theme detections across submissions, by theme.",
		}, []string{"theme"}),
		CacheLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregate_cache_lookups_total",
			Help:      "Total number of aggregate cache lookups, by aggregate and outcome.",
		}, []string{"aggregate", "outcome"}),
	}

	reg.MustRegister(m.SubmissionsTotal, m.ThemesTotal, m.CacheLookupsTotal)
	return m
}

// RecordSubmission counts an accepted submission and its detected themes.
func (m *AnalysisMetrics) RecordSubmission(label string, themes []string) {
	m.SubmissionsTotal.WithLabelValues(label).Inc()
	for _, theme := range themes {
		m.ThemesTotal.WithLabelValues(theme).Inc()
	}
}

// RecordCacheLookup counts an aggregate cache hit or miss.
func (m *AnalysisMetrics) RecordCacheLookup(aggregate string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.CacheLookupsTotal.WithLabelValues(aggregate, outcome).Inc()
}
