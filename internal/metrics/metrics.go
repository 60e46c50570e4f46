package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess    = "success"
	OutcomeInvalid    = "invalid_input"
	OutcomeFailure    = "fetch_failure"
	OutcomeSuperseded = "superseded"
)

// ConverterMetrics holds the counters of the conversion widget.
type ConverterMetrics struct {
	ConversionsTotal   *prometheus.CounterVec
	ConversionDuration prometheus.Histogram
	CurrencyLoadsTotal *prometheus.CounterVec
	FavoriteToggles    prometheus.Counter
}

// NewConverterMetrics registers the metrics on reg.
func NewConverterMetrics(reg prometheus.Registerer) *ConverterMetrics {
	factory := promauto.With(reg)
	return &ConverterMetrics{
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "converter_conversions_total",
				Help: "Conversion attempts by outcome",
			},
			[]string{"outcome"},
		),
		ConversionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "converter_conversion_duration_seconds",
				Help:    "Duration of outbound conversion requests",
				Buckets: prometheus.DefBuckets,
			},
		),
		CurrencyLoadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "converter_currency_loads_total",
				Help: "Currency list loads by outcome",
			},
			[]string{"outcome"},
		),
		FavoriteToggles: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "converter_favorite_toggles_total",
				Help: "Persisted favourite toggles",
			},
		),
	}
}

func (m *ConverterMetrics) ObserveConversion(outcome string, d time.Duration) {
	m.ConversionsTotal.WithLabelValues(outcome).Inc()
	if d > 0 {
		m.ConversionDuration.Observe(d.Seconds())
	}
}

func (m *ConverterMetrics) ObserveCurrencyLoad(outcome string) {
	m.CurrencyLoadsTotal.WithLabelValues(outcome).Inc()
}

func (m *ConverterMetrics) ObserveFavoriteToggle() {
	m.FavoriteToggles.Inc()
}
