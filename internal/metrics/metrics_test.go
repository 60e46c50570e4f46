package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestConverterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewConverterMetrics(reg)

	m.ObserveConversion(OutcomeSuccess, 120*time.Millisecond)
	m.ObserveConversion(OutcomeSuccess, 80*time.Millisecond)
	m.ObserveConversion(OutcomeInvalid, 0)
	m.ObserveCurrencyLoad(OutcomeFailure)
	m.ObserveFavoriteToggle()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ConversionsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionsTotal.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CurrencyLoadsTotal.WithLabelValues(OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FavoriteToggles))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ConversionDuration))
}
