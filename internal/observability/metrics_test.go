package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/abacus"
	"github.com/aretw0/abacus/internal/observability"
	"github.com/aretw0/abacus/pkg/roman"
)

func TestMetricsHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	svc := abacus.New(abacus.WithHooks(metrics.Hooks()))
	ctx := context.Background()

	_, err := svc.ToRoman(ctx, 1994)
	require.NoError(t, err)

	_, err = svc.ToRoman(ctx, 4001)
	require.ErrorIs(t, err, roman.ErrOutOfRange)

	_, err = svc.FromRoman(ctx, "XIV")
	require.NoError(t, err)

	ok := testutil.ToFloat64(metrics.Conversions.WithLabelValues("to_roman", "ok"))
	assert.Equal(t, 1.0, ok)

	failed := testutil.ToFloat64(metrics.Conversions.WithLabelValues("to_roman", "error"))
	assert.Equal(t, 1.0, failed)

	decoded := testutil.ToFloat64(metrics.Conversions.WithLabelValues("from_roman", "ok"))
	assert.Equal(t, 1.0, decoded)
}

func TestMetricsCacheHits(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	hooks := metrics.Hooks()
	hooks.OnConvert(context.Background(), &abacus.ConversionEvent{
		Direction: abacus.DirectionToRoman,
		Cached:    true,
		Duration:  time.Millisecond,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheHits))
}
