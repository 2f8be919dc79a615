package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	// Make sure it doesn't panic.
	ParseCounter.WithLabelValues("statement", LblOK).Inc()
	ParseDuration.WithLabelValues("statement").Observe(0.001)
	DiagnosticCounter.WithLabelValues("DashedIdentifier").Inc()
}

func TestRegisterMetrics(t *testing.T) {
	// Make sure it doesn't panic.
	Register()
	Register()
}

func TestRegisterTo(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterTo(reg)

	before := testutil.ToFloat64(ParseCounter.WithLabelValues("expression", LblError))
	ParseCounter.WithLabelValues("expression", LblError).Inc()
	require.Equal(t, before+1, testutil.ToFloat64(ParseCounter.WithLabelValues("expression", LblError)))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	require.True(t, names["sparksql_parser_parse_total"])
}

func TestRetLabel(t *testing.T) {
	require.Equal(t, LblOK, RetLabel(nil))
	require.Equal(t, LblError, RetLabel(errors.New("test error")))
}
