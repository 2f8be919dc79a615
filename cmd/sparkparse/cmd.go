package main

import (
	"io"

	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"

	"github.com/sqlc-dev/sparksql/config"
	"github.com/sqlc-dev/sparksql/internal/logutil"
	"github.com/sqlc-dev/sparksql/metrics"
)

const (
	flagConfig    = "config"
	flagOutput    = "output"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagLogFile   = "log-file"
	flagMetrics   = "metrics"

	flagAnsi                    = "ansi"
	flagLegacySetOpsPrecedence  = "legacy-setops-precedence"
	flagLegacyExponentAsDecimal = "legacy-exponent-as-decimal"
)

func defineCommonFlags(flags *pflag.FlagSet) {
	flags.StringP(flagConfig, "c", "", "Path of a TOML config file")
	flags.StringP(flagOutput, "o", config.OutputExplain, "Output format: json, explain or sql")
	flags.StringP(flagLogLevel, "L", logutil.DefaultLogLevel, "Set the log level")
	flags.String(flagLogFormat, logutil.DefaultLogFormat, "Set the log format")
	flags.String(flagLogFile, "", "Set the log file path. If not set, logs go to standard output")
	flags.Bool(flagMetrics, false, "Print the parser metrics in Prometheus text format when done")

	flags.Bool(flagAnsi, false, "Reserve the ANSI SQL keywords")
	flags.Bool(flagLegacySetOpsPrecedence, false, "Give INTERSECT the same precedence as UNION and EXCEPT")
	flags.Bool(flagLegacyExponentAsDecimal, false, "Read exponent literals as decimals")
}

// loadConfig builds the effective config: defaults, then the config file,
// then every flag set on the command line.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	conf := config.NewConfig()
	path, err := flags.GetString(flagConfig)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if path != "" {
		if err := conf.Load(path); err != nil {
			return nil, errors.Annotatef(err, "load config %s", path)
		}
	}

	var firstErr error
	stringFlag := func(name string, dst *string) {
		if flags.Changed(name) {
			v, err := flags.GetString(name)
			if err != nil && firstErr == nil {
				firstErr = err
			}
			*dst = v
		}
	}
	boolFlag := func(name string, dst *bool) {
		if flags.Changed(name) {
			v, err := flags.GetBool(name)
			if err != nil && firstErr == nil {
				firstErr = err
			}
			*dst = v
		}
	}
	stringFlag(flagOutput, &conf.Output)
	stringFlag(flagLogLevel, &conf.Log.Level)
	stringFlag(flagLogFormat, &conf.Log.Format)
	stringFlag(flagLogFile, &conf.Log.File.Filename)
	boolFlag(flagMetrics, &conf.Metrics)
	boolFlag(flagAnsi, &conf.Parser.AnsiKeywords)
	boolFlag(flagLegacySetOpsPrecedence, &conf.Parser.LegacySetOpsPrecedence)
	boolFlag(flagLegacyExponentAsDecimal, &conf.Parser.LegacyExponentAsDecimal)
	if firstErr != nil {
		return nil, errors.Trace(firstErr)
	}
	if err := conf.Valid(); err != nil {
		return nil, err
	}
	if err := logutil.InitLogger(conf.Log.ToLogConfig()); err != nil {
		return nil, err
	}
	return conf, nil
}

// withMetrics runs fn and, when enabled, writes the collected parser
// metrics to w afterwards.
func withMetrics(conf *config.Config, w io.Writer, fn func() error) error {
	if !conf.Metrics {
		return fn()
	}
	reg := prometheus.NewRegistry()
	metrics.RegisterTo(reg)
	runErr := fn()
	mfs, err := reg.Gather()
	if err != nil {
		return errors.Trace(err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Trace(err)
		}
	}
	return runErr
}
