// Package config holds the settings of the sparkparse command.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"

	"github.com/sqlc-dev/sparksql/internal/logutil"
	"github.com/sqlc-dev/sparksql/parser"
)

// Output formats.
const (
	OutputJSON    = "json"
	OutputExplain = "explain"
	OutputSQL     = "sql"
)

// Config contains configuration options.
type Config struct {
	Parser  parser.Config `toml:"parser" json:"parser"`
	Log     Log           `toml:"log" json:"log"`
	Output  string        `toml:"output" json:"output"`
	Metrics bool          `toml:"metrics" json:"metrics"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format. one of json, text, or console.
	Format string `toml:"format" json:"format"`
	// Disable automatic timestamps in output.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
	// File log config.
	File logutil.FileLogConfig `toml:"file" json:"file"`
}

var defaultConf = Config{
	Parser: parser.DefaultConfig,
	Log: Log{
		Level:  logutil.DefaultLogLevel,
		Format: logutil.DefaultLogFormat,
		File:   logutil.NewFileLogConfig("", logutil.DefaultLogMaxSize),
	},
	Output: OutputExplain,
}

// NewConfig creates a new config instance with default value.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// Load loads config options from a toml file. Keys the file sets override
// the values already in c.
func (c *Config) Load(confFile string) error {
	md, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("config file %s contained unknown keys: %v", confFile, undecoded)
	}
	return c.Valid()
}

// Valid checks the values that cannot be checked by the decoder.
func (c *Config) Valid() error {
	switch c.Output {
	case OutputJSON, OutputExplain, OutputSQL:
	default:
		return errors.Errorf("invalid output %q, expected one of json, explain or sql", c.Output)
	}
	return nil
}

// ToLogConfig converts *Log to *logutil.LogConfig.
func (l *Log) ToLogConfig() *logutil.LogConfig {
	return logutil.NewLogConfig(l.Level, l.Format, l.File, l.DisableTimestamp)
}
