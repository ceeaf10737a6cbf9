// Package config holds the solver's runtime configuration: logging and
// the tracing/verbosity switches exposed on the command line. There is
// no activity-decay or model-enumeration knob here; this solver picks
// decisions by lowest variable index and stops at the first model.
package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config configures a solver run.
type Config struct {
	// Logger receives structured progress and trace output.
	Logger *logrus.Logger
	// Verbose enables printing the satisfying model to stderr, after
	// the "v SAT" line.
	Verbose bool
	// TraceDecisions enables a pretty-printed dump of the assignment
	// model after every decision and conflict, via solver.Dump.
	TraceDecisions bool
}

// New returns a Config with a timestamped, unadorned text logger
// writing to stderr.
func New() *Config {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "15:04:05.000",
	})
	return &Config{Logger: logger}
}
