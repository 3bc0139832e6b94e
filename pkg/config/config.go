package config

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Options are the command line settings of a report run.
type Options struct {
	LogLevel  string
	OutputDir string
	NoColor   bool
}

// Default returns the options used when no flags are given.
func Default() *Options {
	return &Options{
		LogLevel:  "info",
		OutputDir: ".",
	}
}

// Validate checks the options and returns the parsed log level.
func (o *Options) Validate() (logrus.Level, error) {
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to parse log level")
	}
	if o.OutputDir == "" {
		return 0, pkgerrors.New("output directory must not be empty")
	}
	return level, nil
}

// LogrusFields returns the options as structured log fields.
func (o *Options) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"logLevel":  o.LogLevel,
		"outputDir": o.OutputDir,
		"noColor":   o.NoColor,
	}
}
