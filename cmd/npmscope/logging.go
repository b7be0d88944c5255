// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/anni-rs/npmscope/internal/config"

	"github.com/charmbracelet/log"
)

// newLogger builds the diagnostic logger. Verbose mode forces debug level.
func newLogger(w io.Writer, cfg config.LogConfig, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          config.AppName,
		ReportTimestamp: false,
	})

	level, err := log.ParseLevel(cfg.Level.String())
	if err != nil {
		level = log.WarnLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case config.LogFormatJSON:
		logger.SetFormatter(log.JSONFormatter)
	case config.LogFormatLogfmt:
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetFormatter(log.TextFormatter)
	}
	return logger
}
