// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/anni-rs/npmscope/pkg/types"
)

const (
	// ErrorPolicyFailFast stops a pass at the first failing entry.
	// Defined locally to avoid coupling config to internal/rewrite;
	// the CLI casts to rewrite.Policy at the boundary.
	ErrorPolicyFailFast ErrorPolicy = "fail-fast"
	// ErrorPolicyCollectAll attempts every entry and reports all failures.
	ErrorPolicyCollectAll ErrorPolicy = "collect-all"

	// LogLevelDebug enables per-entry diagnostics.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs renames and the pass summary.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors only.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// LogFormatText is the human readable formatter.
	LogFormatText LogFormat = "text"
	// LogFormatJSON emits one JSON object per line.
	LogFormatJSON LogFormat = "json"
	// LogFormatLogfmt emits key=value pairs.
	LogFormatLogfmt LogFormat = "logfmt"

	maxIndent = 16
)

var (
	// ErrInvalidErrorPolicy is returned when an ErrorPolicy value is not recognized.
	ErrInvalidErrorPolicy = errors.New("invalid error policy")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned when a LogFormat value is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ErrorPolicy selects how a pass reacts to a failing entry.
	ErrorPolicy string

	// InvalidErrorPolicyError is returned when an ErrorPolicy value is not recognized.
	// It wraps ErrInvalidErrorPolicy for errors.Is() compatibility.
	InvalidErrorPolicyError struct {
		Value ErrorPolicy
	}

	// LogLevel is the minimum level of emitted log records.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// LogFormat selects the log record formatter.
	LogFormat string

	// InvalidLogFormatError is returned when a LogFormat value is not recognized.
	InvalidLogFormatError struct {
		Value LogFormat
	}

	// InvalidConfigError collects every problem found in a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// RootDir is the directory holding one sub-directory per platform.
		RootDir string `json:"root_dir" mapstructure:"root_dir" toml:"root_dir"`
		// DescriptorPath is the descriptor location inside each platform directory.
		DescriptorPath string `json:"descriptor_path" mapstructure:"descriptor_path" toml:"descriptor_path"`
		// Search is the literal substring replaced in package names.
		Search string `json:"search" mapstructure:"search" toml:"search"`
		// Replace is substituted for the first occurrence of Search.
		Replace string `json:"replace" mapstructure:"replace" toml:"replace"`
		// ErrorPolicy is "fail-fast" (default) or "collect-all".
		ErrorPolicy ErrorPolicy `json:"error_policy" mapstructure:"error_policy" toml:"error_policy"`
		// Include limits the pass to entries matching any of these globs.
		Include []string `json:"include" mapstructure:"include" toml:"include"`
		// Exclude skips entries matching any of these globs.
		Exclude []string `json:"exclude" mapstructure:"exclude" toml:"exclude"`
		// Format controls how rewritten descriptors are serialized.
		Format FormatConfig `json:"format" mapstructure:"format" toml:"format"`
		// Log configures diagnostic output.
		Log LogConfig `json:"log" mapstructure:"log" toml:"log"`
	}

	// FormatConfig controls descriptor serialization.
	FormatConfig struct {
		Indent          int  `json:"indent" mapstructure:"indent" toml:"indent"`
		TrailingNewline bool `json:"trailing_newline" mapstructure:"trailing_newline" toml:"trailing_newline"`
	}

	// LogConfig configures the logger.
	LogConfig struct {
		Level  LogLevel  `json:"level" mapstructure:"level" toml:"level"`
		Format LogFormat `json:"format" mapstructure:"format" toml:"format"`
	}
)

// Error implements the error interface.
func (e *InvalidErrorPolicyError) Error() string {
	return fmt.Sprintf("invalid error policy %q (valid: fail-fast, collect-all)", e.Value)
}

// Unwrap returns ErrInvalidErrorPolicy for errors.Is() compatibility.
func (e *InvalidErrorPolicyError) Unwrap() error { return ErrInvalidErrorPolicy }

// Validate returns nil if the ErrorPolicy is one of the defined policies,
// or an error wrapping ErrInvalidErrorPolicy otherwise.
func (p ErrorPolicy) Validate() error {
	switch p {
	case ErrorPolicyFailFast, ErrorPolicyCollectAll:
		return nil
	default:
		return &InvalidErrorPolicyError{Value: p}
	}
}

// String returns the string representation of the ErrorPolicy.
func (p ErrorPolicy) String() string { return string(p) }

// Error implements the error interface.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Validate returns nil if the LogLevel is known.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Error implements the error interface.
func (e *InvalidLogFormatError) Error() string {
	return fmt.Sprintf("invalid log format %q (valid: text, json, logfmt)", e.Value)
}

// Unwrap returns ErrInvalidLogFormat for errors.Is() compatibility.
func (e *InvalidLogFormatError) Unwrap() error { return ErrInvalidLogFormat }

// Validate returns nil if the LogFormat is known.
func (f LogFormat) Validate() error {
	switch f {
	case LogFormatText, LogFormatJSON, LogFormatLogfmt:
		return nil
	default:
		return &InvalidLogFormatError{Value: f}
	}
}

// String returns the string representation of the LogFormat.
func (f LogFormat) String() string { return string(f) }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Validate checks constraints that environment overrides can bypass in the
// CUE schema. It returns an *InvalidConfigError listing every problem.
func (c *Config) Validate() error {
	var errs []error
	if err := types.FilesystemPath(c.RootDir).Validate(); err != nil {
		errs = append(errs, fmt.Errorf("root_dir: %w", err))
	}
	descriptor := types.FilesystemPath(c.DescriptorPath)
	if err := descriptor.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("descriptor_path: %w", err))
	} else if !descriptor.IsRelativeChild() {
		errs = append(errs, fmt.Errorf("descriptor_path %q must stay inside the platform directory", c.DescriptorPath))
	}
	if c.Search == "" {
		errs = append(errs, errors.New("search must not be empty"))
	}
	if err := c.ErrorPolicy.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Format.Indent < 0 || c.Format.Indent > maxIndent {
		errs = append(errs, fmt.Errorf("format.indent %d out of range [0, %d]", c.Format.Indent, maxIndent))
	}
	if err := c.Log.Level.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Log.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		RootDir:        "npm",
		DescriptorPath: "package.json",
		Search:         "anni-javascript-binding",
		Replace:        "@anni-rs/anni-javascript-binding",
		ErrorPolicy:    ErrorPolicyFailFast,
		Include:        []string{},
		Exclude:        []string{},
		Format: FormatConfig{
			Indent:          2,
			TrailingNewline: false,
		},
		Log: LogConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
		},
	}
}
