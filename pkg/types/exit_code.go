// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Exit codes of the npmscope process. Each rewrite failure kind has its own
// code so build scripts can branch on the cause.
const (
	ExitSuccess             ExitCode = 0
	ExitFailure             ExitCode = 1
	ExitConfigError         ExitCode = 2
	ExitDirectoryNotFound   ExitCode = 3
	ExitDescriptorNotFound  ExitCode = 4
	ExitMalformedDescriptor ExitCode = 5
	ExitInvalidNameField    ExitCode = 6
	ExitWriteFailed         ExitCode = 7
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is a process exit status in the POSIX range 0-255.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside 0-255.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

var exitCodeNames = map[ExitCode]string{
	ExitSuccess:             "success",
	ExitFailure:             "failure",
	ExitConfigError:         "config-error",
	ExitDirectoryNotFound:   "directory-not-found",
	ExitDescriptorNotFound:  "descriptor-not-found",
	ExitMalformedDescriptor: "malformed-descriptor",
	ExitInvalidNameField:    "invalid-name-field",
	ExitWriteFailed:         "write-failed",
}

func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode for errors.Is() compatibility.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if c cannot be passed to os.Exit portably.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess reports whether c is ExitSuccess.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// Name returns the symbolic name of a known code, or "" for any other value.
func (c ExitCode) Name() string { return exitCodeNames[c] }

// String returns the decimal code, followed by its name when known.
func (c ExitCode) String() string {
	if name := c.Name(); name != "" {
		return strconv.Itoa(int(c)) + " (" + name + ")"
	}
	return strconv.Itoa(int(c))
}
