// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/anni-rs/npmscope/internal/rewrite"
	"github.com/anni-rs/npmscope/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps an error returned by a command to the process exit code.
// A collect-all pass exits with the code of its first failure.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code.Validate() != nil {
			return types.ExitFailure
		}
		return exitErr.Code
	}

	var passErr *rewrite.PassError
	if errors.As(err, &passErr) && len(passErr.Failures) > 0 {
		return exitCodeFor(passErr.Failures[0])
	}

	switch {
	case errors.Is(err, rewrite.ErrDirectoryNotFound):
		return types.ExitDirectoryNotFound
	case errors.Is(err, rewrite.ErrDescriptorNotFound):
		return types.ExitDescriptorNotFound
	case errors.Is(err, rewrite.ErrMalformedDescriptor):
		return types.ExitMalformedDescriptor
	case errors.Is(err, rewrite.ErrInvalidNameField):
		return types.ExitInvalidNameField
	case errors.Is(err, rewrite.ErrWriteDescriptor):
		return types.ExitWriteFailed
	default:
		return types.ExitFailure
	}
}
