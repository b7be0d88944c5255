// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"errors"
	"fmt"
)

const (
	// PolicyFailFast stops the pass at the first failing entry.
	PolicyFailFast Policy = "fail-fast"
	// PolicyCollectAll attempts every entry and reports all failures.
	PolicyCollectAll Policy = "collect-all"
)

// ErrInvalidPolicy is the sentinel error wrapped by InvalidPolicyError.
var ErrInvalidPolicy = errors.New("invalid error policy")

type (
	// Policy selects how a pass reacts to a failing entry.
	Policy string

	// InvalidPolicyError is returned when a Policy value is not recognized.
	InvalidPolicyError struct {
		Value Policy
	}
)

// Error implements the error interface.
func (e *InvalidPolicyError) Error() string {
	return fmt.Sprintf("invalid error policy %q (valid: %s, %s)", e.Value, PolicyFailFast, PolicyCollectAll)
}

// Unwrap returns ErrInvalidPolicy for errors.Is() compatibility.
func (e *InvalidPolicyError) Unwrap() error { return ErrInvalidPolicy }

// Validate returns nil if the policy is known, or an error wrapping
// ErrInvalidPolicy otherwise. The zero value is accepted and means
// PolicyFailFast.
func (p Policy) Validate() error {
	switch p {
	case "", PolicyFailFast, PolicyCollectAll:
		return nil
	default:
		return &InvalidPolicyError{Value: p}
	}
}

// String returns the string representation of the Policy.
func (p Policy) String() string { return string(p) }
