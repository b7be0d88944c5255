// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDirectoryNotFound is wrapped by DirectoryNotFoundError.
	ErrDirectoryNotFound = errors.New("architecture root directory not found")
	// ErrDescriptorNotFound is wrapped by DescriptorNotFoundError.
	ErrDescriptorNotFound = errors.New("package descriptor not found")
	// ErrMalformedDescriptor is wrapped by MalformedDescriptorError.
	ErrMalformedDescriptor = errors.New("malformed package descriptor")
	// ErrInvalidNameField is wrapped by InvalidNameFieldError.
	ErrInvalidNameField = errors.New("invalid package name field")
	// ErrWriteDescriptor is wrapped by WriteError.
	ErrWriteDescriptor = errors.New("failed to write package descriptor")
	// ErrInvalidOptions is wrapped by InvalidOptionsError.
	ErrInvalidOptions = errors.New("invalid rewrite options")

	errNotADirectory = errors.New("not a directory")
	errIsADirectory  = errors.New("is a directory")
)

type (
	// DirectoryNotFoundError is returned when the root directory is missing,
	// unreadable or not a directory. Nothing has been written.
	DirectoryNotFoundError struct {
		Path string
		Err  error
	}

	// DescriptorNotFoundError is returned when an entry has no readable
	// descriptor at the configured relative path.
	DescriptorNotFoundError struct {
		Entry string
		Path  string
		Err   error
	}

	// MalformedDescriptorError is returned when a descriptor is not valid
	// JSON or its top-level value is not an object.
	MalformedDescriptorError struct {
		Entry string
		Path  string
		Err   error
	}

	// InvalidNameFieldError is returned when the "name" field is missing or
	// holds something other than a string. Found is "missing" or the JSON
	// type of the value.
	InvalidNameFieldError struct {
		Entry string
		Path  string
		Found string
	}

	// WriteError is returned when the rewritten descriptor cannot be saved.
	WriteError struct {
		Entry string
		Path  string
		Err   error
	}

	// PassError collects the per-entry failures of a collect-all pass, in
	// entry order.
	PassError struct {
		Failures []error
		Entries  int
	}

	// InvalidOptionsError lists every problem found in an Options value.
	InvalidOptionsError struct {
		FieldErrors []error
	}
)

func unwrapWith(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

// Error implements the error interface.
func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("root directory %q not found or unreadable: %v", e.Path, e.Err)
}

// Unwrap returns ErrDirectoryNotFound and the underlying cause.
func (e *DirectoryNotFoundError) Unwrap() []error { return unwrapWith(ErrDirectoryNotFound, e.Err) }

// Error implements the error interface.
func (e *DescriptorNotFoundError) Error() string {
	return fmt.Sprintf("entry %q: package descriptor %q not found or unreadable: %v", e.Entry, e.Path, e.Err)
}

// Unwrap returns ErrDescriptorNotFound and the underlying cause.
func (e *DescriptorNotFoundError) Unwrap() []error { return unwrapWith(ErrDescriptorNotFound, e.Err) }

// Error implements the error interface.
func (e *MalformedDescriptorError) Error() string {
	return fmt.Sprintf("entry %q: malformed package descriptor %q: %v", e.Entry, e.Path, e.Err)
}

// Unwrap returns ErrMalformedDescriptor and the underlying cause.
func (e *MalformedDescriptorError) Unwrap() []error { return unwrapWith(ErrMalformedDescriptor, e.Err) }

// Error implements the error interface.
func (e *InvalidNameFieldError) Error() string {
	if e.Found == "missing" {
		return fmt.Sprintf("entry %q: package descriptor %q has no \"name\" field", e.Entry, e.Path)
	}
	return fmt.Sprintf("entry %q: \"name\" field in %q is %s, want string", e.Entry, e.Path, e.Found)
}

// Unwrap returns ErrInvalidNameField.
func (e *InvalidNameFieldError) Unwrap() error { return ErrInvalidNameField }

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("entry %q: failed to write package descriptor %q: %v", e.Entry, e.Path, e.Err)
}

// Unwrap returns ErrWriteDescriptor and the underlying cause.
func (e *WriteError) Unwrap() []error { return unwrapWith(ErrWriteDescriptor, e.Err) }

// Error joins every failure on a single line.
func (e *PassError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%d of %d architecture entries failed: %s", len(e.Failures), e.Entries, strings.Join(msgs, "; "))
}

// Unwrap exposes every failure to errors.Is/As.
func (e *PassError) Unwrap() []error { return e.Failures }

// Error implements the error interface.
func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("invalid rewrite options: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidOptions for errors.Is() compatibility.
func (e *InvalidOptionsError) Unwrap() error { return ErrInvalidOptions }
