// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorsUnwrapToSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
		cause    error
	}{
		{"directory", &DirectoryNotFoundError{Path: "npm", Err: fs.ErrNotExist}, ErrDirectoryNotFound, fs.ErrNotExist},
		{"descriptor", &DescriptorNotFoundError{Entry: "a", Path: "npm/a/package.json", Err: fs.ErrNotExist}, ErrDescriptorNotFound, fs.ErrNotExist},
		{"malformed", &MalformedDescriptorError{Entry: "a", Err: errIsADirectory}, ErrMalformedDescriptor, errIsADirectory},
		{"invalid name", &InvalidNameFieldError{Entry: "a", Found: "number"}, ErrInvalidNameField, nil},
		{"write", &WriteError{Entry: "a", Err: fs.ErrPermission}, ErrWriteDescriptor, fs.ErrPermission},
		{"policy", &InvalidPolicyError{Value: "yolo"}, ErrInvalidPolicy, nil},
		{"options", &InvalidOptionsError{FieldErrors: []error{errEmptySearch}}, ErrInvalidOptions, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			if tt.cause != nil && !errors.Is(tt.err, tt.cause) {
				t.Errorf("errors.Is(%v, cause %v) = false", tt.err, tt.cause)
			}
			if strings.Contains(tt.err.Error(), "\n") {
				t.Errorf("Error() should be a single line, got %q", tt.err.Error())
			}
		})
	}
}

func TestInvalidNameFieldErrorMessage(t *testing.T) {
	t.Parallel()

	missing := &InvalidNameFieldError{Entry: "a", Path: "npm/a/package.json", Found: "missing"}
	if !strings.Contains(missing.Error(), `no "name" field`) {
		t.Errorf("missing: Error() = %q", missing.Error())
	}
	wrongType := &InvalidNameFieldError{Entry: "a", Path: "npm/a/package.json", Found: "number"}
	if !strings.Contains(wrongType.Error(), "is number, want string") {
		t.Errorf("wrong type: Error() = %q", wrongType.Error())
	}
}

func TestPassError(t *testing.T) {
	t.Parallel()

	first := &MalformedDescriptorError{Entry: "a", Path: "npm/a/package.json", Err: errors.New("bad json")}
	second := &InvalidNameFieldError{Entry: "c", Path: "npm/c/package.json", Found: "missing"}
	err := &PassError{Failures: []error{first, second}, Entries: 3}

	msg := err.Error()
	if !strings.HasPrefix(msg, "2 of 3 architecture entries failed: ") {
		t.Errorf("Error() = %q", msg)
	}
	if strings.Index(msg, `entry "a"`) > strings.Index(msg, `entry "c"`) {
		t.Errorf("failures should be listed in entry order: %q", msg)
	}
	if !errors.Is(err, ErrMalformedDescriptor) || !errors.Is(err, ErrInvalidNameField) {
		t.Error("PassError should expose every failure to errors.Is")
	}
	var nameErr *InvalidNameFieldError
	if !errors.As(err, &nameErr) || nameErr.Entry != "c" {
		t.Errorf("errors.As() = %v", nameErr)
	}
}

func TestPolicyValidate(t *testing.T) {
	t.Parallel()

	for _, p := range []Policy{"", PolicyFailFast, PolicyCollectAll} {
		if err := p.Validate(); err != nil {
			t.Errorf("Policy(%q).Validate() = %v", p, err)
		}
	}
	err := Policy("best-effort").Validate()
	var policyErr *InvalidPolicyError
	if !errors.As(err, &policyErr) || policyErr.Value != "best-effort" {
		t.Fatalf("Validate() = %v, want *InvalidPolicyError", err)
	}
	if !errors.Is(err, ErrInvalidPolicy) {
		t.Error("error should wrap ErrInvalidPolicy")
	}
}
