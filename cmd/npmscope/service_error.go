// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/anni-rs/npmscope/internal/issue"
	"github.com/anni-rs/npmscope/internal/rewrite"
)

// ServiceError is an error that carries an optional issue catalog entry for
// the CLI layer to render in verbose mode.
// Always create via newServiceError to enforce the Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{Err: err, IssueID: issueID}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// issueIDFor picks the catalog entry describing a rewrite failure.
func issueIDFor(err error) issue.Id {
	var passErr *rewrite.PassError
	if errors.As(err, &passErr) && len(passErr.Failures) > 0 {
		return issueIDFor(passErr.Failures[0])
	}

	switch {
	case errors.Is(err, rewrite.ErrDirectoryNotFound):
		return issue.DirectoryNotFoundId
	case errors.Is(err, rewrite.ErrDescriptorNotFound):
		return issue.DescriptorNotFoundId
	case errors.Is(err, rewrite.ErrMalformedDescriptor):
		return issue.MalformedDescriptorId
	case errors.Is(err, rewrite.ErrInvalidNameField):
		return issue.InvalidNameFieldId
	case errors.Is(err, rewrite.ErrWriteDescriptor):
		return issue.DescriptorWriteFailedId
	default:
		return 0
	}
}

// suggestionsFor returns remediation hints for a rewrite failure.
func suggestionsFor(err error) []string {
	switch issueIDFor(err) {
	case issue.DirectoryNotFoundId:
		return []string{
			"Generate the per-platform packages before running npmscope",
			"Pass the right directory with --root or set root_dir in npmscope.cue",
		}
	case issue.DescriptorNotFoundId:
		return []string{
			"Remove stray entries from the root directory or skip them with --exclude",
			"Set descriptor_path if the descriptor is not at the top of each entry",
		}
	case issue.MalformedDescriptorId:
		return []string{"Regenerate the platform package or fix the JSON by hand"}
	case issue.InvalidNameFieldId:
		return []string{"Give the descriptor a string \"name\" field"}
	case issue.DescriptorWriteFailedId:
		return []string{
			"Check write permissions on the platform package directories",
			"Entries before the failing one are already rewritten; re-run once fixed",
		}
	default:
		return nil
	}
}

// renderDiagnostic writes err to w. The default form is one line; verbose
// mode adds suggestions, the error chain, every failure of a collect-all
// pass and the issue catalog entry.
func renderDiagnostic(w io.Writer, err error, verbose bool) {
	prefix := ErrorStyle.Render("error:")

	var ae *issue.ActionableError
	if !verbose || !errors.As(err, &ae) {
		fmt.Fprintf(w, "%s %s\n", prefix, err.Error())
	} else {
		fmt.Fprintf(w, "%s %s\n", prefix, ae.Format(true))
	}
	if !verbose {
		return
	}

	var passErr *rewrite.PassError
	if errors.As(err, &passErr) {
		fmt.Fprintln(w, "\nFailed entries:")
		for _, f := range passErr.Failures {
			fmt.Fprintf(w, "  - %s\n", f.Error())
		}
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.IssueID == 0 {
		return
	}
	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render("notty")
		if renderErr != nil {
			fmt.Fprintf(w, "failed to render help for issue %d: %v\n", svcErr.IssueID, renderErr)
			return
		}
		fmt.Fprint(w, rendered)
	}
}
