// SPDX-License-Identifier: MPL-2.0

package rewrite

type (
	// EntryResult describes what happened to one architecture entry.
	EntryResult struct {
		Entry   string
		Path    string
		OldName string
		NewName string
		// Renamed is true when the name changed.
		Renamed bool
		// Written is true when the file on disk was overwritten. It stays
		// false in dry-run mode and when the output equals the input.
		Written bool
	}

	// Report summarizes a pass. It is returned even when the pass fails and
	// then covers the entries processed up to the failure.
	Report struct {
		RootDir string
		DryRun  bool
		// Entries lists successfully processed entries in processing order.
		Entries []EntryResult
		// Failed lists entries whose processing returned an error.
		Failed []string
		// Skipped lists entries filtered out by include/exclude patterns.
		Skipped []string
	}
)

// Renamed counts entries whose name changed.
func (r *Report) Renamed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Renamed {
			n++
		}
	}
	return n
}

// Written counts entries whose file was overwritten.
func (r *Report) Written() int {
	n := 0
	for _, e := range r.Entries {
		if e.Written {
			n++
		}
	}
	return n
}
