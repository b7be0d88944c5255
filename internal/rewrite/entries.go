// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// listEntries snapshots the immediate children of the root directory.
func (r *Rewriter) listEntries() ([]string, error) {
	root := r.opts.RootDir
	info, err := r.fs.Stat(root)
	if err != nil {
		return nil, &DirectoryNotFoundError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &DirectoryNotFoundError{Path: root, Err: errNotADirectory}
	}

	infos, err := afero.ReadDir(r.fs, root)
	if err != nil {
		return nil, &DirectoryNotFoundError{Path: root, Err: err}
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	slices.Sort(names)
	return names, nil
}

// selectEntries splits names into the entries to process and those filtered
// out by the include/exclude patterns. Patterns are validated in New.
func (r *Rewriter) selectEntries(names []string) (selected, skipped []string) {
	for _, name := range names {
		if r.matches(name) {
			selected = append(selected, name)
		} else {
			skipped = append(skipped, name)
		}
	}
	return selected, skipped
}

func (r *Rewriter) matches(name string) bool {
	if len(r.opts.Include) > 0 && !slices.ContainsFunc(r.opts.Include, matchFunc(name)) {
		return false
	}
	return !slices.ContainsFunc(r.opts.Exclude, matchFunc(name))
}

func matchFunc(name string) func(string) bool {
	return func(pattern string) bool {
		return doublestar.MatchUnvalidated(pattern, name)
	}
}
