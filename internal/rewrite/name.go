// SPDX-License-Identifier: MPL-2.0

package rewrite

import "strings"

// ReplaceName replaces the first literal occurrence of search in name with
// replace and reports whether the name changed.
//
// When replace itself contains search and name already contains replace,
// the name is taken as already rewritten and returned unchanged, so running
// a pass twice leaves names alone.
func ReplaceName(name, search, replace string) (string, bool) {
	if search == "" || !strings.Contains(name, search) {
		return name, false
	}
	if strings.Contains(replace, search) && strings.Contains(name, replace) {
		return name, false
	}
	renamed := strings.Replace(name, search, replace, 1)
	return renamed, renamed != name
}
