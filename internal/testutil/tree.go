// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// Tree maps slash-separated relative paths to file contents.
type Tree map[string]string

// Descriptor returns a minimal 2-space-indented package descriptor with the
// given name, in the shape produced by napi-rs per-platform packages.
func Descriptor(name, cpu string) string {
	return fmt.Sprintf(`{
  "name": %q,
  "version": "0.1.0",
  "os": [
    "linux"
  ],
  "cpu": [
    %q
  ],
  "main": "anni-javascript-binding.node",
  "license": "MIT"
}`, name, cpu)
}

// MemTree returns an in-memory filesystem populated with tree under root.
func MemTree(t testing.TB, root string, tree Tree) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	WriteTree(t, fs, root, tree)
	return fs
}

// WriteTree writes every file in tree below root, creating parents as
// needed. Files are written in sorted path order.
func WriteTree(t testing.TB, fs afero.Fs, root string, tree Tree) {
	t.Helper()
	if err := fs.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create root %s: %v", root, err)
	}
	paths := make([]string, 0, len(tree))
	for p := range tree {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := fs.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", full, err)
			}
			continue
		}
		if err := fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create directory %s: %v", filepath.Dir(full), err)
		}
		if err := afero.WriteFile(fs, full, []byte(tree[p]), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", full, err)
		}
	}
}

// ReadFile returns the contents of path on fs, failing the test on error.
func ReadFile(t testing.TB, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
