// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Env is a set of environment variables to apply for one test.
type Env map[string]string

// ApplyEnv sets every variable in env and restores the previous values,
// or unsets them, when t finishes. Tests calling it must not run in parallel.
func ApplyEnv(t testing.TB, env Env) {
	t.Helper()
	for key, value := range env {
		previous, had := os.LookupEnv(key)
		if err := os.Setenv(key, value); err != nil {
			t.Fatalf("failed to set env %s: %v", key, err)
		}
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(key, previous)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
}

// IsolateUserConfig points the home and user config variables of every
// platform inside dir and returns the directory os.UserConfigDir will now
// report.
func IsolateUserConfig(t testing.TB, dir string) string {
	t.Helper()
	ApplyEnv(t, Env{
		"HOME":            dir,
		"USERPROFILE":     dir,
		"XDG_CONFIG_HOME": filepath.Join(dir, ".config"),
		"APPDATA":         filepath.Join(dir, "AppData", "Roaming"),
	})

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(dir, "AppData", "Roaming")
	case "darwin":
		return filepath.Join(dir, "Library", "Application Support")
	default:
		return filepath.Join(dir, ".config")
	}
}
