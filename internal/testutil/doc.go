// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers for building architecture trees and
// for scoped changes to the process environment.
//
// Tree helpers (MemTree, WriteTree, ReadFile) work on any afero.Fs so the
// same fixtures serve in-memory rewriter tests and on-disk CLI tests.
// ApplyEnv and IsolateUserConfig change process environment variables and
// register their own cleanup on the test.
package testutil
