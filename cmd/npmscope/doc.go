// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the npmscope command tree.
//
// The root command runs a rewrite pass; "config" inspects and scaffolds the
// configuration. Commands are executed through fang, which provides styled
// help, the --version flag and SIGINT cancellation. Failures are reported as
// a single "error: ..." line on stderr and mapped to a distinct exit code per
// failure kind (see exitCodeFor).
package cmd
