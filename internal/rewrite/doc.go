// SPDX-License-Identifier: MPL-2.0

// Package rewrite implements the package metadata rewrite pass.
//
// A root directory holds one sub-directory per target platform, each with
// its own package.json. RewriteAll visits the entries in lexicographic order
// and replaces the first literal occurrence of a search string in every
// descriptor's "name" with a scoped replacement, leaving all other fields and
// the key order untouched. Entries are processed strictly one after another.
//
// Failures are typed (DirectoryNotFoundError, DescriptorNotFoundError,
// MalformedDescriptorError, InvalidNameFieldError, WriteError). Under
// PolicyFailFast the pass stops at the first one; under PolicyCollectAll every
// entry is attempted and the failures are returned together as a PassError.
// Nothing is rolled back: entries written before a failure stay written.
package rewrite
