// SPDX-License-Identifier: MPL-2.0

// Package ordjson holds JSON objects whose keys keep their document order.
//
// Package descriptors are rewritten in place, so every key, nested value and
// number literal written by the upstream producer must survive a
// parse/serialize round trip unchanged. Object values are one of nil, bool,
// json.Number, string, []any or *Object.
package ordjson
