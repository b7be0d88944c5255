// SPDX-License-Identifier: MPL-2.0

// Package cueutil compiles user CUE files against an embedded schema and
// formats CUE errors with file and field-path prefixes.
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	res, err := cueutil.ParseAndDecode[map[string]any](schema, data, "#Config",
//		cueutil.WithFilename(path))
package cueutil
