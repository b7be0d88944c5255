// SPDX-License-Identifier: MPL-2.0

// Package config handles npmscope configuration using Viper with CUE as the
// file format.
//
// A configuration file is looked up in order: the path given with --config,
// npmscope.cue in the working directory, then config.cue in the user config
// directory (~/.config/npmscope on Linux or $XDG_CONFIG_HOME/npmscope,
// ~/Library/Application Support/npmscope on macOS, %APPDATA%\npmscope on
// Windows). Files are validated against the embedded config_schema.cue.
// Environment variables prefixed with NPMSCOPE_ override file values, and
// root_dir and descriptor_path undergo shell parameter expansion.
package config
