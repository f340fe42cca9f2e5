// SPDX-License-Identifier: MPL-2.0

// Package config handles argsig configuration using Viper with CUE as the file format.
//
// Configuration is loaded from the file given by --config, otherwise from
// ~/.config/argsig/config.cue (or the XDG/macOS/Windows equivalent), otherwise
// from ./config.cue. Missing files fall back to defaults. Files are validated
// against the embedded #Config schema (config_schema.cue) before they are merged
// into Viper.
package config
