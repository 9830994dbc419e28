// SPDX-License-Identifier: MPL-2.0

// Package config loads gyprgen's configuration: a CUE file validated
// against an embedded schema, layered over defaults via Viper. Flags
// override config values per invocation at the CLI boundary.
package config
