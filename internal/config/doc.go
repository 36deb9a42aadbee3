// Package config loads the spellctl tool configuration.
//
// Ownership boundary:
// - TOML decoding and defaults
// - home directory expansion of configured paths
// - validation before any store is opened
package config
