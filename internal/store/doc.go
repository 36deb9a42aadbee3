// Package store abstracts the hierarchical configuration database spellctl
// writes to.
//
// Ownership boundary:
// - key/value store contract (open, create, enumerate, set, delete subtree)
// - not-found tolerant subtree removal
// - backends: Windows registry, in-memory tree, TOML file snapshot
package store
