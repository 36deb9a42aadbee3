// Package tools provides host helpers shared by spellctl components.
//
// Ownership boundary:
// - subprocess execution and failure reporting
package tools
