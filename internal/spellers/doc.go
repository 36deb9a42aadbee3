// Package spellers owns the central speller namespace.
//
// Ownership boundary:
// - name -> path registrations and absent-marker tombstones
// - desired-state loading (Langs)
package spellers
