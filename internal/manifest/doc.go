// Package manifest reads the declarative speller manifests installed next to
// each speller package.
//
//	[spellers]
//	se = "se.bhfst"
//
// Paths are relative to the manifest's directory.
package manifest
