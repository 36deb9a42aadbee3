// Package langkeys derives the set of registry keys a speller must be
// discoverable under for one BCP 47 language tag.
//
// Office resolves proofing tools by exact key lookup, so a speller for a bare
// language is also registered under its default-script and world-region forms
// unless the tag already maps to a Windows LCID.
package langkeys
