// Package office locates installed Microsoft Office instances and the
// per-instance settings roots that receive proofing-tool overrides.
//
// Ownership boundary:
// - uninstall database scan and Office install classification
// - (install method, major version) -> settings root table
// - WOW64 mirror duplication
package office
