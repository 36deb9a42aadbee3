// Package registration runs end-to-end speller registration cycles.
//
// Ownership boundary:
// - full-replace sync from parsed manifests
// - single tag register and deregister
// - refresh of every located Office settings root
// - cycle metrics
//
// Runs are not guarded against concurrent invocation; the tool assumes it is
// the only writer of its namespace for the duration of a cycle.
package registration
