// Package reconcile applies the central desired state to Office settings roots.
//
// Each root receives one create record or one tombstone per name under the
// proofing-tools override key, followed by a revision stamp Office polls to
// decide whether to reload. The opposite record is always removed before a
// record is written, so no name is live in both subtrees of a root.
package reconcile
