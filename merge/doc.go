// Package merge reconciles a tree read from disk with a declared tree.
//
// Reconcile walks the disk tree in file order and folds it into the
// target in place:
//
//   - keys present in both: sections recurse, scalars take the disk
//     value (and the disk inline comments, if there are any)
//   - keys only on disk: added under Open, dropped under Closed
//   - lists present in both: under Open, disk elements the target lacks
//     are appended
//   - comments and blank lines: under Open, restored at their disk
//     position unless the target already has the same line there
//
// Anything added is inserted at its disk index, so the target keeps the
// file's order. Reconciling the same disk tree twice changes nothing the
// second time.
package merge
