// Package history implements the undo/redo stack: a discriminated
// Record type covering every mutating operation kind, past/future
// stacks with a capacity cap, time-windowed coalescing of same-kind
// records at the top of the stack, and transactional grouping of
// several records into one undo unit.
//
// Records store enough by-value state (old/new coordinates, old/new
// parent and depth, old/new name) that apply and reverse are total for
// every kind — neither ever needs to consult the live PointSet for
// context beyond the index the record names. Because the PointSet
// lifecycle is soft-delete only (pointset never physically removes a
// point), undoing a creation-shaped record (CreatePoint, PasteSubtree)
// hides the points it created rather than destroying them, and redoing
// it simply clears HIDDEN again.
package history
