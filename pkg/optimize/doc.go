// Package optimize reduces the memory footprint of a table by narrowing
// column representations without changing observable values.
//
// Optimize runs three analyzers in sequence: special-column
// classification builds a skip-set of columns the transforms must not
// touch (identifiers, coordinates, free text), then the numeric narrower
// downcasts the remaining integer and float columns, and the categorical
// converter dictionary-encodes the remaining low-cardinality string
// columns. Every column receives a decision record in the returned
// Report whether or not it was changed.
//
// Classification runs first so a heuristic finding (for example a
// precision-sensitive coordinate column) vetoes a transform before it
// happens rather than being reversed afterwards.
package optimize
