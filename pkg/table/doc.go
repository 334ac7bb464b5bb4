// Package table provides a columnar in-memory table model with typed,
// null-aware columns.
//
// A Table is an ordered collection of named columns sharing a single row
// count. Each column declares a DataType (integer kinds at 8/16/32/64 bits,
// signed or unsigned, float32/float64, string, or dictionary-encoded
// categorical) and stores its values at exactly that width. Missing values
// are tracked with a validity bitmap, so any numeric width can represent
// "missing" without a sentinel.
//
// Columns are immutable once constructed. This lets transformed tables
// share untouched columns with their source table without copying.
package table
