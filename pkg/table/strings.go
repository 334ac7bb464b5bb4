package table

import "fmt"

// stringHeaderSize approximates the per-string header overhead.
const stringHeaderSize = 16

// StringColumn stores string values verbatim, one string per row.
type StringColumn struct {
	values []string
	mask   *validity
}

// NewStringColumn builds a string column. valid marks rows that hold a
// value (nil means all rows are valid); missing rows ignore the
// corresponding entry in values.
func NewStringColumn(values []string, valid []bool) (*StringColumn, error) {
	if valid != nil && len(valid) != len(values) {
		return nil, fmt.Errorf("validity length %d does not match %d values", len(valid), len(values))
	}
	c := &StringColumn{
		values: make([]string, len(values)),
		mask:   maskFor(valid),
	}
	for i, v := range values {
		if valid != nil && !valid[i] {
			continue
		}
		c.values[i] = v
	}
	return c, nil
}

// DataType returns the String type.
func (c *StringColumn) DataType() DataType { return String }

// Len returns the row count.
func (c *StringColumn) Len() int { return len(c.values) }

// IsNull reports whether row i is missing.
func (c *StringColumn) IsNull(i int) bool { return c.mask != nil && !c.mask.get(i) }

// String returns the value at row i; ok is false for missing rows.
func (c *StringColumn) String(i int) (v string, ok bool) {
	if c.IsNull(i) {
		return "", false
	}
	return c.values[i], true
}

// Value returns the value at row i as a string, or nil when missing.
func (c *StringColumn) Value(i int) interface{} {
	v, ok := c.String(i)
	if !ok {
		return nil
	}
	return v
}

// Nullable reports whether the column carries a validity mask.
func (c *StringColumn) Nullable() bool { return c.mask != nil }

// MemoryUsage returns the estimated heap footprint in bytes.
func (c *StringColumn) MemoryUsage() int64 {
	var total int64
	for _, v := range c.values {
		total += int64(len(v)) + stringHeaderSize
	}
	if c.mask != nil {
		total += c.mask.memoryUsage()
	}
	return total
}

// CategoricalColumn stores a string column dictionary-encoded: uint32
// codes into a dictionary ordered by first appearance. Decoding a row
// always yields the exact original string.
type CategoricalColumn struct {
	codes []uint32
	dict  []string
	mask  *validity
}

// NewCategoricalColumn builds a categorical column from raw string
// values, assigning codes in first-appearance order so construction is
// deterministic. Missing rows consume no dictionary entry.
func NewCategoricalColumn(values []string, valid []bool) (*CategoricalColumn, error) {
	if valid != nil && len(valid) != len(values) {
		return nil, fmt.Errorf("validity length %d does not match %d values", len(valid), len(values))
	}
	c := &CategoricalColumn{
		codes: make([]uint32, len(values)),
		mask:  maskFor(valid),
	}
	index := make(map[string]uint32)
	for i, v := range values {
		if valid != nil && !valid[i] {
			continue
		}
		code, seen := index[v]
		if !seen {
			code = uint32(len(c.dict))
			index[v] = code
			c.dict = append(c.dict, v)
		}
		c.codes[i] = code
	}
	return c, nil
}

// DataType returns the Categorical type.
func (c *CategoricalColumn) DataType() DataType { return Categorical }

// Len returns the row count.
func (c *CategoricalColumn) Len() int { return len(c.codes) }

// IsNull reports whether row i is missing.
func (c *CategoricalColumn) IsNull(i int) bool { return c.mask != nil && !c.mask.get(i) }

// String returns the decoded value at row i; ok is false for missing rows.
func (c *CategoricalColumn) String(i int) (v string, ok bool) {
	if c.IsNull(i) {
		return "", false
	}
	return c.dict[c.codes[i]], true
}

// Value returns the decoded value at row i as a string, or nil when missing.
func (c *CategoricalColumn) Value(i int) interface{} {
	v, ok := c.String(i)
	if !ok {
		return nil
	}
	return v
}

// Code returns the dictionary code at row i; ok is false for missing rows.
func (c *CategoricalColumn) Code(i int) (code uint32, ok bool) {
	if c.IsNull(i) {
		return 0, false
	}
	return c.codes[i], true
}

// Categories returns a copy of the dictionary in code order.
func (c *CategoricalColumn) Categories() []string {
	out := make([]string, len(c.dict))
	copy(out, c.dict)
	return out
}

// Nullable reports whether the column carries a validity mask.
func (c *CategoricalColumn) Nullable() bool { return c.mask != nil }

// MemoryUsage returns the estimated heap footprint in bytes.
func (c *CategoricalColumn) MemoryUsage() int64 {
	total := int64(len(c.codes) * 4)
	for _, v := range c.dict {
		total += int64(len(v)) + stringHeaderSize
	}
	if c.mask != nil {
		total += c.mask.memoryUsage()
	}
	return total
}
