package table

import (
	"encoding/binary"
	"fmt"
	"math"
)

// IntColumn stores integer values at the column's declared width. Values
// are encoded little-endian at Width/8 bytes per row; signed widths use
// two's complement. The logical value type is always int64.
type IntColumn struct {
	dtype DataType
	data  []byte
	mask  *validity
}

// NewIntColumn builds an integer column of the given type. Every valid
// value must be representable at the declared width; valid marks rows
// that hold a value (nil means all rows are valid).
func NewIntColumn(dtype DataType, values []int64, valid []bool) (*IntColumn, error) {
	if dtype.Kind != KindInt && dtype.Kind != KindUint {
		return nil, fmt.Errorf("expected integer type, got %s", dtype)
	}
	if valid != nil && len(valid) != len(values) {
		return nil, fmt.Errorf("validity length %d does not match %d values", len(valid), len(values))
	}

	stride := dtype.Width / 8
	c := &IntColumn{
		dtype: dtype,
		data:  make([]byte, len(values)*stride),
		mask:  maskFor(valid),
	}
	for i, v := range values {
		if valid != nil && !valid[i] {
			continue
		}
		if !dtype.ContainsRange(v, v) {
			return nil, fmt.Errorf("value %d at row %d does not fit %s", v, i, dtype)
		}
		c.put(i, v)
	}
	return c, nil
}

func (c *IntColumn) put(i int, v int64) {
	off := i * (c.dtype.Width / 8)
	switch c.dtype.Width {
	case 8:
		c.data[off] = byte(v)
	case 16:
		binary.LittleEndian.PutUint16(c.data[off:], uint16(v))
	case 32:
		binary.LittleEndian.PutUint32(c.data[off:], uint32(v))
	default:
		binary.LittleEndian.PutUint64(c.data[off:], uint64(v))
	}
}

// DataType returns the column's declared type.
func (c *IntColumn) DataType() DataType { return c.dtype }

// Len returns the row count.
func (c *IntColumn) Len() int { return len(c.data) / (c.dtype.Width / 8) }

// IsNull reports whether row i is missing.
func (c *IntColumn) IsNull(i int) bool { return c.mask != nil && !c.mask.get(i) }

// Int64 returns the value at row i; ok is false for missing rows.
func (c *IntColumn) Int64(i int) (v int64, ok bool) {
	if c.IsNull(i) {
		return 0, false
	}
	off := i * (c.dtype.Width / 8)
	if c.dtype.Kind == KindUint {
		switch c.dtype.Width {
		case 8:
			return int64(c.data[off]), true
		case 16:
			return int64(binary.LittleEndian.Uint16(c.data[off:])), true
		case 32:
			return int64(binary.LittleEndian.Uint32(c.data[off:])), true
		default:
			return int64(binary.LittleEndian.Uint64(c.data[off:])), true
		}
	}
	switch c.dtype.Width {
	case 8:
		return int64(int8(c.data[off])), true
	case 16:
		return int64(int16(binary.LittleEndian.Uint16(c.data[off:]))), true
	case 32:
		return int64(int32(binary.LittleEndian.Uint32(c.data[off:]))), true
	default:
		return int64(binary.LittleEndian.Uint64(c.data[off:])), true
	}
}

// Value returns the value at row i as an int64, or nil when missing.
func (c *IntColumn) Value(i int) interface{} {
	v, ok := c.Int64(i)
	if !ok {
		return nil
	}
	return v
}

// Nullable reports whether the column carries a validity mask.
func (c *IntColumn) Nullable() bool { return c.mask != nil }

// MemoryUsage returns the estimated heap footprint in bytes.
func (c *IntColumn) MemoryUsage() int64 {
	total := int64(len(c.data))
	if c.mask != nil {
		total += c.mask.memoryUsage()
	}
	return total
}

// MinMax returns the smallest and largest valid values. ok is false when
// the column has no valid values.
func (c *IntColumn) MinMax() (min, max int64, ok bool) {
	for i := 0; i < c.Len(); i++ {
		v, valid := c.Int64(i)
		if !valid {
			continue
		}
		if !ok {
			min, max, ok = v, v, true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}

// FloatColumn stores floating-point values at the column's declared
// width (float32 or float64), encoded as IEEE 754 bits little-endian.
type FloatColumn struct {
	dtype DataType
	data  []byte
	mask  *validity
}

// NewFloatColumn builds a float column of the given type. For Float32 the
// caller is responsible for having decided that float32 precision is
// acceptable; values are rounded to the nearest float32.
func NewFloatColumn(dtype DataType, values []float64, valid []bool) (*FloatColumn, error) {
	if dtype != Float32 && dtype != Float64 {
		return nil, fmt.Errorf("expected float type, got %s", dtype)
	}
	if valid != nil && len(valid) != len(values) {
		return nil, fmt.Errorf("validity length %d does not match %d values", len(valid), len(values))
	}

	stride := dtype.Width / 8
	c := &FloatColumn{
		dtype: dtype,
		data:  make([]byte, len(values)*stride),
		mask:  maskFor(valid),
	}
	for i, v := range values {
		if valid != nil && !valid[i] {
			continue
		}
		off := i * stride
		if dtype == Float32 {
			binary.LittleEndian.PutUint32(c.data[off:], math.Float32bits(float32(v)))
		} else {
			binary.LittleEndian.PutUint64(c.data[off:], math.Float64bits(v))
		}
	}
	return c, nil
}

// DataType returns the column's declared type.
func (c *FloatColumn) DataType() DataType { return c.dtype }

// Len returns the row count.
func (c *FloatColumn) Len() int { return len(c.data) / (c.dtype.Width / 8) }

// IsNull reports whether row i is missing.
func (c *FloatColumn) IsNull(i int) bool { return c.mask != nil && !c.mask.get(i) }

// Float64 returns the value at row i; ok is false for missing rows.
// Float32 storage is widened back to float64 on read.
func (c *FloatColumn) Float64(i int) (v float64, ok bool) {
	if c.IsNull(i) {
		return 0, false
	}
	off := i * (c.dtype.Width / 8)
	if c.dtype == Float32 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(c.data[off:]))), true
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(c.data[off:])), true
}

// Value returns the value at row i as a float64, or nil when missing.
func (c *FloatColumn) Value(i int) interface{} {
	v, ok := c.Float64(i)
	if !ok {
		return nil
	}
	return v
}

// Nullable reports whether the column carries a validity mask.
func (c *FloatColumn) Nullable() bool { return c.mask != nil }

// MemoryUsage returns the estimated heap footprint in bytes.
func (c *FloatColumn) MemoryUsage() int64 {
	total := int64(len(c.data))
	if c.mask != nil {
		total += c.mask.memoryUsage()
	}
	return total
}
