package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeContainsRange(t *testing.T) {
	tests := []struct {
		name     string
		dtype    DataType
		min, max int64
		want     bool
	}{
		{"int8 fits", Int8, -128, 127, true},
		{"int8 overflow", Int8, -129, 0, false},
		{"uint8 fits", Uint8, 0, 255, true},
		{"uint8 negative", Uint8, -1, 10, false},
		{"uint8 overflow", Uint8, 0, 256, false},
		{"int16 fits", Int16, -32768, 32767, true},
		{"uint32 fits", Uint32, 0, math.MaxUint32, true},
		{"int64 always fits", Int64, math.MinInt64, math.MaxInt64, true},
		{"uint64 non-negative", Uint64, 0, math.MaxInt64, true},
		{"float not a range", Float64, 0, 1, false},
		{"string not a range", String, 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dtype.ContainsRange(tt.min, tt.max))
		})
	}
}

func TestIntColumnRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		dtype  DataType
		values []int64
	}{
		{"int8", Int8, []int64{-128, -1, 0, 1, 127}},
		{"int16", Int16, []int64{-32768, 0, 32767}},
		{"int32", Int32, []int64{math.MinInt32, 0, math.MaxInt32}},
		{"int64", Int64, []int64{math.MinInt64, 0, math.MaxInt64}},
		{"uint8", Uint8, []int64{0, 1, 255}},
		{"uint16", Uint16, []int64{0, 65535}},
		{"uint32", Uint32, []int64{0, math.MaxUint32}},
		{"uint64", Uint64, []int64{0, math.MaxInt64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := NewIntColumn(tt.dtype, tt.values, nil)
			require.NoError(t, err)
			require.Equal(t, len(tt.values), col.Len())

			for i, want := range tt.values {
				got, ok := col.Int64(i)
				assert.True(t, ok)
				assert.Equal(t, want, got, "row %d", i)
			}
		})
	}
}

func TestIntColumnRejectsOutOfRange(t *testing.T) {
	_, err := NewIntColumn(Int8, []int64{200}, nil)
	assert.Error(t, err)

	_, err = NewIntColumn(Uint16, []int64{-1}, nil)
	assert.Error(t, err)

	_, err = NewIntColumn(Float64, []int64{1}, nil)
	assert.Error(t, err)
}

func TestIntColumnNulls(t *testing.T) {
	col, err := NewIntColumn(Int16, []int64{10, 0, 30}, []bool{true, false, true})
	require.NoError(t, err)

	assert.True(t, col.Nullable())
	assert.False(t, col.IsNull(0))
	assert.True(t, col.IsNull(1))

	_, ok := col.Int64(1)
	assert.False(t, ok)
	assert.Nil(t, col.Value(1))

	v, ok := col.Int64(2)
	assert.True(t, ok)
	assert.Equal(t, int64(30), v)

	min, max, ok := col.MinMax()
	assert.True(t, ok)
	assert.Equal(t, int64(10), min)
	assert.Equal(t, int64(30), max)
}

func TestIntColumnMinMaxAllMissing(t *testing.T) {
	col, err := NewIntColumn(Int64, []int64{0, 0}, []bool{false, false})
	require.NoError(t, err)

	_, _, ok := col.MinMax()
	assert.False(t, ok)
}

func TestFloatColumnRoundTrip(t *testing.T) {
	values := []float64{10.5, -0.25, 1e10, math.Inf(1)}

	f64, err := NewFloatColumn(Float64, values, nil)
	require.NoError(t, err)
	for i, want := range values {
		got, ok := f64.Float64(i)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	f32, err := NewFloatColumn(Float32, values, nil)
	require.NoError(t, err)
	for i, want := range values {
		got, ok := f32.Float64(i)
		assert.True(t, ok)
		assert.Equal(t, float64(float32(want)), got)
	}
}

func TestStringColumnNulls(t *testing.T) {
	col, err := NewStringColumn([]string{"a", "", "c"}, []bool{true, false, true})
	require.NoError(t, err)

	v, ok := col.String(0)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = col.String(1)
	assert.False(t, ok)
	assert.Nil(t, col.Value(1))
}

func TestCategoricalColumnRoundTrip(t *testing.T) {
	values := []string{"US", "CA", "US", "US", "MX"}
	col, err := NewCategoricalColumn(values, nil)
	require.NoError(t, err)

	for i, want := range values {
		got, ok := col.String(i)
		assert.True(t, ok)
		assert.Equal(t, want, got, "row %d", i)
	}

	// Dictionary is ordered by first appearance.
	assert.Equal(t, []string{"US", "CA", "MX"}, col.Categories())

	code, ok := col.Code(2)
	assert.True(t, ok)
	assert.Equal(t, uint32(0), code)
}

func TestCategoricalColumnMissingNotInDictionary(t *testing.T) {
	col, err := NewCategoricalColumn([]string{"x", "ignored", "y"}, []bool{true, false, true})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, col.Categories())
	assert.True(t, col.IsNull(1))
}

func TestMemoryUsageShrinksWithWidth(t *testing.T) {
	values := []int64{1, 2, 3, 4}

	wide, err := NewIntColumn(Int64, values, nil)
	require.NoError(t, err)
	narrow, err := NewIntColumn(Uint8, values, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(32), wide.MemoryUsage())
	assert.Equal(t, int64(4), narrow.MemoryUsage())
}

func TestTableAddColumn(t *testing.T) {
	tbl := New()

	c1, err := NewIntColumn(Int64, []int64{1, 2, 3}, nil)
	require.NoError(t, err)
	require.NoError(t, tbl.AddColumn("a", c1))

	// Duplicate name rejected.
	assert.Error(t, tbl.AddColumn("a", c1))

	// Row count mismatch rejected.
	short, err := NewIntColumn(Int64, []int64{1}, nil)
	require.NoError(t, err)
	assert.Error(t, tbl.AddColumn("b", short))

	c2, err := NewStringColumn([]string{"x", "y", "z"}, nil)
	require.NoError(t, err)
	require.NoError(t, tbl.AddColumn("b", c2))

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, []string{"a", "b"}, tbl.Names())
}

func TestTableColumnOrderPreserved(t *testing.T) {
	tbl := New()
	names := []string{"z", "a", "m", "b"}
	for _, name := range names {
		col, err := NewIntColumn(Int64, []int64{1}, nil)
		require.NoError(t, err)
		require.NoError(t, tbl.AddColumn(name, col))
	}
	assert.Equal(t, names, tbl.Names())
}
