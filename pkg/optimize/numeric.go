package optimize

import (
	"fmt"
	"math"

	"github.com/Vlee98p/Group-32/pkg/table"
)

// Candidate widths in ascending order; first fit wins. Unsigned is
// preferred when the column minimum is non-negative.
var (
	unsignedCandidates = []table.DataType{table.Uint8, table.Uint16, table.Uint32, table.Uint64}
	signedCandidates   = []table.DataType{table.Int8, table.Int16, table.Int32, table.Int64}
)

// NarrowNumeric returns the narrowest lossless representation of a
// numeric column, or the column untouched with a reason when no narrower
// representation qualifies. Integer narrowing is exact; float narrowing
// (float64 to float32) requires every value to round-trip within
// opts.FloatTolerance. Non-numeric columns are a no-op, never an error.
func NarrowNumeric(name string, col table.Column, opts Options) (table.Column, Decision) {
	d := Decision{
		Column:      name,
		OldType:     col.DataType().String(),
		NewType:     col.DataType().String(),
		BytesBefore: col.MemoryUsage(),
		BytesAfter:  col.MemoryUsage(),
	}

	switch c := col.(type) {
	case *table.IntColumn:
		return narrowInt(c, d)
	case *table.FloatColumn:
		return narrowFloat(c, d, opts.FloatTolerance)
	default:
		d.Action = ActionUnchanged
		d.Reason = "not numeric"
		return col, d
	}
}

func narrowInt(col *table.IntColumn, d Decision) (table.Column, Decision) {
	d.Nullable = col.Nullable()

	if col.Len() == 0 {
		d.Action = ActionUnchanged
		d.Reason = "empty column"
		return col, d
	}

	min, max, ok := col.MinMax()
	if !ok {
		d.Action = ActionUnchanged
		d.Reason = "all values missing"
		return col, d
	}

	candidates := signedCandidates
	if min >= 0 {
		candidates = unsignedCandidates
	}

	var target table.DataType
	for _, dt := range candidates {
		if dt.ContainsRange(min, max) {
			target = dt
			break
		}
	}

	if target.Width >= col.DataType().Width {
		d.Action = ActionUnchanged
		d.Reason = fmt.Sprintf("already at smallest width for range [%d, %d]", min, max)
		return col, d
	}

	values := make([]int64, col.Len())
	valid := validityOf(col)
	for i := range values {
		values[i], _ = col.Int64(i)
	}

	narrowed, err := table.NewIntColumn(target, values, valid)
	if err != nil {
		// Range selection guarantees fit; a failure here is a bug, and
		// the contract is to leave the column alone rather than panic.
		d.Action = ActionUnchanged
		d.Reason = fmt.Sprintf("narrowing failed: %v", err)
		return col, d
	}

	d.Action = ActionDowncastInt
	d.NewType = target.String()
	d.BytesAfter = narrowed.MemoryUsage()
	d.Reason = fmt.Sprintf("range [%d, %d] fits %s", min, max, target)
	if d.Nullable {
		d.Reason += "; missing values preserved via validity bitmap"
	}
	return narrowed, d
}

func narrowFloat(col *table.FloatColumn, d Decision, tol float64) (table.Column, Decision) {
	d.Nullable = col.Nullable()

	if col.DataType() == table.Float32 {
		d.Action = ActionUnchanged
		d.Reason = "already at smallest float width"
		return col, d
	}
	if col.Len() == 0 {
		d.Action = ActionUnchanged
		d.Reason = "empty column"
		return col, d
	}

	values := make([]float64, col.Len())
	valid := validityOf(col)
	for i := range values {
		v, ok := col.Float64(i)
		if !ok {
			continue
		}
		values[i] = v

		narrowed := float64(float32(v))
		if narrowed == v || (math.IsNaN(v) && math.IsNaN(narrowed)) {
			// Exact round-trips, including infinities.
			continue
		}
		diff := math.Abs(narrowed - v)
		if !(diff <= tol*math.Max(1, math.Abs(v))) {
			// One failing value vetoes the whole column; partial
			// narrowing would change row semantics mid-column.
			d.Action = ActionUnchanged
			d.Reason = fmt.Sprintf("value %v at row %d exceeds float32 tolerance %v", v, i, tol)
			return col, d
		}
	}

	narrowed, err := table.NewFloatColumn(table.Float32, values, valid)
	if err != nil {
		d.Action = ActionUnchanged
		d.Reason = fmt.Sprintf("narrowing failed: %v", err)
		return col, d
	}

	d.Action = ActionDowncastFloat
	d.NewType = table.Float32.String()
	d.BytesAfter = narrowed.MemoryUsage()
	d.Reason = fmt.Sprintf("all values round-trip within relative tolerance %v", tol)
	if d.Nullable {
		d.Reason += "; missing values preserved via validity bitmap"
	}
	return narrowed, d
}

// validityOf rebuilds a column's validity slice, or nil when the column
// has no missing values.
func validityOf(col table.Column) []bool {
	hasNull := false
	valid := make([]bool, col.Len())
	for i := range valid {
		valid[i] = !col.IsNull(i)
		if !valid[i] {
			hasNull = true
		}
	}
	if !hasNull {
		return nil
	}
	return valid
}
