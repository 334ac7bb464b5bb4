package optimize

import (
	"fmt"

	"github.com/Vlee98p/Group-32/pkg/table"
)

// Categorize converts a string column to a dictionary-encoded
// categorical column when its distinct/rows ratio is at or below
// opts.MaxUniqueRatio. The boundary is inclusive: a ratio exactly equal
// to the threshold converts. Missing values are not counted as distinct
// strings. Non-string columns are a no-op, never an error.
func Categorize(name string, col table.Column, opts Options) (table.Column, Decision) {
	d := Decision{
		Column:      name,
		OldType:     col.DataType().String(),
		NewType:     col.DataType().String(),
		Threshold:   opts.MaxUniqueRatio,
		BytesBefore: col.MemoryUsage(),
		BytesAfter:  col.MemoryUsage(),
	}

	sc, ok := col.(*table.StringColumn)
	if !ok {
		d.Action = ActionUnchanged
		d.Reason = "not text/object"
		d.Threshold = 0
		return col, d
	}
	d.Nullable = sc.Nullable()

	rows := sc.Len()
	if rows == 0 {
		d.Action = ActionUnchanged
		d.Reason = "empty column"
		return col, d
	}

	// Ratio is exactly distinct/rows, no special cases.
	ratio := float64(distinctStrings(sc)) / float64(rows)
	d.UniqueRatio = ratio

	if ratio > opts.MaxUniqueRatio {
		d.Action = ActionUnchanged
		d.Reason = fmt.Sprintf("unique ratio %.4f above threshold %.4f", ratio, opts.MaxUniqueRatio)
		return col, d
	}

	values := make([]string, rows)
	for i := 0; i < rows; i++ {
		values[i], _ = sc.String(i)
	}
	converted, err := table.NewCategoricalColumn(values, validityOf(sc))
	if err != nil {
		d.Action = ActionUnchanged
		d.Reason = fmt.Sprintf("conversion failed: %v", err)
		return col, d
	}

	d.Action = ActionCategorize
	d.NewType = table.Categorical.String()
	d.BytesAfter = converted.MemoryUsage()
	d.Reason = fmt.Sprintf("unique ratio %.4f within threshold %.4f", ratio, opts.MaxUniqueRatio)
	return converted, d
}

// distinctStrings counts distinct non-missing values.
func distinctStrings(col *table.StringColumn) int {
	seen := make(map[string]struct{})
	for i := 0; i < col.Len(); i++ {
		if v, ok := col.String(i); ok {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
