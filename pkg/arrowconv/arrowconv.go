// Package arrowconv converts between the internal table model and Apache
// Arrow records. It is the boundary adapter that keeps the optimizer core
// decoupled from the host table library: callers holding Arrow data
// convert at the edge, optimize, and convert back.
package arrowconv

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/Vlee98p/Group-32/pkg/table"
)

// FromArrow converts an Arrow record into a table. Supported field types
// are the integer widths, float32/64, strings and string dictionaries;
// nulls become missing values.
func FromArrow(rec arrow.Record) (*table.Table, error) {
	if rec == nil {
		return nil, fmt.Errorf("record is nil")
	}

	t := table.New()
	for i, field := range rec.Schema().Fields() {
		col, err := fromArrowColumn(rec.Column(i))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}
		if err := t.AddColumn(field.Name, col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func fromArrowColumn(arr arrow.Array) (table.Column, error) {
	switch a := arr.(type) {
	case *array.Int8:
		return intColumn(table.Int8, arr, func(i int) int64 { return int64(a.Value(i)) })
	case *array.Int16:
		return intColumn(table.Int16, arr, func(i int) int64 { return int64(a.Value(i)) })
	case *array.Int32:
		return intColumn(table.Int32, arr, func(i int) int64 { return int64(a.Value(i)) })
	case *array.Int64:
		return intColumn(table.Int64, arr, a.Value)
	case *array.Uint8:
		return intColumn(table.Uint8, arr, func(i int) int64 { return int64(a.Value(i)) })
	case *array.Uint16:
		return intColumn(table.Uint16, arr, func(i int) int64 { return int64(a.Value(i)) })
	case *array.Uint32:
		return intColumn(table.Uint32, arr, func(i int) int64 { return int64(a.Value(i)) })
	case *array.Uint64:
		return intColumn(table.Uint64, arr, func(i int) int64 { return int64(a.Value(i)) })
	case *array.Float32:
		return floatColumn(table.Float32, arr, func(i int) float64 { return float64(a.Value(i)) })
	case *array.Float64:
		return floatColumn(table.Float64, arr, a.Value)
	case *array.String:
		values := make([]string, a.Len())
		for i := range values {
			if a.IsValid(i) {
				values[i] = a.Value(i)
			}
		}
		return table.NewStringColumn(values, validSlice(arr))
	case *array.Dictionary:
		dict, ok := a.Dictionary().(*array.String)
		if !ok {
			return nil, fmt.Errorf("unsupported dictionary value type %s", a.Dictionary().DataType())
		}
		values := make([]string, a.Len())
		for i := range values {
			if a.IsValid(i) {
				values[i] = dict.Value(a.GetValueIndex(i))
			}
		}
		return table.NewCategoricalColumn(values, validSlice(arr))
	default:
		return nil, fmt.Errorf("unsupported arrow type %s", arr.DataType())
	}
}

func intColumn(dtype table.DataType, arr arrow.Array, value func(int) int64) (table.Column, error) {
	values := make([]int64, arr.Len())
	for i := range values {
		if arr.IsValid(i) {
			values[i] = value(i)
		}
	}
	return table.NewIntColumn(dtype, values, validSlice(arr))
}

func floatColumn(dtype table.DataType, arr arrow.Array, value func(int) float64) (table.Column, error) {
	values := make([]float64, arr.Len())
	for i := range values {
		if arr.IsValid(i) {
			values[i] = value(i)
		}
	}
	return table.NewFloatColumn(dtype, values, validSlice(arr))
}

// validSlice returns a validity slice for arr, or nil when it has no nulls.
func validSlice(arr arrow.Array) []bool {
	if arr.NullN() == 0 {
		return nil
	}
	valid := make([]bool, arr.Len())
	for i := range valid {
		valid[i] = arr.IsValid(i)
	}
	return valid
}

// ToArrow converts a table to an Arrow record. Categorical columns become
// uint32-indexed string dictionaries, so dictionary encoding survives the
// round trip. The caller owns the returned record and must Release it.
func ToArrow(mem memory.Allocator, t *table.Table) (arrow.Record, error) {
	if t == nil {
		return nil, fmt.Errorf("table is nil")
	}

	fields := make([]arrow.Field, 0, t.NumCols())
	for _, name := range t.Names() {
		col, _ := t.Column(name)
		at, err := arrowType(col.DataType())
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		fields = append(fields, arrow.Field{Name: name, Type: at, Nullable: col.Nullable()})
	}
	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()

	for i, name := range t.Names() {
		col, _ := t.Column(name)
		if err := appendColumn(builder.Field(i), col); err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
	}

	return builder.NewRecord(), nil
}

func arrowType(dtype table.DataType) (arrow.DataType, error) {
	switch dtype {
	case table.Int8:
		return arrow.PrimitiveTypes.Int8, nil
	case table.Int16:
		return arrow.PrimitiveTypes.Int16, nil
	case table.Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case table.Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case table.Uint8:
		return arrow.PrimitiveTypes.Uint8, nil
	case table.Uint16:
		return arrow.PrimitiveTypes.Uint16, nil
	case table.Uint32:
		return arrow.PrimitiveTypes.Uint32, nil
	case table.Uint64:
		return arrow.PrimitiveTypes.Uint64, nil
	case table.Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case table.Float64:
		return arrow.PrimitiveTypes.Float64, nil
	case table.String:
		return arrow.BinaryTypes.String, nil
	case table.Categorical:
		return &arrow.DictionaryType{
			IndexType: arrow.PrimitiveTypes.Uint32,
			ValueType: arrow.BinaryTypes.String,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported data type %s", dtype)
	}
}

func appendColumn(b array.Builder, col table.Column) error {
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			b.AppendNull()
			continue
		}
		if err := appendValue(b, col, i); err != nil {
			return err
		}
	}
	return nil
}

func appendValue(b array.Builder, col table.Column, i int) error {
	switch c := col.(type) {
	case *table.IntColumn:
		v, _ := c.Int64(i)
		switch ib := b.(type) {
		case *array.Int8Builder:
			ib.Append(int8(v))
		case *array.Int16Builder:
			ib.Append(int16(v))
		case *array.Int32Builder:
			ib.Append(int32(v))
		case *array.Int64Builder:
			ib.Append(v)
		case *array.Uint8Builder:
			ib.Append(uint8(v))
		case *array.Uint16Builder:
			ib.Append(uint16(v))
		case *array.Uint32Builder:
			ib.Append(uint32(v))
		case *array.Uint64Builder:
			ib.Append(uint64(v))
		default:
			return fmt.Errorf("unexpected builder %T for %s", b, c.DataType())
		}
	case *table.FloatColumn:
		v, _ := c.Float64(i)
		switch fb := b.(type) {
		case *array.Float32Builder:
			fb.Append(float32(v))
		case *array.Float64Builder:
			fb.Append(v)
		default:
			return fmt.Errorf("unexpected builder %T for %s", b, c.DataType())
		}
	case *table.StringColumn:
		v, _ := c.String(i)
		sb, ok := b.(*array.StringBuilder)
		if !ok {
			return fmt.Errorf("unexpected builder %T for string column", b)
		}
		sb.Append(v)
	case *table.CategoricalColumn:
		v, _ := c.String(i)
		db, ok := b.(*array.BinaryDictionaryBuilder)
		if !ok {
			return fmt.Errorf("unexpected builder %T for categorical column", b)
		}
		if err := db.AppendString(v); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported column type %T", col)
	}
	return nil
}
