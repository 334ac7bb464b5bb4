package table

import "math"

// Kind is the broad category of a column's data type.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindFloat
	KindString
	KindCategorical
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// DataType describes a column's declared storage type: a kind plus a
// bit-width for numeric kinds. String columns have width 0; categorical
// columns report the 32-bit width of their dictionary codes.
type DataType struct {
	Kind  Kind
	Width int
}

// Supported data types.
var (
	Int8    = DataType{KindInt, 8}
	Int16   = DataType{KindInt, 16}
	Int32   = DataType{KindInt, 32}
	Int64   = DataType{KindInt, 64}
	Uint8   = DataType{KindUint, 8}
	Uint16  = DataType{KindUint, 16}
	Uint32  = DataType{KindUint, 32}
	Uint64  = DataType{KindUint, 64}
	Float32 = DataType{KindFloat, 32}
	Float64 = DataType{KindFloat, 64}
	String  = DataType{KindString, 0}

	// Categorical is dictionary-encoded: uint32 codes into a string
	// dictionary. The dictionary itself is accounted separately.
	Categorical = DataType{KindCategorical, 32}
)

// String returns the type name, e.g. "int8", "uint32", "float64".
func (t DataType) String() string {
	switch t {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case String:
		return "string"
	case Categorical:
		return "categorical"
	default:
		return "invalid"
	}
}

// IsNumeric reports whether t is an integer or floating-point type.
func (t DataType) IsNumeric() bool {
	return t.Kind == KindInt || t.Kind == KindUint || t.Kind == KindFloat
}

// ContainsRange reports whether every integer in [min, max] is
// representable by t. It returns false for non-integer types.
func (t DataType) ContainsRange(min, max int64) bool {
	switch t {
	case Int8:
		return min >= math.MinInt8 && max <= math.MaxInt8
	case Int16:
		return min >= math.MinInt16 && max <= math.MaxInt16
	case Int32:
		return min >= math.MinInt32 && max <= math.MaxInt32
	case Int64:
		return true
	case Uint8:
		return min >= 0 && max <= math.MaxUint8
	case Uint16:
		return min >= 0 && max <= math.MaxUint16
	case Uint32:
		return min >= 0 && max <= math.MaxUint32
	case Uint64:
		return min >= 0
	default:
		return false
	}
}

// Column is the read interface shared by all column implementations.
// Implementations are immutable after construction.
type Column interface {
	DataType() DataType
	Len() int
	// IsNull reports whether the value at row i is missing.
	IsNull(i int) bool
	// Value returns the decoded value at row i (int64, float64 or
	// string depending on the column kind), or nil when missing.
	Value(i int) interface{}
	// Nullable reports whether the column carries a validity mask.
	Nullable() bool
	// MemoryUsage returns the estimated heap footprint in bytes.
	MemoryUsage() int64
}
