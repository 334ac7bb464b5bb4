package optimize

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/Vlee98p/Group-32/pkg/table"
)

// Flag names a special-column heuristic.
type Flag string

const (
	// FlagIdentifier marks high-cardinality identifier columns.
	FlagIdentifier Flag = "identifier"
	// FlagCoordinate marks precision-sensitive geographic coordinates.
	FlagCoordinate Flag = "coordinate"
	// FlagFreeText marks high-cardinality free-text columns.
	FlagFreeText Flag = "free-text"
)

// Finding is the outcome of a special-column heuristic for one column.
type Finding struct {
	Flag        Flag
	Reason      string
	UniqueRatio float64
}

// heuristic is a named predicate over (column name, values, statistics).
// Heuristics run in order; the first match wins.
type heuristic struct {
	name  string
	apply func(name string, col table.Column, opts Options) (Finding, bool)
}

var heuristics = []heuristic{
	{"identifier", detectIdentifier},
	{"coordinate", detectCoordinate},
	{"free-text", detectFreeText},
}

// Name patterns follow common column naming conventions.
var (
	idNamePattern  = regexp.MustCompile(`(?i)(^|[_-])(id|uuid|guid|key)s?([_-]|$)`)
	latNamePattern = regexp.MustCompile(`(?i)(^|[_-])(lat|latitude)([_-]|$)`)
	lonNamePattern = regexp.MustCompile(`(?i)(^|[_-])(lon|lng|long|longitude)([_-]|$)`)
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
)

// Geographic coordinate bounds.
const (
	latBound = 90
	lonBound = 180
)

// ClassifySpecial runs every heuristic over every column and returns the
// findings keyed by column name. It never mutates the table; callers use
// the result as a skip-set so flagged columns bypass the transforms.
func ClassifySpecial(t *table.Table, opts Options) map[string]Finding {
	findings := make(map[string]Finding)
	for _, name := range t.Names() {
		col, _ := t.Column(name)
		for _, h := range heuristics {
			if f, ok := h.apply(name, col, opts); ok {
				findings[name] = f
				break
			}
		}
	}
	return findings
}

// detectIdentifier flags columns whose distinct ratio exceeds the
// identifier threshold and whose name or value shape marks them as keys:
// UUID-shaped strings, integers-as-strings, strictly increasing
// all-distinct integers, or an id-conventional name.
func detectIdentifier(name string, col table.Column, opts Options) (Finding, bool) {
	rows := col.Len()
	if rows == 0 {
		return Finding{}, false
	}

	switch c := col.(type) {
	case *table.StringColumn:
		ratio := float64(distinctStrings(c)) / float64(rows)
		if ratio <= opts.IdentifierRatio {
			return Finding{}, false
		}
		shape, ok := stringIdentifierShape(c)
		if !ok && !idNamePattern.MatchString(name) {
			return Finding{}, false
		}
		if !ok {
			shape = "id-conventional name"
		}
		return Finding{
			Flag:        FlagIdentifier,
			Reason:      "identifier (" + shape + "), left unchanged",
			UniqueRatio: ratio,
		}, true

	case *table.IntColumn:
		distinct, increasing := intDistinctIncreasing(c)
		ratio := float64(distinct) / float64(rows)
		if ratio <= opts.IdentifierRatio {
			return Finding{}, false
		}
		if !increasing && !idNamePattern.MatchString(name) {
			return Finding{}, false
		}
		shape := "monotonically increasing unique integers"
		if !increasing {
			shape = "id-conventional name"
		}
		return Finding{
			Flag:        FlagIdentifier,
			Reason:      "identifier (" + shape + "), left unchanged",
			UniqueRatio: ratio,
		}, true
	}

	return Finding{}, false
}

// stringIdentifierShape reports whether every non-missing value is
// UUID-shaped or an integer-as-string.
func stringIdentifierShape(col *table.StringColumn) (string, bool) {
	allUUID, allDigits, seen := true, true, false
	for i := 0; i < col.Len(); i++ {
		v, ok := col.String(i)
		if !ok {
			continue
		}
		seen = true
		if allUUID {
			if _, err := uuid.Parse(v); err != nil {
				allUUID = false
			}
		}
		if allDigits && !digitsPattern.MatchString(v) {
			allDigits = false
		}
		if !allUUID && !allDigits {
			return "", false
		}
	}
	if !seen {
		return "", false
	}
	if allUUID {
		return "uuid-shaped values", true
	}
	return "sequential integers as strings", true
}

// intDistinctIncreasing counts distinct non-missing values and reports
// whether they are strictly increasing in row order.
func intDistinctIncreasing(col *table.IntColumn) (distinct int, increasing bool) {
	seen := make(map[int64]struct{})
	increasing = true
	var prev int64
	first := true
	for i := 0; i < col.Len(); i++ {
		v, ok := col.Int64(i)
		if !ok {
			continue
		}
		seen[v] = struct{}{}
		if !first && v <= prev {
			increasing = false
		}
		prev = v
		first = false
	}
	if first {
		increasing = false
	}
	return len(seen), increasing
}

// detectCoordinate flags numeric columns whose name follows coordinate
// conventions and whose values stay within geographic bounds. Flagged
// columns are never narrowed: float32 rounding on coordinates is exactly
// the precision loss the tolerance check exists to prevent, so the
// decision is made before narrowing runs.
func detectCoordinate(name string, col table.Column, _ Options) (Finding, bool) {
	if !col.DataType().IsNumeric() {
		return Finding{}, false
	}

	var bound float64
	switch {
	case latNamePattern.MatchString(name):
		bound = latBound
	case lonNamePattern.MatchString(name):
		bound = lonBound
	default:
		return Finding{}, false
	}

	for i := 0; i < col.Len(); i++ {
		v, ok := numericAt(col, i)
		if !ok {
			continue
		}
		if v < -bound || v > bound {
			return Finding{}, false
		}
	}

	return Finding{
		Flag:   FlagCoordinate,
		Reason: "coordinate, precision-sensitive, left unchanged",
	}, true
}

// detectFreeText flags string columns too distinct to categorize whose
// values are long enough to look like names, addresses or prose.
// Identifier detection runs first, so id-shaped columns never reach it.
func detectFreeText(_ string, col table.Column, opts Options) (Finding, bool) {
	c, ok := col.(*table.StringColumn)
	if !ok || c.Len() == 0 {
		return Finding{}, false
	}

	ratio := float64(distinctStrings(c)) / float64(c.Len())
	if ratio <= opts.MaxUniqueRatio {
		return Finding{}, false
	}
	if avgStringLen(c) <= opts.FreeTextMinAvgLen {
		return Finding{}, false
	}

	return Finding{
		Flag:        FlagFreeText,
		Reason:      "free text, high cardinality, left unchanged",
		UniqueRatio: ratio,
	}, true
}

// avgStringLen averages the character length of non-missing values.
func avgStringLen(col *table.StringColumn) float64 {
	total, count := 0, 0
	for i := 0; i < col.Len(); i++ {
		if v, ok := col.String(i); ok {
			total += len(v)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// numericAt reads row i of an integer or float column as float64.
func numericAt(col table.Column, i int) (float64, bool) {
	switch c := col.(type) {
	case *table.IntColumn:
		v, ok := c.Int64(i)
		return float64(v), ok
	case *table.FloatColumn:
		return c.Float64(i)
	default:
		return 0, false
	}
}
