package optimize

import (
	gojson "github.com/goccy/go-json"
)

// Action identifies what the optimizer did with a column.
type Action string

const (
	// ActionDowncastInt means the integer column was narrowed.
	ActionDowncastInt Action = "downcast-int"
	// ActionDowncastFloat means the float column was narrowed to float32.
	ActionDowncastFloat Action = "downcast-float"
	// ActionCategorize means the string column was dictionary-encoded.
	ActionCategorize Action = "categorize"
	// ActionFlagged means a heuristic flagged the column and it was
	// deliberately left untouched.
	ActionFlagged Action = "left-unchanged-flagged"
	// ActionUnchanged means no transform applied and no flag was raised.
	ActionUnchanged Action = "left-unchanged-unflagged"
)

// Decision records what happened to a single column.
type Decision struct {
	Column  string `json:"column"`
	Action  Action `json:"action"`
	Reason  string `json:"reason"`
	OldType string `json:"old_type"`
	NewType string `json:"new_type"`

	// Nullable is true when the column carries missing values; narrowed
	// columns keep them representable via their validity bitmap.
	Nullable bool `json:"nullable,omitempty"`

	// UniqueRatio and Threshold are set for categorical decisions and
	// for heuristics that computed a distinct ratio.
	UniqueRatio float64 `json:"unique_ratio,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`

	// Flag names the heuristic that vetoed optimization, when any.
	Flag string `json:"flag,omitempty"`

	BytesBefore int64 `json:"bytes_before"`
	BytesAfter  int64 `json:"bytes_after"`
}

// Report holds one decision per column, in table column order, plus
// whole-table memory accounting.
type Report struct {
	Columns     []Decision `json:"columns"`
	BytesBefore int64      `json:"bytes_before"`
	BytesAfter  int64      `json:"bytes_after"`
	SavingsPct  float64    `json:"savings_pct"`

	byName map[string]int
}

// Decision returns the decision for the named column.
func (r *Report) Decision(column string) (Decision, bool) {
	i, ok := r.byName[column]
	if !ok {
		return Decision{}, false
	}
	return r.Columns[i], true
}

func (r *Report) add(d Decision) {
	if r.byName == nil {
		r.byName = make(map[string]int)
	}
	r.byName[d.Column] = len(r.Columns)
	r.Columns = append(r.Columns, d)
}

func (r *Report) finalize() {
	for _, d := range r.Columns {
		r.BytesBefore += d.BytesBefore
		r.BytesAfter += d.BytesAfter
	}
	if r.BytesBefore > 0 {
		r.SavingsPct = 100 * float64(r.BytesBefore-r.BytesAfter) / float64(r.BytesBefore)
	}
}

// MarshalReport renders the report as JSON. Column order follows the
// input table, so output is deterministic for identical inputs.
func MarshalReport(r *Report) ([]byte, error) {
	return gojson.Marshal(r)
}
