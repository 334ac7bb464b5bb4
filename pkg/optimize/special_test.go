package optimize

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vlee98p/Group-32/pkg/table"
)

func singleColumnTable(t *testing.T, name string, col table.Column) *table.Table {
	t.Helper()
	tbl := table.New()
	require.NoError(t, tbl.AddColumn(name, col))
	return tbl
}

func TestDetectIdentifierUUIDs(t *testing.T) {
	values := make([]string, 100)
	for i := range values {
		values[i] = uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("row-%d", i))).String()
	}
	tbl := singleColumnTable(t, "token", strCol(t, values, nil))

	findings := ClassifySpecial(tbl, DefaultOptions())
	f, ok := findings["token"]
	require.True(t, ok)
	assert.Equal(t, FlagIdentifier, f.Flag)
	assert.Contains(t, f.Reason, "identifier")
	assert.Equal(t, 1.0, f.UniqueRatio)
}

func TestDetectIdentifierIntegerStrings(t *testing.T) {
	values := make([]string, 50)
	for i := range values {
		values[i] = fmt.Sprintf("%d", 1000+i)
	}
	tbl := singleColumnTable(t, "order_ref", strCol(t, values, nil))

	f, ok := ClassifySpecial(tbl, DefaultOptions())["order_ref"]
	require.True(t, ok)
	assert.Equal(t, FlagIdentifier, f.Flag)
	assert.Contains(t, f.Reason, "integers as strings")
}

func TestDetectIdentifierMonotonicInts(t *testing.T) {
	values := make([]int64, 100)
	for i := range values {
		values[i] = int64(i)
	}
	tbl := singleColumnTable(t, "row_number", intCol(t, table.Int64, values, nil))

	f, ok := ClassifySpecial(tbl, DefaultOptions())["row_number"]
	require.True(t, ok)
	assert.Equal(t, FlagIdentifier, f.Flag)
	assert.Contains(t, f.Reason, "monotonically increasing")
}

func TestDetectIdentifierByName(t *testing.T) {
	// Shuffled distinct ints: not monotonic, but the name gives it away.
	tbl := singleColumnTable(t, "customer_id",
		intCol(t, table.Int64, []int64{9, 3, 7, 1, 5, 2, 8, 4, 6, 10}, nil))

	f, ok := ClassifySpecial(tbl, DefaultOptions())["customer_id"]
	require.True(t, ok)
	assert.Equal(t, FlagIdentifier, f.Flag)
}

func TestIdentifierRequiresHighCardinality(t *testing.T) {
	// Low distinct ratio: an "id" name alone is not enough.
	tbl := singleColumnTable(t, "group_id",
		intCol(t, table.Int64, []int64{1, 1, 2, 2, 1, 2, 1, 2}, nil))

	_, ok := ClassifySpecial(tbl, DefaultOptions())["group_id"]
	assert.False(t, ok)
}

func TestDetectCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		colName string
		values  []float64
		flagged bool
	}{
		{"latitude in bounds", "latitude", []float64{37.7749, 40.7128, -33.8688}, true},
		{"lat short name", "lat", []float64{51.5074}, true},
		{"pickup_lat compound name", "pickup_lat", []float64{41.88}, true},
		{"longitude in bounds", "longitude", []float64{-122.4194, 151.2093}, true},
		{"lng short name", "lng", []float64{-73.9857}, true},
		{"latitude out of bounds", "latitude", []float64{37.7, 200.0}, false},
		{"unrelated name", "price", []float64{10.5, 12.0}, false},
		{"name containing but not bounded", "dilated", []float64{1.0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := singleColumnTable(t, tt.colName, floatCol(t, table.Float64, tt.values, nil))
			f, ok := ClassifySpecial(tbl, DefaultOptions())[tt.colName]

			assert.Equal(t, tt.flagged, ok)
			if tt.flagged {
				assert.Equal(t, FlagCoordinate, f.Flag)
				assert.Contains(t, f.Reason, "precision-sensitive")
			}
		})
	}
}

func TestDetectFreeText(t *testing.T) {
	values := make([]string, 40)
	for i := range values {
		values[i] = fmt.Sprintf("%d Main Street, Apartment %d, Springfield", i*7, i)
	}
	tbl := singleColumnTable(t, "delivery_address", strCol(t, values, nil))

	f, ok := ClassifySpecial(tbl, DefaultOptions())["delivery_address"]
	require.True(t, ok)
	assert.Equal(t, FlagFreeText, f.Flag)
	assert.Contains(t, f.Reason, "free text")
}

func TestFreeTextRequiresLongValues(t *testing.T) {
	// High cardinality but short values: not free text, not an identifier.
	values := make([]string, 40)
	for i := range values {
		values[i] = fmt.Sprintf("v%d", i)
	}
	tbl := singleColumnTable(t, "code", strCol(t, values, nil))

	_, ok := ClassifySpecial(tbl, DefaultOptions())["code"]
	assert.False(t, ok)
}

func TestIdentifierTakesPrecedenceOverFreeText(t *testing.T) {
	// UUIDs are 36 chars, so the free-text length test would also match;
	// the identifier heuristic must win because it runs first.
	values := make([]string, 30)
	for i := range values {
		values[i] = uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("k%d", i))).String()
	}
	tbl := singleColumnTable(t, "request", strCol(t, values, nil))

	f, ok := ClassifySpecial(tbl, DefaultOptions())["request"]
	require.True(t, ok)
	assert.Equal(t, FlagIdentifier, f.Flag)
}

func TestClassifySpecialSkipsOrdinaryColumns(t *testing.T) {
	tbl := table.New()
	require.NoError(t, tbl.AddColumn("status", strCol(t, []string{"active", "inactive", "active", "active"}, nil)))
	require.NoError(t, tbl.AddColumn("quantity", intCol(t, table.Int64, []int64{1, 2, 2, 3}, nil)))

	findings := ClassifySpecial(tbl, DefaultOptions())
	assert.Empty(t, findings)
}
