package table

import "fmt"

// Table is an ordered collection of named columns sharing one row count.
// Column order is insertion order and is preserved by every operation.
type Table struct {
	names   []string
	columns map[string]Column
	rows    int
}

// New creates an empty table.
func New() *Table {
	return &Table{
		columns: make(map[string]Column),
	}
}

// AddColumn appends a column. The first column fixes the table's row
// count; later columns must match it. Column names must be unique.
func (t *Table) AddColumn(name string, col Column) error {
	if col == nil {
		return fmt.Errorf("column %q is nil", name)
	}
	if _, exists := t.columns[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}
	if len(t.names) == 0 {
		t.rows = col.Len()
	} else if col.Len() != t.rows {
		return fmt.Errorf("column %q has %d rows, table has %d", name, col.Len(), t.rows)
	}
	t.names = append(t.names, name)
	t.columns[name] = col
	return nil
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.names) }

// MemoryUsage returns the estimated heap footprint of all columns.
func (t *Table) MemoryUsage() int64 {
	var total int64
	for _, name := range t.names {
		total += t.columns[name].MemoryUsage()
	}
	return total
}
