// Package group32 provides in-memory tabular dataset optimization that
// shrinks a table's footprint by choosing narrower column representations
// without changing observable values.
//
// Three independent analyzers run in sequence over a table's columns:
//
// 1. Numeric Narrower: downcasts integer columns to the smallest signed or
// unsigned width whose range covers the column, and float64 columns to
// float32 when every value round-trips within tolerance.
//
// 2. Categorical Converter: dictionary-encodes low-cardinality string
// columns, replacing repeated strings with compact integer codes.
//
// 3. Special-Column Reporter: flags columns the transforms should leave
// alone (identifiers, geographic coordinates, high-cardinality free text)
// before any transform runs, so precision-sensitive data is never touched.
//
// # Quick Start
//
//	import (
//	    "github.com/Vlee98p/Group-32/pkg/optimize"
//	    "github.com/Vlee98p/Group-32/pkg/table"
//	)
//
//	t := table.New()
//	quantity, _ := table.NewIntColumn(table.Int64, []int64{1, 2, 3, 4}, nil)
//	status, _ := table.NewStringColumn([]string{"pending", "shipped", "pending", "pending"}, nil)
//	_ = t.AddColumn("quantity", quantity)
//	_ = t.AddColumn("status", status)
//
//	optimized, report, err := optimize.Optimize(t)
//
// The input table is never mutated; Optimize returns a fresh table plus a
// per-column report of every decision made.
//
// # Key Packages
//
//	pkg/table      - Columnar table model with typed, null-aware columns
//	pkg/optimize   - Narrowing, categorization, heuristics, orchestration
//	pkg/arrowconv  - Apache Arrow boundary adapter
//	pkg/errors     - Structured error handling
//	pkg/logger     - Structured logging with zap
package group32
