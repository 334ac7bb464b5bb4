package optimize

import (
	"go.uber.org/zap"

	"github.com/Vlee98p/Group-32/pkg/errors"
	"github.com/Vlee98p/Group-32/pkg/logger"
	"github.com/Vlee98p/Group-32/pkg/table"
)

// Optimize returns a memory-optimized copy of t plus a per-column report.
// The input table is never mutated; untouched columns are shared with the
// output, which is safe because columns are immutable.
//
// The pass order is classify, narrow, categorize: special-column
// heuristics build a skip-set first, then the numeric narrower and
// categorical converter transform the remaining columns. Identical input
// and options always produce identical output.
//
// Optimize fails with a validation error when t is nil and a config
// error when an option is outside its domain; per-column "did not
// qualify" outcomes are decisions in the report, not errors.
func Optimize(t *table.Table, options ...Option) (*table.Table, *Report, error) {
	if t == nil {
		return nil, nil, errors.New(errors.ErrorTypeValidation, "input table is nil")
	}

	opts := DefaultOptions()
	for _, o := range options {
		o(&opts)
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.Get()
	}

	findings := ClassifySpecial(t, opts)

	out := table.New()
	report := &Report{}

	for _, name := range t.Names() {
		col, _ := t.Column(name)

		var (
			next table.Column
			d    Decision
		)
		if f, flagged := findings[name]; flagged {
			next = col
			d = Decision{
				Column:      name,
				Action:      ActionFlagged,
				Reason:      f.Reason,
				OldType:     col.DataType().String(),
				NewType:     col.DataType().String(),
				Nullable:    col.Nullable(),
				UniqueRatio: f.UniqueRatio,
				Flag:        string(f.Flag),
				BytesBefore: col.MemoryUsage(),
				BytesAfter:  col.MemoryUsage(),
			}
		} else if col.DataType().IsNumeric() {
			next, d = NarrowNumeric(name, col, opts)
		} else if col.DataType().Kind == table.KindString {
			next, d = Categorize(name, col, opts)
		} else {
			next = col
			d = Decision{
				Column:      name,
				Action:      ActionUnchanged,
				Reason:      "already categorical",
				OldType:     col.DataType().String(),
				NewType:     col.DataType().String(),
				Nullable:    col.Nullable(),
				BytesBefore: col.MemoryUsage(),
				BytesAfter:  col.MemoryUsage(),
			}
		}

		if err := out.AddColumn(name, next); err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrorTypeInternal, "building optimized table")
		}
		report.add(d)

		log.Debug("column decision",
			zap.String("column", name),
			zap.String("action", string(d.Action)),
			zap.String("old_type", d.OldType),
			zap.String("new_type", d.NewType),
			zap.String("reason", d.Reason),
		)
	}

	report.finalize()

	log.Info("table optimized",
		zap.Int("columns", t.NumCols()),
		zap.Int("rows", t.NumRows()),
		zap.Int64("bytes_before", report.BytesBefore),
		zap.Int64("bytes_after", report.BytesAfter),
		zap.Float64("savings_pct", report.SavingsPct),
	)

	return out, report, nil
}
