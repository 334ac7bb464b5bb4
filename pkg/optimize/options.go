package optimize

import (
	"go.uber.org/zap"

	"github.com/Vlee98p/Group-32/pkg/errors"
)

// Options controls the optimization thresholds. Zero values are invalid;
// start from DefaultOptions or use Optimize's functional options.
type Options struct {
	// MaxUniqueRatio is the maximum distinct/rows ratio at which a
	// string column is converted to categorical. The boundary is
	// inclusive. Domain (0, 1], default 0.5.
	MaxUniqueRatio float64

	// FloatTolerance is the maximum relative error allowed when
	// narrowing float64 to float32, compared per value as
	// |f32 - f64| <= FloatTolerance * max(1, |f64|). Default 1e-6.
	FloatTolerance float64

	// IdentifierRatio is the minimum distinct/rows ratio (exclusive)
	// for identifier detection. Domain (0, 1], default 0.9.
	IdentifierRatio float64

	// FreeTextMinAvgLen is the average value length in characters above
	// which a high-cardinality string column counts as free text.
	// Default 20.
	FreeTextMinAvgLen float64

	// Logger receives per-column decisions at debug level and a summary
	// at info level. Defaults to the package-wide logger.
	Logger *zap.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxUniqueRatio:    0.5,
		FloatTolerance:    1e-6,
		IdentifierRatio:   0.9,
		FreeTextMinAvgLen: 20,
	}
}

// Option overrides a single threshold.
type Option func(*Options)

// WithMaxUniqueRatio overrides the categorical conversion threshold.
func WithMaxUniqueRatio(ratio float64) Option {
	return func(o *Options) { o.MaxUniqueRatio = ratio }
}

// WithFloatTolerance overrides the float narrowing tolerance.
func WithFloatTolerance(tol float64) Option {
	return func(o *Options) { o.FloatTolerance = tol }
}

// WithIdentifierRatio overrides the identifier detection threshold.
func WithIdentifierRatio(ratio float64) Option {
	return func(o *Options) { o.IdentifierRatio = ratio }
}

// WithFreeTextMinAvgLen overrides the free-text length threshold.
func WithFreeTextMinAvgLen(chars float64) Option {
	return func(o *Options) { o.FreeTextMinAvgLen = chars }
}

// WithLogger sets the logger used for decision and summary logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// Validate checks every threshold against its domain.
func (o Options) Validate() error {
	if o.MaxUniqueRatio <= 0 || o.MaxUniqueRatio > 1 {
		return errors.Newf(errors.ErrorTypeConfig, "max_unique_ratio %v outside (0, 1]", o.MaxUniqueRatio)
	}
	if o.FloatTolerance <= 0 {
		return errors.Newf(errors.ErrorTypeConfig, "float_tolerance %v must be positive", o.FloatTolerance)
	}
	if o.IdentifierRatio <= 0 || o.IdentifierRatio > 1 {
		return errors.Newf(errors.ErrorTypeConfig, "identifier_ratio %v outside (0, 1]", o.IdentifierRatio)
	}
	if o.FreeTextMinAvgLen <= 0 {
		return errors.Newf(errors.ErrorTypeConfig, "free_text_min_avg_len %v must be positive", o.FreeTextMinAvgLen)
	}
	return nil
}
