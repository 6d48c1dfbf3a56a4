// SPDX-License-Identifier: MIT

// Package multivector: functional configuration.
//
// Contract:
//   - Options are functional (type Option func(*Options)).
//   - Option constructors validate and panic on nonsensical values
//     (programmer error). Algorithms themselves return errors.
//   - Every result of an operation inherits the options of its receiver
//     (or left operand), so configuration flows through chains of products.
package multivector

import (
	"log/slog"
	"math"
)

// ---------- Defaults ----------

const (
	// DefaultEpsilon is the divisor magnitude at or below which Inverse
	// reports ErrNonInvertible. Zero means only an exact 0 is rejected.
	DefaultEpsilon = 0.0

	// DefaultWorkers runs the geometric product on the calling goroutine.
	DefaultWorkers = 1

	// DefaultValidateNaNInf rejects non-finite coefficients in Set and
	// FromCoefficients.
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid = "multivector: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "multivector: WithWorkers: workers must be ≥ 1"
	panicLoggerNil      = "multivector: WithLogger(nil)"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points take ...Option.
type Options struct {
	eps            float64      // ≥ 0; DefaultEpsilon
	workers        int          // ≥ 1; DefaultWorkers
	validateNaNInf bool         // DefaultValidateNaNInf
	logger         *slog.Logger // never nil after gatherOptions
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		workers:        DefaultWorkers,
		validateNaNInf: DefaultValidateNaNInf,
		logger:         slog.New(slog.DiscardHandler),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the non-invertibility tolerance used by Inverse.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithWorkers lets the geometric product fan out over up to w goroutines.
// w = 1 keeps the product on the calling goroutine. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = w }
}

// WithValidateNaNInf toggles rejection of NaN/±Inf coefficients.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// WithLogger routes debug-level diagnostics (product fan-out, inverse
// outcome) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}
