// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) applying setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Numeric policy is per instance: NewDense/NewDenseFrom copy validateNaNInf
//     into the Dense, Clone and every kernel result inherit it from the left operand.
//   - DefaultValidateNaNInf is false: scalar division by zero must yield IEEE-754
//     infinities, and a finite-only default would turn that into an error.
package matrix

import "golang.org/x/text/language"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = false

	// DefaultPrecision is the number of fixed decimals used by Fprint.
	DefaultPrecision = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// numeric policy
	validateNaNInf bool // DefaultValidateNaNInf

	// text rendering policy
	precision int          // DefaultPrecision
	locale    language.Tag // language.Und ⇒ plain fmt formatting
}

// WithValidateNaNInf enables finite-only writes: Set/Apply reject NaN/±Inf
// with ErrNaNInf.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only policy (the default).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithPrecision sets the number of fixed decimals used by Fprint.
// Implementation:
//   - Stage 1: validate p >= 0 (panic otherwise, programmer error).
//   - Stage 2: return a setter storing p.
//
// Errors:
//   - Panics with a stable message when p is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithLocale renders values through a golang.org/x/text/message printer for
// the given tag (locale digit grouping, e.g. "1,234.50" for English).
// language.Und restores plain fmt formatting.
// Complexity: O(1).
func WithLocale(tag language.Tag) Option {
	return func(o *Options) { o.locale = tag }
}

// NewMatrixOptions resolves opts over the documented defaults.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		precision:      DefaultPrecision,
		locale:         language.Und,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order (last-writer-wins); nil setters are skipped.
// Complexity: O(k), Space O(1).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
