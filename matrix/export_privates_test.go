// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for internal options and helpers.
//
// Purpose:
//   - Expose unexported option fields and panic messages to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options changes,
//     update snapshotOf(...) accordingly (tests will catch drift).

import "golang.org/x/text/language"

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPrecisionInvalid_TestOnly = panicPrecisionInvalid
)

// ValidatesNaNInf_TestOnly reports the numeric policy carried by d.
func ValidatesNaNInf_TestOnly(d *Dense) bool { return d.validateNaNInf }

// SharesStorage_TestOnly reports whether d is backed by values (zero-copy wrap).
func SharesStorage_TestOnly(d *Dense, values []float64) bool {
	return len(d.data) > 0 && len(values) > 0 && &d.data[0] == &values[0]
}

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	Precision      int
	Locale         language.Tag
}

// NewMatrixOptionsSnapshot_TestOnly builds Options via public Option funcs and returns a snapshot.
func NewMatrixOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(NewMatrixOptions(opts...))
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		ValidateNaNInf: o.validateNaNInf,
		Precision:      o.precision,
		Locale:         o.locale,
	}
}
