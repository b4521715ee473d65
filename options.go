package lowrank

import "fmt"

type Option func(*Decomposer) error

// WithZeroTolerance sets the relative threshold below which a derived
// singular value counts as zero in the snapshot method: σ ≤ tol·σmax fails
// with ErrRankDeficient instead of dividing by a vanishing value.
//
// The default is 1e-7, the noise floor the Gram-matrix route leaves on a
// zero singular value. Zero is valid and fails only on exact zeros.
func WithZeroTolerance(tol float64) Option {
	return func(d *Decomposer) error {
		if tol < 0 {
			return fmt.Errorf("zero tolerance must be non-negative, got %g", tol)
		}
		d.zeroTol = tol
		d.zeroTolSet = true
		return nil
	}
}

// WithFullMatrices also keeps the full n×n U and m×m Vᵗ orthogonal factors
// on Truncate, in addition to the thin ones. The thin factors are all the
// reconstruction needs, so this is off by default.
func WithFullMatrices() Option {
	return func(d *Decomposer) error {
		d.full = true
		return nil
	}
}
