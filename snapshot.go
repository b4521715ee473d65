package lowrank

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/lowrank/internal/gram"
)

// defaultZeroTolerance is the relative scale below which a derived
// singular value is treated as zero in the snapshot method, roughly
// sqrt of the double-precision machine epsilon.
const defaultZeroTolerance = 1e-7

// Snapshot is the result of recovering the singular factors of an n×m
// matrix from the eigendecomposition of its Gram matrix.
type Snapshot struct {
	// Sigma holds the m derived singular values, the square roots of the
	// Gram eigenvalues, in descending order.
	Sigma []float64
	// U is the n×m derived left factor X·V·Σ⁻¹, V the m×m Gram
	// eigenvector matrix.
	U, V *mat.Dense

	// Reconstruction is U · diag(Sigma) · Vᵗ.
	Reconstruction *mat.Dense
	// AbsErr is the Frobenius norm ‖X − Reconstruction‖F. No truncation
	// happens on this path, so for full-rank input it is ≈0.
	AbsErr float64
}

// Snapshots recovers the singular factors of x by the method of snapshots.
//
// Process:
//  1. Forms the Gram matrix G = xᵗx.
//  2. Eigendecomposes G and reorders the eigenpairs by descending
//     eigenvalue, with a stable permutation so ties keep their order.
//  3. Derives singular values as square roots of the eigenvalues, clamping
//     rounding-induced negatives to zero first.
//  4. Recovers the left singular vectors as x·V·Σ⁻¹ and reassembles x.
//
// Rank-deficient input has a zero singular value, leaving Σ⁻¹ undefined;
// that fails with ErrRankDeficient instead of producing Inf or NaN. The
// zero test is relative to the largest singular value, see
// WithZeroTolerance.
func (d *Decomposer) Snapshots(x mat.Matrix) (*Snapshot, error) {
	f, err := gram.Snapshots(x, d.zeroTol)
	if err != nil {
		if errors.Is(err, gram.ErrZeroSingularValue) {
			return nil, fmt.Errorf("%w: %w", ErrRankDeficient, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrFactorization, err)
	}

	s := &Snapshot{
		Sigma:          f.S,
		U:              f.U,
		V:              f.V,
		Reconstruction: f.Reconstruct(),
	}
	s.AbsErr, _ = reconstructionError(x, s.Reconstruction)
	return s, nil
}
