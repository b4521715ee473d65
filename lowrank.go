// Package lowrank computes low-rank approximations of dense real matrices
// by truncated singular value decomposition, and cross-validates the
// factors through the method of snapshots, the eigendecomposition of the
// Gram matrix XᵗX. The decomposition kernels themselves come from gonum;
// this package only truncates, reorders and reassembles their output and
// reports Frobenius-norm reconstruction error.
package lowrank

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/lowrank/internal/svd"
)

var (
	ErrInvalidRank   = errors.New("truncation rank out of range")
	ErrFactorization = errors.New("decomposition did not converge")
	ErrRankDeficient = errors.New("rank-deficient input")
)

// Truncate computes the rank-constrained approximation of x with the
// specified options.
// This is a convenience function that creates a Decomposer and calls its
// Truncate method.
func Truncate(x mat.Matrix, rank int, opts ...Option) (*Truncation, error) {
	d, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return d.Truncate(x, rank)
}

// Snapshots recovers the singular factors of x through its Gram matrix
// with the specified options.
// This is a convenience function that creates a Decomposer and calls its
// Snapshots method.
func Snapshots(x mat.Matrix, opts ...Option) (*Snapshot, error) {
	d, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return d.Snapshots(x)
}

type Decomposer struct {
	zeroTol    float64
	zeroTolSet bool
	full       bool
}

// New initializes a decomposer.
// The zero tolerance of the snapshot method and the computation of full
// orthogonal factors can be optionally specified. For default values,
// refer to the init function.
func New(opts ...Option) (*Decomposer, error) {
	d := new(Decomposer)
	if err := d.init(opts...); err != nil {
		return nil, err
	}
	return d, nil
}

// Truncation is the result of a rank-constrained SVD approximation of an
// n×m matrix, with k = min(n, m).
type Truncation struct {
	// Sigma holds the k singular values in descending order.
	Sigma []float64
	// U is the n×k left factor, Vt the k×m right factor.
	U, Vt *mat.Dense
	// FullU (n×n) and FullVt (m×m) are set only when the decomposer was
	// created with WithFullMatrices.
	FullU, FullVt *mat.Dense

	// Rank of the approximation.
	Rank int
	// Approx is the rank-Rank reconstruction
	// U[:, :Rank] · diag(Sigma[:Rank]) · Vt[:Rank, :].
	Approx *mat.Dense

	// AbsErr is the Frobenius norm ‖X − Approx‖F.
	// RelErr is AbsErr relative to ‖X‖F, as a percentage.
	AbsErr, RelErr float64
}

// TailEnergy returns the sum of squared discarded singular values.
// By the Eckart–Young theorem it equals the squared Frobenius
// reconstruction error of the rank-Rank approximation.
func (t *Truncation) TailEnergy() float64 {
	tail := t.Sigma[t.Rank:]
	return floats.Dot(tail, tail)
}

// Truncate decomposes x and keeps its top rank singular triplets.
//
// Process:
//  1. Factorizes x as U·Σ·Vᵗ (thin factors, full ones on request).
//  2. Reassembles the approximation from the leading rank triplets.
//  3. Measures the absolute and relative Frobenius reconstruction error.
//
// rank 0 is valid and yields the zero matrix, so AbsErr equals ‖X‖F;
// rank min(n, m) reproduces x up to rounding. Any rank outside [0, min(n, m)]
// fails with ErrInvalidRank, and a factorization that does not converge is
// surfaced as ErrFactorization rather than masked.
func (d *Decomposer) Truncate(x mat.Matrix, rank int) (*Truncation, error) {
	rows, cols := x.Dims()
	if k := min(rows, cols); rank < 0 || rank > k {
		return nil, fmt.Errorf("%w: rank %d not in [0, %d]", ErrInvalidRank, rank, k)
	}

	f, err := svd.Factor(x, d.full)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFactorization, err)
	}

	t := &Truncation{
		Sigma:  f.S,
		U:      f.U,
		Rank:   rank,
		Approx: f.Reconstruct(rank),
	}
	t.Vt = transposed(f.V)
	if d.full {
		t.FullU = f.FullU
		t.FullVt = transposed(f.FullV)
	}
	t.AbsErr, t.RelErr = reconstructionError(x, t.Approx)
	return t, nil
}

func (d *Decomposer) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return err
		}
	}
	if !d.zeroTolSet {
		// The Gram-matrix route squares the condition number, so noise in
		// a zero eigenvalue surfaces as σ ≈ sqrt(eps)·σmax. Values below
		// that scale are indistinguishable from rank deficiency.
		d.zeroTol = defaultZeroTolerance
	}
	return nil
}

// reconstructionError returns ‖x−approx‖F and the same relative to ‖x‖F
// as a percentage. The relative error of a zero matrix is reported as 0.
func reconstructionError(x mat.Matrix, approx *mat.Dense) (abs, rel float64) {
	var diff mat.Dense
	diff.Sub(x, approx)
	abs = mat.Norm(&diff, 2)
	if norm := mat.Norm(x, 2); norm > 0 {
		rel = abs / norm * 100
	}
	return abs, rel
}

func transposed(m *mat.Dense) *mat.Dense {
	var t mat.Dense
	t.CloneFrom(m.T())
	return &t
}
