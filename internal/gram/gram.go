package gram

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotConverged      = errors.New("gram: eigendecomposition did not converge")
	ErrZeroSingularValue = errors.New("gram: zero singular value, inverse undefined")
)

// Factors holds the singular factors of a rows×cols matrix X recovered
// from the eigendecomposition of its Gram matrix XᵗX.
type Factors struct {
	rows, cols int

	// S holds the cols derived singular values in descending order.
	S []float64
	// U is rows×cols, V is cols×cols.
	U, V *mat.Dense
}

// Snapshots recovers the singular factors of x by the method of snapshots:
// eigendecompose G = xᵗx, reorder the eigenpairs by descending eigenvalue,
// take elementwise square roots, and recover the left singular vectors as
// x·V·Σ⁻¹. Eigenvalues pushed slightly negative by rounding are clamped to
// zero before the square root.
//
// A singular value at or below tol·σmax counts as zero and fails with
// ErrZeroSingularValue, since Σ⁻¹ is undefined for rank-deficient input.
func Snapshots(x mat.Matrix, tol float64) (*Factors, error) {
	rows, cols := x.Dims()

	var g mat.SymDense
	g.SymOuterK(1, x.T())

	var eig mat.EigenSym
	if ok := eig.Factorize(&g, true); !ok {
		return nil, ErrNotConverged
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// EigenSym returns eigenvalues in ascending order. Build a descending
	// permutation, keeping the original column order for ties.
	perm := make([]int, cols)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return vals[perm[i]] > vals[perm[j]]
	})

	f := &Factors{
		rows: rows,
		cols: cols,
		S:    make([]float64, cols),
		V:    mat.NewDense(cols, cols, nil),
	}
	for j, p := range perm {
		lambda := vals[p]
		if lambda < 0 {
			lambda = 0
		}
		f.S[j] = math.Sqrt(lambda)
		for i := range cols {
			f.V.Set(i, j, vecs.At(i, p))
		}
	}

	inv := make([]float64, cols)
	for i, s := range f.S {
		if s <= tol*f.S[0] {
			return nil, fmt.Errorf("%w: σ[%d]=%g", ErrZeroSingularValue, i, s)
		}
		inv[i] = 1 / s
	}

	f.U = mat.NewDense(rows, cols, nil)
	f.U.Product(x, f.V, mat.NewDiagDense(cols, inv))
	return f, nil
}

// Reconstruct reassembles U · diag(S) · Vᵗ.
func (f *Factors) Reconstruct() *mat.Dense {
	res := mat.NewDense(f.rows, f.cols, nil)
	res.Product(f.U, mat.NewDiagDense(f.cols, f.S), f.V.T())
	return res
}
