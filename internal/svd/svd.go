package svd

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var ErrNotConverged = errors.New("svd: factorization did not converge")

// Factors holds the singular value decomposition X = U diag(S) Vᵗ of a
// rows×cols matrix, with k = min(rows, cols).
type Factors struct {
	rows, cols int

	// S holds the k singular values in descending order.
	S []float64
	// U is rows×k, V is cols×k.
	U, V *mat.Dense
	// FullU (rows×rows) and FullV (cols×cols) are set only when the
	// factorization was requested with full matrices.
	FullU, FullV *mat.Dense
}

// Factor computes the singular value decomposition of x. With full set,
// the complete orthogonal factors are kept alongside the thin ones,
// which are then views into them.
func Factor(x mat.Matrix, full bool) (*Factors, error) {
	rows, cols := x.Dims()

	kind := mat.SVDThin
	if full {
		kind = mat.SVDFull
	}
	var dec mat.SVD
	if ok := dec.Factorize(x, kind); !ok {
		return nil, ErrNotConverged
	}

	f := &Factors{rows: rows, cols: cols, S: dec.Values(nil)}
	var u, v mat.Dense
	dec.UTo(&u)
	dec.VTo(&v)

	k := len(f.S)
	if full {
		f.FullU, f.FullV = &u, &v
		f.U = u.Slice(0, rows, 0, k).(*mat.Dense)
		f.V = v.Slice(0, cols, 0, k).(*mat.Dense)
	} else {
		f.U, f.V = &u, &v
	}
	return f, nil
}

// Rank returns the number of singular values, min(rows, cols).
func (f *Factors) Rank() int {
	return len(f.S)
}

// Reconstruct forms the rank-constrained approximation
// U[:, :rank] · diag(S[:rank]) · V[:, :rank]ᵗ.
// rank 0 yields the zero matrix.
func (f *Factors) Reconstruct(rank int) *mat.Dense {
	res := mat.NewDense(f.rows, f.cols, nil)
	if rank == 0 {
		return res
	}
	u := f.U.Slice(0, f.rows, 0, rank)
	v := f.V.Slice(0, f.cols, 0, rank)
	sigma := mat.NewDiagDense(rank, f.S[:rank])
	res.Product(u, sigma, v.T())
	return res
}
