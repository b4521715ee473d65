package gram_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/lowrank/internal/gram"
)

func TestSnapshots_Reconstruct(t *testing.T) {
	x := mat.NewDense(5, 3, []float64{
		0.9, 0.1, 0.4,
		0.2, 0.8, 0.3,
		0.5, 0.5, 0.9,
		0.7, 0.3, 0.2,
		0.1, 0.6, 0.8,
	})

	f, err := gram.Snapshots(x, 1e-7)
	require.NoError(t, err)

	res := f.Reconstruct()
	for i := range 5 {
		for j := range 3 {
			assert.InDelta(t, x.At(i, j), res.At(i, j), 1e-8,
				"reconstruction mismatch at (%d, %d)", i, j)
		}
	}
}

func TestSnapshots_ValuesDescending(t *testing.T) {
	x := mat.NewDense(4, 3, []float64{
		1, 0.2, 0.3,
		0.4, 2, 0.6,
		0.7, 0.8, 3,
		0.1, 0.9, 0.5,
	})

	f, err := gram.Snapshots(x, 1e-7)
	require.NoError(t, err)
	require.Len(t, f.S, 3)

	for i, s := range f.S {
		assert.GreaterOrEqual(t, s, 0.0, "derived singular value[%d] should be non-negative", i)
		if i > 0 {
			assert.GreaterOrEqual(t, f.S[i-1], f.S[i],
				"derived singular values should be in descending order")
		}
	}
}

func TestSnapshots_MatchesGramEigenvalues(t *testing.T) {
	// σᵢ² must equal the eigenvalues of XᵗX. For an orthogonal-column
	// matrix scaled by known factors, both are known exactly.
	x := mat.NewDense(3, 2, []float64{
		3, 0,
		0, 2,
		0, 0,
	})

	f, err := gram.Snapshots(x, 1e-7)
	require.NoError(t, err)
	assert.InDelta(t, 3, f.S[0], 1e-12)
	assert.InDelta(t, 2, f.S[1], 1e-12)
}

func TestSnapshots_OrthonormalFactors(t *testing.T) {
	x := mat.NewDense(5, 3, []float64{
		0.3, 0.7, 0.2,
		0.9, 0.1, 0.5,
		0.4, 0.6, 0.8,
		0.2, 0.3, 0.1,
		0.5, 0.9, 0.7,
	})

	f, err := gram.Snapshots(x, 1e-7)
	require.NoError(t, err)

	// VᵗV = I: the Gram eigenvectors form an orthonormal basis.
	var vtv mat.Dense
	vtv.Mul(f.V.T(), f.V)
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, vtv.At(i, j), 1e-10)
		}
	}

	// Each recovered left vector is a unit vector.
	rows, cols := f.U.Dims()
	for j := range cols {
		var sum float64
		for i := range rows {
			sum += f.U.At(i, j) * f.U.At(i, j)
		}
		assert.InDelta(t, 1, math.Sqrt(sum), 1e-8)
	}
}

func TestSnapshots_ZeroSingularValue(t *testing.T) {
	t.Run("zero_column", func(t *testing.T) {
		x := mat.NewDense(3, 2, []float64{
			1, 0,
			2, 0,
			3, 0,
		})
		_, err := gram.Snapshots(x, 1e-7)
		assert.ErrorIs(t, err, gram.ErrZeroSingularValue)
	})

	t.Run("duplicated_column", func(t *testing.T) {
		x := mat.NewDense(3, 2, []float64{
			1, 1,
			2, 2,
			3, 3,
		})
		_, err := gram.Snapshots(x, 1e-7)
		assert.ErrorIs(t, err, gram.ErrZeroSingularValue)
	})
}
