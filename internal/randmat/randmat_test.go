package randmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/lowrank/internal/randmat"
)

func TestUniform_Deterministic(t *testing.T) {
	a := randmat.Uniform(5, 3, 42)
	b := randmat.Uniform(5, 3, 42)
	assert.True(t, mat.Equal(a, b), "same seed should yield the same matrix")

	c := randmat.Uniform(5, 3, 43)
	assert.False(t, mat.Equal(a, c), "different seeds should yield different matrices")
}

func TestUniform_Range(t *testing.T) {
	m := randmat.Uniform(10, 10, 1)
	rows, cols := m.Dims()
	assert.Equal(t, [2]int{10, 10}, [2]int{rows, cols})
	for i := range rows {
		for j := range cols {
			v := m.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}
