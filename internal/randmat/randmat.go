package randmat

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform returns a rows×cols matrix with entries drawn uniformly from
// [0, 1) by a PCG source seeded with seed. The same seed always yields
// the same matrix.
func Uniform(rows, cols int, seed uint64) *mat.Dense {
	u := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewPCG(seed, seed)}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = u.Rand()
	}
	return mat.NewDense(rows, cols, data)
}
