package lowrank

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/lowrank/internal/randmat"
)

// RandomUniform returns a rows×cols matrix with entries drawn uniformly
// from [0, 1). The seed is explicit so the same input matrix can be
// reproduced across runs.
func RandomUniform(rows, cols int, seed uint64) *mat.Dense {
	return randmat.Uniform(rows, cols, seed)
}
