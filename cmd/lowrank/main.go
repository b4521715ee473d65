package main

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/lowrank"
)

var (
	rows, cols int
	rank       int
	seed       uint64
	verbose    bool
)

// rootCmd runs both diagnostic procedures against one random matrix:
// a truncated SVD approximation and the method-of-snapshots recovery.
var rootCmd = &cobra.Command{
	Use:   "lowrank",
	Short: "Truncated SVD and method-of-snapshots diagnostics",
	Long: `lowrank generates a seeded uniform random matrix, approximates it by a
rank-constrained SVD, recovers its singular factors independently through
the eigendecomposition of the Gram matrix, and reports the Frobenius-norm
reconstruction error of both routes.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&rows, "rows", 5, "number of matrix rows")
	rootCmd.Flags().IntVar(&cols, "cols", 3, "number of matrix columns")
	rootCmd.Flags().IntVar(&rank, "rank", 2, "truncation rank, in [0, min(rows, cols)]")
	rootCmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random input matrix")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "print the factor matrices")
}

func run(cmd *cobra.Command, args []string) error {
	x := lowrank.RandomUniform(rows, cols, seed)
	log.Info().Int("rows", rows).Int("cols", cols).Uint64("seed", seed).
		Msg("generated input matrix")
	fmt.Printf("X =\n%.4f\n\n", mat.Formatted(x))

	t, err := lowrank.Truncate(x, rank, lowrank.WithFullMatrices())
	if err != nil {
		return err
	}
	fmt.Printf("singular values: %.6f\n", t.Sigma)
	if verbose {
		fmt.Printf("U =\n%.4f\n\nVᵗ =\n%.4f\n\n", mat.Formatted(t.FullU), mat.Formatted(t.FullVt))
	}
	fmt.Printf("rank-%d approximation =\n%.4f\n", t.Rank, mat.Formatted(t.Approx))
	fmt.Printf("reconstruction error: %.2f (%.2f%%)\n\n", t.AbsErr, t.RelErr)

	s, err := lowrank.Snapshots(x)
	if err != nil {
		return err
	}
	fmt.Printf("snapshot singular values: %.6f\n", s.Sigma)
	if verbose {
		fmt.Printf("U =\n%.4f\n\nV =\n%.4f\n\n", mat.Formatted(s.U), mat.Formatted(s.V))
	}
	fmt.Printf("snapshot reconstruction =\n%.4f\n", mat.Formatted(s.Reconstruction))
	fmt.Printf("snapshot reconstruction error: %.2f\n", s.AbsErr)

	var delta float64
	for i := 0; i < min(len(t.Sigma), len(s.Sigma)); i++ {
		delta = math.Max(delta, math.Abs(t.Sigma[i]-s.Sigma[i]))
	}
	log.Info().Float64("max_delta", delta).
		Msg("cross-checked direct and snapshot singular values")
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}
