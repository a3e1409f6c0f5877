package analysis

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/compostops/vermicast/internal/logging"
	"github.com/compostops/vermicast/internal/simulation"
)

// Bound declares the varied range of one named simulation parameter.
type Bound struct {
	Name string
	Min  float64
	Max  float64
}

// Problem is the sensitivity analysis definition: the parameters to vary and
// their bounds. All other simulation parameters stay at their base values.
type Problem struct {
	Parameters []Bound
}

// validate checks the problem shape before any sampling work.
func (pr Problem) validate() error {
	if len(pr.Parameters) == 0 {
		return ErrNoParameters
	}
	for _, b := range pr.Parameters {
		if b.Min >= b.Max {
			return fmt.Errorf("%w: %s [%v,%v]", ErrInvalidBounds, b.Name, b.Min, b.Max)
		}
	}
	return nil
}

// names returns the parameter names in declaration order.
func (pr Problem) names() []string {
	out := make([]string, len(pr.Parameters))
	for i, b := range pr.Parameters {
		out[i] = b.Name
	}
	return out
}

// SobolOptions configures the sensitivity run.
type SobolOptions struct {
	// Samples is the base sample count N. The total number of model
	// evaluations is N*(D+2) for D varied parameters.
	Samples int

	// Seed initializes the sampling source; identical seeds reproduce
	// identical sample matrices and therefore identical indices.
	Seed uint64

	// Workers bounds the parallel evaluations (default GOMAXPROCS).
	Workers int
}

// SensitivityIndex is the variance-based importance of one parameter.
type SensitivityIndex struct {
	// Name is the varied parameter.
	Name string

	// FirstOrder (S1) is the share of output variance explained by the
	// parameter alone.
	FirstOrder float64

	// TotalOrder (ST) adds all interaction effects involving the
	// parameter. 0 <= S1 <= ST holds for a converged estimate; a
	// violation beyond sampling noise indicates a modeling or sampling
	// bug and is logged as a warning, never raised as an error.
	TotalOrder float64
}

// indexTolerance is the sampling-noise allowance used when flagging
// S1 > ST violations in logs.
const indexTolerance = 0.05

// SobolIndices runs a variance-based global sensitivity analysis of model
// over the problem bounds using the Saltelli cross-sampling scheme.
//
// Two independent N x D matrices A and B are drawn uniformly over the
// bounds, plus D hybrid matrices AB_i (A with column i replaced by B's).
// First-order indices use the Saltelli 2010 estimator on mean-centered
// outcomes
//
//	S1_i = mean((f(B) - mean(f)) * (f(AB_i) - f(A))) / V
//
// and total-order indices the Jansen estimator
//
//	ST_i = mean((f(A) - f(AB_i))^2) / (2 V)
//
// with V the sample variance over the combined A and B evaluations.
func SobolIndices(
	ctx context.Context,
	model Model,
	base simulation.Parameters,
	problem Problem,
	opts SobolOptions,
) ([]SensitivityIndex, error) {
	if opts.Samples <= 0 {
		return nil, ErrNoSamples
	}
	if err := problem.validate(); err != nil {
		return nil, err
	}

	n := opts.Samples
	d := len(problem.Parameters)

	log := logging.FromContext(ctx)
	log.Info().
		Str("component", "analysis").
		Int("base_samples", n).
		Int("parameters", d).
		Int("evaluations", n*(d+2)).
		Uint64("seed", opts.Seed).
		Msg("starting Sobol sensitivity analysis")

	matrixA, matrixB := saltelliMatrices(problem, n, opts.Seed)

	// Evaluation order: A rows, B rows, then the AB_i blocks. The layout
	// is fixed so a given seed always maps samples to the same indices.
	rows := make([][]float64, 0, n*(d+2))
	rows = append(rows, matrixA...)
	rows = append(rows, matrixB...)
	for i := 0; i < d; i++ {
		for j := 0; j < n; j++ {
			hybrid := make([]float64, d)
			copy(hybrid, matrixA[j])
			hybrid[i] = matrixB[j][i]
			rows = append(rows, hybrid)
		}
	}

	outcomes, err := runSamples(ctx, model, base, problem.names(), rows, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("sobol evaluation failed: %w", err)
	}

	fA := outcomes[:n]
	fB := outcomes[n : 2*n]

	combined := make([]float64, 0, 2*n)
	combined = append(combined, fA...)
	combined = append(combined, fB...)
	mean := stat.Mean(combined, nil)
	variance := stat.Variance(combined, nil)

	indices := make([]SensitivityIndex, d)
	for i := 0; i < d; i++ {
		fAB := outcomes[(2+i)*n : (3+i)*n]

		// The S1 accumulator works on mean-centered outcomes: with a
		// raw f(B) the estimator noise scales with the output mean,
		// which swamps the variance shares whenever mean >> stddev.
		// The Jansen ST term is shift-invariant and needs no centering.
		var first, total float64
		for j := 0; j < n; j++ {
			first += (fB[j] - mean) * (fAB[j] - fA[j])
			diff := fA[j] - fAB[j]
			total += diff * diff
		}
		first /= float64(n)
		total /= 2 * float64(n)

		idx := SensitivityIndex{Name: problem.Parameters[i].Name}
		if variance > 0 {
			idx.FirstOrder = first / variance
			idx.TotalOrder = total / variance
		}

		if idx.FirstOrder > idx.TotalOrder+indexTolerance {
			log.Warn().
				Str("component", "analysis").
				Str("parameter", idx.Name).
				Float64("s1", idx.FirstOrder).
				Float64("st", idx.TotalOrder).
				Msg("first-order index exceeds total-order index beyond tolerance")
		}

		indices[i] = idx
	}

	return indices, nil
}

// saltelliMatrices draws the two independent base sample matrices. Draw
// order is row-major over A then B so the matrices are a pure function of
// the seed.
func saltelliMatrices(problem Problem, n int, seed uint64) (matrixA, matrixB [][]float64) {
	src := rand.NewSource(seed)

	dists := make([]distuv.Uniform, len(problem.Parameters))
	for i, b := range problem.Parameters {
		dists[i] = distuv.Uniform{Min: b.Min, Max: b.Max, Src: src}
	}

	draw := func() [][]float64 {
		m := make([][]float64, n)
		for i := range m {
			row := make([]float64, len(dists))
			for j := range dists {
				row[j] = dists[j].Rand()
			}
			m[i] = row
		}
		return m
	}

	return draw(), draw()
}
