package analysis

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/compostops/vermicast/internal/logging"
	"github.com/compostops/vermicast/internal/simulation"
)

// DistributionKind names a supported input distribution.
type DistributionKind string

const (
	// DistUniform draws uniformly over [Min, Max].
	DistUniform DistributionKind = "uniform"

	// DistNormal draws from N(Mean, StdDev).
	DistNormal DistributionKind = "normal"

	// DistTriangular draws from the triangular distribution over
	// [Min, Max] with the given Mode.
	DistTriangular DistributionKind = "triangular"
)

// InputDistribution declares how one named simulation parameter varies.
type InputDistribution struct {
	Name string
	Kind DistributionKind

	// Min and Max bound the uniform and triangular kinds.
	Min float64
	Max float64

	// Mean and StdDev shape the normal kind.
	Mean   float64
	StdDev float64

	// Mode is the peak of the triangular kind.
	Mode float64
}

// sampler returns the distuv sampler for the declared distribution, wired to
// the shared seeded source.
func (in InputDistribution) sampler(src rand.Source) (distuv.Rander, error) {
	switch in.Kind {
	case DistUniform:
		if in.Min >= in.Max {
			return nil, fmt.Errorf("%w: %s uniform [%v,%v]", ErrInvalidBounds, in.Name, in.Min, in.Max)
		}
		return distuv.Uniform{Min: in.Min, Max: in.Max, Src: src}, nil
	case DistNormal:
		if in.StdDev <= 0 {
			return nil, fmt.Errorf("%w: %s normal stddev %v", ErrInvalidBounds, in.Name, in.StdDev)
		}
		return distuv.Normal{Mu: in.Mean, Sigma: in.StdDev, Src: src}, nil
	case DistTriangular:
		if in.Min >= in.Max || in.Mode < in.Min || in.Mode > in.Max {
			return nil, fmt.Errorf("%w: %s triangular [%v,%v] mode %v", ErrInvalidBounds, in.Name, in.Min, in.Max, in.Mode)
		}
		return distuv.NewTriangle(in.Min, in.Max, in.Mode, src), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, in.Kind)
	}
}

// MonteCarloOptions configures the uncertainty run.
type MonteCarloOptions struct {
	// Samples is the number of independent parameter draws.
	Samples int

	// Seed initializes the sampling source. Identical seed and sample
	// count reproduce an identical outcome array.
	Seed uint64

	// Workers bounds the parallel evaluations (default GOMAXPROCS).
	Workers int
}

// Interval is a two-sided percentile confidence interval.
type Interval struct {
	Low  float64
	High float64
}

// MonteCarloResult is the empirical output distribution and its summary.
type MonteCarloResult struct {
	// Outcomes holds one scalar per draw, in sample order.
	Outcomes []float64

	Mean   float64
	Median float64
	StdDev float64

	// CI90 and CI95 are the 90% and 95% percentile-based confidence
	// intervals of the outcome distribution.
	CI90 Interval
	CI95 Interval
}

// MonteCarlo propagates the declared input uncertainty through the model.
// All draws come from one source seeded with opts.Seed; the draw order is
// row-major over samples so the sample matrix is a pure function of the
// seed. Per-sample failures abort the whole run.
func MonteCarlo(
	ctx context.Context,
	model Model,
	base simulation.Parameters,
	inputs []InputDistribution,
	opts MonteCarloOptions,
) (MonteCarloResult, error) {
	if opts.Samples <= 0 {
		return MonteCarloResult{}, ErrNoSamples
	}
	if len(inputs) == 0 {
		return MonteCarloResult{}, ErrNoParameters
	}

	log := logging.FromContext(ctx)
	log.Info().
		Str("component", "analysis").
		Int("samples", opts.Samples).
		Int("parameters", len(inputs)).
		Uint64("seed", opts.Seed).
		Msg("starting Monte Carlo uncertainty analysis")

	src := rand.NewSource(opts.Seed)
	samplers := make([]distuv.Rander, len(inputs))
	names := make([]string, len(inputs))
	for i, in := range inputs {
		s, err := in.sampler(src)
		if err != nil {
			return MonteCarloResult{}, err
		}
		samplers[i] = s
		names[i] = in.Name
	}

	rows := make([][]float64, opts.Samples)
	for i := range rows {
		row := make([]float64, len(samplers))
		for j := range samplers {
			row[j] = samplers[j].Rand()
		}
		rows[i] = row
	}

	outcomes, err := runSamples(ctx, model, base, names, rows, opts.Workers)
	if err != nil {
		return MonteCarloResult{}, fmt.Errorf("monte carlo evaluation failed: %w", err)
	}

	return summarize(outcomes), nil
}

// summarize derives the summary statistics from the raw outcome array.
func summarize(outcomes []float64) MonteCarloResult {
	sorted := make([]float64, len(outcomes))
	copy(sorted, outcomes)
	sort.Float64s(sorted)

	quantile := func(p float64) float64 {
		return stat.Quantile(p, stat.Empirical, sorted, nil)
	}

	return MonteCarloResult{
		Outcomes: outcomes,
		Mean:     stat.Mean(sorted, nil),
		Median:   quantile(0.5),
		StdDev:   stat.StdDev(sorted, nil),
		CI90:     Interval{Low: quantile(0.05), High: quantile(0.95)},
		CI95:     Interval{Low: quantile(0.025), High: quantile(0.975)},
	}
}
