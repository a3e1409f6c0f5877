package analysis

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/compostops/vermicast/internal/logging"
	"github.com/compostops/vermicast/internal/simulation"
)

// runSamples evaluates model over every sample row in parallel and returns
// the outcomes in sample order. Each row is the named values to apply onto
// base. Any per-sample failure fails the whole run: a partial result set
// would bias the downstream statistics.
func runSamples(
	ctx context.Context,
	model Model,
	base simulation.Parameters,
	names []string,
	samples [][]float64,
	workers int,
) ([]float64, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	logging.FromContext(ctx).Debug().
		Str("component", "analysis").
		Int("samples", len(samples)).
		Int("workers", workers).
		Msg("running sample evaluations")

	outcomes := make([]float64, len(samples))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, row := range samples {
		i, row := i, row
		g.Go(func() error {
			p, err := applyVector(base, names, row)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}

			v, err := model(gctx, p)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}

			outcomes[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
