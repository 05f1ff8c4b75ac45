package eip152

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const parallelMinInputs = 4

func shouldParallel(inputs int) bool {
	if inputs < parallelMinInputs {
		return false
	}
	return runtime.GOMAXPROCS(0) > 1
}

// RunBatch runs every input independently and returns the outputs in input
// order. The first failing input aborts the batch and its index is reported
// in the error.
func (p *Precompile) RunBatch(ctx context.Context, inputs [][]byte) ([][]byte, error) {
	out := make([][]byte, len(inputs))
	if !shouldParallel(len(inputs)) {
		for i, input := range inputs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := p.Run(input)
			if err != nil {
				return nil, errors.Wrapf(err, "input %d", i)
			}
			out[i] = res
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.Run(input)
			if err != nil {
				return errors.Wrapf(err, "input %d", i)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
