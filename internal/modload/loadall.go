package modload

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LoadAll discovers every module under root and loads each one. Module
// directories are independent of each other, so loads run concurrently
// (bounded by GOMAXPROCS); the duplicate-name check inside a single
// module stays deterministic because LoadModule always walks that
// module's own FilePaths in sorted order regardless of scheduling.
// Results are returned in the same order DiscoverModules produced, i.e.
// sorted by directory.
func LoadAll(ctx context.Context, root string) ([]Result, error) {
	descriptors, err := DiscoverModules(root)
	if err != nil {
		return nil, err
	}
	if len(descriptors) == 0 {
		return nil, nil
	}

	results := make([]Result, len(descriptors))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(descriptors)))

	for i, desc := range descriptors {
		g.Go(func(i int, desc Descriptor) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = LoadModule(desc)
				return nil
			}
		}(i, desc))
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
