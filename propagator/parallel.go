package propagator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lukaszgryglicki/detnav/internal/navigation"
	"github.com/lukaszgryglicki/detnav/stepper"
)

// PropagateAll runs p.Run for every track concurrently, each in its own
// navigator State starting in startVolumes[i]. The Propagation's Navigator
// is read-only over a shared geometry and safe to use from every goroutine
// at once; each track gets its own State so there is nothing to guard with
// a lock. Results preserve the input order regardless of completion order.
func PropagateAll(ctx context.Context, p *Propagation, tracks []stepper.Track, startVolumes []int) ([]Result, error) {
	results := make([]Result, len(tracks))

	g, _ := errgroup.WithContext(ctx)
	for i := range tracks {
		i := i
		g.Go(func() error {
			state := navigation.NewState(startVolumes[i])
			results[i] = p.Run(tracks[i], state)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
