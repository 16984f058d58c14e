package relief

import (
	"golang.org/x/sync/errgroup"
)

// bands per worker, so a slow band doesn't stall the others for long
const bandsPerWorker = 4

// forEachRow calls fn for every row in [0, height), spread over workers goroutines
// in disjoint bands. fn must only write output belonging to its row.
func forEachRow(height, workers int, fn func(y int)) {
	if height <= 0 {
		return
	}
	if workers <= 1 || height == 1 {
		for y := 0; y < height; y++ {
			fn(y)
		}
		return
	}

	band := (height + workers*bandsPerWorker - 1) / (workers * bandsPerWorker)

	var g errgroup.Group
	g.SetLimit(workers)

	for start := 0; start < height; start += band {
		start, end := start, min(start+band, height)
		g.Go(func() error {
			for y := start; y < end; y++ {
				fn(y)
			}
			return nil
		})
	}

	_ = g.Wait()
}
