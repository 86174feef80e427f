package routingalgorithm

import (
	"context"
	"runtime"

	"github.com/lintang-b-s/modalroute/pkg/concurrent"
	"github.com/lintang-b-s/modalroute/pkg/datastructure"
)

// ShortestPathManyToMany runs one ShortestPath per (source, destination) pair on a worker
// pool. Queries only read the graph so they run in parallel without locking.
func (rt *RouteAlgorithm) ShortestPathManyToMany(ctx context.Context, from []int32, to []int32,
	mode datastructure.Mode) (map[int32]map[int32]datastructure.PathResult, error) {

	results := make(map[int32]map[int32]datastructure.PathResult, len(from))
	numJobs := len(from) * len(to)
	if numJobs == 0 {
		return results, nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > numJobs {
		numWorkers = numJobs
	}

	workers := concurrent.NewWorkerPool[concurrent.ShortestPathParam, datastructure.SPSingleResultResult](numWorkers, numJobs)
	workers.Start(func(job concurrent.ShortestPathParam) datastructure.SPSingleResultResult {
		return datastructure.SPSingleResultResult{
			Source: job.From,
			Dest:   job.To,
			Result: rt.ShortestPath(job.From, job.To, mode),
		}
	})

	var dispatchErr error
	id := 0
dispatch:
	for _, s := range from {
		for _, d := range to {
			select {
			case <-ctx.Done():
				dispatchErr = ctx.Err()
				break dispatch
			default:
			}
			workers.AddJob(concurrent.NewJob(id, concurrent.NewShortestPathParam(s, d)))
			id++
		}
	}
	workers.Close()

	for res := range workers.CollectResults() {
		if _, ok := results[res.Source]; !ok {
			results[res.Source] = make(map[int32]datastructure.PathResult, len(to))
		}
		results[res.Source][res.Dest] = res.Result
	}

	if dispatchErr != nil {
		return nil, dispatchErr
	}
	return results, nil
}
