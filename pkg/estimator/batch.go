package estimator

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/behaviorplanner/pkg/concurrent"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"go.uber.org/zap"
)

// Candidate. one (trajectory, maneuver) pair proposed by the planner.
type Candidate struct {
	State      CandidateState
	Trajectory da.Trajectory
}

type costJob struct {
	idx       int
	candidate Candidate
}

type costResult struct {
	idx       int
	breakdown CostBreakdown
	panicVal  any
}

// BreakdownAll costs every candidate against the same frozen predictions on the worker pool.
// Results keep the order of candidates. A panic of one candidate is re-raised on the caller's
// goroutine once the pool has drained.
func (e *Estimator) BreakdownAll(ctx context.Context, egoS float64, candidates []Candidate,
	predictions *da.PredictionSet) ([]CostBreakdown, error) {
	if len(candidates) == 0 {
		return []CostBreakdown{}, nil
	}

	workers := min(e.cfg.Workers, len(candidates))
	wp := concurrent.NewWorkerPool[costJob, costResult](workers, len(candidates))
	wp.Start(func(job costJob) (res costResult) {
		res.idx = job.idx
		defer func() {
			if r := recover(); r != nil {
				res.panicVal = r
			}
		}()
		res.breakdown = e.Breakdown(egoS, job.candidate.Trajectory, predictions, job.candidate.State)
		return res
	})

	var ctxErr error
	for i, c := range candidates {
		if util.StopConcurrentOperation(ctx) {
			ctxErr = ctx.Err()
			break
		}
		wp.AddJob(costJob{idx: i, candidate: c})
	}
	wp.Close()
	wp.Wait()

	breakdowns := make([]CostBreakdown, len(candidates))
	var panicked any
	for res := range wp.CollectResults() {
		if res.panicVal != nil && panicked == nil {
			panicked = res.panicVal
		}
		breakdowns[res.idx] = res.breakdown
	}
	if panicked != nil {
		panic(fmt.Sprintf("cost candidate: %v", panicked))
	}
	if ctxErr != nil {
		return nil, ctxErr
	}

	if e.log.Core().Enabled(zap.DebugLevel) {
		for i, bd := range breakdowns {
			e.log.Debug("candidate cost", zap.Int("candidate", i), zap.Any("state", candidates[i].State),
				zap.Bool("feasible", bd.Feasible), zap.Float64("total", bd.Total))
		}
	}
	return breakdowns, nil
}

// CalculateCosts is the batch form of CalculateCost.
func (e *Estimator) CalculateCosts(ctx context.Context, egoS float64, candidates []Candidate,
	predictions *da.PredictionSet) ([]float64, error) {
	breakdowns, err := e.BreakdownAll(ctx, egoS, candidates, predictions)
	if err != nil {
		return nil, err
	}
	costs := make([]float64, len(breakdowns))
	for i, bd := range breakdowns {
		costs[i] = bd.Total
	}
	return costs, nil
}

// Best returns the index of the cheapest feasible breakdown, ties broken by the lower index.
// ok is false when no candidate is feasible.
func Best(breakdowns []CostBreakdown) (idx int, ok bool) {
	idx = -1
	for i, bd := range breakdowns {
		if !bd.Feasible {
			continue
		}
		if idx < 0 || bd.Total < breakdowns[idx].Total {
			idx = i
		}
	}
	return idx, idx >= 0
}
