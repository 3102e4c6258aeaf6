package main

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/behaviorplanner/pkg/planner"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"go.uber.org/zap"
)

// CycleSummary. decision of one replayed cycle.
type CycleSummary struct {
	Cycle      int
	Best       int
	Maneuver   string
	Cost       float64
	Feasible   bool
	LaneChange bool
}

// Replay runs the scenario's cycles in order and logs a cost table per cycle.
func Replay(ctx context.Context, p *planner.Planner, sc *Scenario, log *zap.Logger) ([]CycleSummary, error) {
	summary := make([]CycleSummary, 0, len(sc.Cycles))
	for i, c := range sc.Cycles {
		candidates := c.candidates()
		res, err := p.Cycle(ctx, c.observations(), c.EgoS, candidates)
		if err != nil {
			return summary, fmt.Errorf("cycle %d: %w", i, err)
		}

		for j, bd := range res.Breakdowns {
			fields := []zap.Field{
				zap.Int("cycle", i),
				zap.Stringer("maneuver", c.Candidates[j].Maneuver),
				zap.Bool("feasible", bd.Feasible),
				zap.Float64("total", util.RoundFloat(bd.Total, 3)),
				zap.Bool("best", j == res.Best),
			}
			for _, term := range bd.Terms {
				fields = append(fields, zap.Float64(term.Name, util.RoundFloat(term.Weighted, 3)))
			}
			log.Info("candidate", fields...)
		}

		s := CycleSummary{Cycle: i, Best: res.Best}
		if best, ok := res.BestCandidate(candidates); ok {
			s.Maneuver = c.Candidates[res.Best].Maneuver.String()
			s.Cost = res.Costs[res.Best]
			s.Feasible = true
			s.LaneChange = best.State.IsLaneChange()
		}
		log.Info("cycle decision", zap.Int("cycle", i), zap.Float64("ego_s", c.EgoS),
			zap.Int("vehicles", res.Predictions.Len()), zap.String("maneuver", s.Maneuver),
			zap.Float64("cost", s.Cost))
		summary = append(summary, s)
	}
	return summary, nil
}
