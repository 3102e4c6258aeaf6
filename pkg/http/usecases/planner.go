package usecases

import (
	"context"

	"github.com/golang/geo/r2"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/estimator"
	"github.com/lintang-b-s/behaviorplanner/pkg/geo"
	"github.com/lintang-b-s/behaviorplanner/pkg/planner"
	"go.uber.org/zap"
)

type PlannerService struct {
	log    *zap.Logger
	engine PlannerEngine
}

func NewPlannerService(log *zap.Logger, engine PlannerEngine) *PlannerService {
	return &PlannerService{
		log:    log,
		engine: engine,
	}
}

func (ps *PlannerService) Observe(observations []da.Observation) int {
	return ps.engine.Observe(observations...)
}

// Costs evaluates candidates against the tracked vehicles and returns the cycle together with
// the polyline of the cheapest feasible trajectory ("" when none is feasible).
func (ps *PlannerService) Costs(ctx context.Context, egoS float64,
	candidates []estimator.Candidate) (*planner.CycleResult, string, error) {
	res, err := ps.engine.Evaluate(ctx, egoS, candidates)
	if err != nil {
		return nil, "", err
	}
	return res, ps.bestPolyline(res, candidates), nil
}

// Cycle ingests the frame's observations before evaluating candidates.
func (ps *PlannerService) Cycle(ctx context.Context, observations []da.Observation, egoS float64,
	candidates []estimator.Candidate) (*planner.CycleResult, string, error) {
	res, err := ps.engine.Cycle(ctx, observations, egoS, candidates)
	if err != nil {
		return nil, "", err
	}
	return res, ps.bestPolyline(res, candidates), nil
}

func (ps *PlannerService) bestPolyline(res *planner.CycleResult, candidates []estimator.Candidate) string {
	best, ok := res.BestCandidate(candidates)
	if !ok {
		return ""
	}
	return TrajectoryPolyline(best.Trajectory)
}

func (ps *PlannerService) RemoveVehicle(id int) error {
	return ps.engine.RemoveVehicle(id)
}

func (ps *PlannerService) Vehicles() []planner.VehicleState {
	return ps.engine.Vehicles()
}

// TrajectoryPolyline encodes the (s, d) path of a trajectory.
func TrajectoryPolyline(tr da.Trajectory) string {
	points := make([]r2.Point, 0, len(tr))
	for _, snap := range tr {
		points = append(points, r2.Point{X: snap.S, Y: snap.D})
	}
	return geo.EncodePolyline(points)
}
