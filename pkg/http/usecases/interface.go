package usecases

import (
	"context"

	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/estimator"
	"github.com/lintang-b-s/behaviorplanner/pkg/planner"
)

type PlannerEngine interface {
	Observe(observations ...da.Observation) int
	Evaluate(ctx context.Context, egoS float64, candidates []estimator.Candidate) (*planner.CycleResult, error)
	Cycle(ctx context.Context, observations []da.Observation, egoS float64,
		candidates []estimator.Candidate) (*planner.CycleResult, error)
	RemoveVehicle(id int) error
	Vehicles() []planner.VehicleState
}
