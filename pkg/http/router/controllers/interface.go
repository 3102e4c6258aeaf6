package controllers

import (
	"context"

	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/estimator"
	"github.com/lintang-b-s/behaviorplanner/pkg/planner"
)

type PlannerService interface {
	Observe(observations []da.Observation) int
	Costs(ctx context.Context, egoS float64, candidates []estimator.Candidate) (*planner.CycleResult, string, error)
	Cycle(ctx context.Context, observations []da.Observation, egoS float64,
		candidates []estimator.Candidate) (*planner.CycleResult, string, error)
	RemoveVehicle(id int) error
	Vehicles() []planner.VehicleState
}
