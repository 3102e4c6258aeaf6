package costfunction

import (
	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
)

// CostFunction is one heuristic of the battery. Compute must be pure and return a raw cost
// in [-1, 1]; the priority tier comes from the weight it is paired with.
type CostFunction interface {
	Name() string
	Compute(trajectory da.Trajectory, predictions *da.PredictionSet, data da.TrajectoryData) float64
}

type WeightedCost struct {
	Fn     CostFunction
	Weight float64
}

// Battery. ordered list of weighted heuristics, highest priority first.
type Battery []WeightedCost

func NewBattery(cfg config.Config) Battery {
	return Battery{
		{Fn: NewCollisionCost(cfg), Weight: cfg.CollisionWeight},
		{Fn: NewBufferCost(cfg), Weight: cfg.DangerWeight},
		{Fn: NewInefficiencyCost(cfg), Weight: cfg.EfficiencyWeight},
		{Fn: NewChangeLaneCost(cfg), Weight: cfg.ComfortWeight},
		{Fn: NewFreeLineCost(cfg), Weight: cfg.ComfortWeight},
	}
}

// Term. contribution of one heuristic to a total cost.
type Term struct {
	Name     string  `json:"name"`
	Raw      float64 `json:"raw"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// Evaluate runs every heuristic and returns the weighted sum together with each term.
func (b Battery) Evaluate(trajectory da.Trajectory, predictions *da.PredictionSet,
	data da.TrajectoryData) (float64, []Term) {
	total := 0.0
	terms := make([]Term, 0, len(b))
	for _, wc := range b {
		raw := wc.Fn.Compute(trajectory, predictions, data)
		weighted := wc.Weight * raw
		total += weighted
		terms = append(terms, Term{
			Name:     wc.Fn.Name(),
			Raw:      raw,
			Weight:   wc.Weight,
			Weighted: weighted,
		})
	}
	return total, terms
}
