package planner

import (
	"context"
	"sync"

	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/estimator"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"github.com/lintang-b-s/behaviorplanner/pkg/vehicle"
	"go.uber.org/zap"
)

// Planner runs planning cycles: ingest the frame's observations, freeze one PredictionSet, cost
// every candidate against it and pick the cheapest. Cycles are serialized.
type Planner struct {
	mu        sync.Mutex
	cfg       config.Config
	fleet     *vehicle.Fleet
	estimator *estimator.Estimator
	log       *zap.Logger
}

func NewPlanner(cfg config.Config, log *zap.Logger) *Planner {
	return &Planner{
		cfg:       cfg,
		fleet:     vehicle.NewFleet(cfg, log),
		estimator: estimator.NewEstimator(cfg, log),
		log:       log,
	}
}

func (p *Planner) Config() config.Config {
	return p.cfg
}

// CycleResult. outcome of one planning cycle. Best is -1 when no candidate is feasible.
type CycleResult struct {
	Costs       []float64
	Breakdowns  []estimator.CostBreakdown
	Best        int
	Predictions *da.PredictionSet
}

// BestCandidate returns the cheapest feasible candidate of the cycle.
func (cr *CycleResult) BestCandidate(candidates []estimator.Candidate) (estimator.Candidate, bool) {
	if cr.Best < 0 || cr.Best >= len(candidates) {
		return estimator.Candidate{}, false
	}
	return candidates[cr.Best], true
}

// VehicleState. read-only view of a tracked vehicle.
type VehicleState struct {
	ID           int     `json:"id"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	S            float64 `json:"s"`
	D            float64 `json:"d"`
	Lane         int     `json:"lane"`
	Speed        float64 `json:"speed"`
	Yaw          float64 `json:"yaw"`
	HeadingDeg   float64 `json:"heading_deg"`
	Observations int     `json:"observations"`
	Predictable  bool    `json:"predictable"`
}

// Observe feeds the observations to their trackers and returns the number of tracked vehicles.
func (p *Planner) Observe(observations ...da.Observation) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.observe(observations)
}

func (p *Planner) observe(observations []da.Observation) int {
	for _, obs := range observations {
		p.fleet.Observe(obs)
	}
	return p.fleet.Len()
}

// Evaluate costs candidates against the current state of the fleet.
func (p *Planner) Evaluate(ctx context.Context, egoS float64, candidates []estimator.Candidate) (*CycleResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evaluate(ctx, egoS, candidates)
}

// Cycle is one full planning step: observations are ingested, vehicles out of sensor range are
// dropped and candidates are costed.
func (p *Planner) Cycle(ctx context.Context, observations []da.Observation, egoS float64,
	candidates []estimator.Candidate) (*CycleResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.observe(observations)
	p.fleet.Prune(egoS, p.cfg.SensorRange)
	return p.evaluate(ctx, egoS, candidates)
}

func (p *Planner) evaluate(ctx context.Context, egoS float64, candidates []estimator.Candidate) (*CycleResult, error) {
	predictions := p.fleet.PredictionSet(egoS, p.cfg.PredictionHorizon)

	breakdowns, err := p.estimator.BreakdownAll(ctx, egoS, candidates, predictions)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "planning cycle interrupted")
	}

	costs := make([]float64, len(breakdowns))
	for i, bd := range breakdowns {
		costs[i] = bd.Total
	}
	best, ok := estimator.Best(breakdowns)
	if ok {
		p.log.Debug("planning cycle done", zap.Float64("ego_s", egoS), zap.Int("candidates", len(candidates)),
			zap.Int("vehicles", predictions.Len()), zap.Any("best", candidates[best].State),
			zap.Float64("cost", costs[best]))
	} else {
		p.log.Warn("no feasible candidate", zap.Float64("ego_s", egoS), zap.Int("candidates", len(candidates)))
	}

	return &CycleResult{
		Costs:       costs,
		Breakdowns:  breakdowns,
		Best:        best,
		Predictions: predictions,
	}, nil
}

// RemoveVehicle stops tracking vehicle id.
func (p *Planner) RemoveVehicle(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.fleet.Remove(id) {
		return util.WrapErrorf(nil, util.ErrNotFound, "vehicle %d is not tracked", id)
	}
	return nil
}

// Vehicles lists the tracked vehicles ordered by id.
func (p *Planner) Vehicles() []VehicleState {
	p.mu.Lock()
	defer p.mu.Unlock()

	trs := p.fleet.Trackers()
	states := make([]VehicleState, 0, len(trs))
	for _, tr := range trs {
		states = append(states, VehicleState{
			ID:           tr.ID(),
			X:            tr.X(),
			Y:            tr.Y(),
			S:            tr.S(),
			D:            tr.D(),
			Lane:         tr.Lane(),
			Speed:        tr.Speed(),
			Yaw:          tr.Yaw(),
			HeadingDeg:   util.RadiansToDegree(tr.Yaw()),
			Observations: tr.Observations(),
			Predictable:  tr.ShouldPredict(),
		})
	}
	return states
}
