package controllers

import (
	"fmt"

	"github.com/lintang-b-s/behaviorplanner/pkg"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/estimator"
	"github.com/lintang-b-s/behaviorplanner/pkg/planner"
)

type observationRequest struct {
	ID int     `json:"id" validate:"gte=0"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
	S  float64 `json:"s"`
	D  float64 `json:"d"`
	Dt float64 `json:"dt" validate:"gte=0"`
}

func (o observationRequest) ToObservation() da.Observation {
	return da.NewObservation(o.ID, o.X, o.Y, o.VX, o.VY, o.S, o.D, o.Dt)
}

type observationsRequest struct {
	Observations []observationRequest `json:"observations" validate:"required,dive"`
}

func toObservations(reqs []observationRequest) []da.Observation {
	obs := make([]da.Observation, 0, len(reqs))
	for _, o := range reqs {
		obs = append(obs, o.ToObservation())
	}
	return obs
}

type observationsResponse struct {
	Accepted int `json:"accepted"`
	Tracked  int `json:"tracked"`
}

type snapshotRequest struct {
	Step  int     `json:"step" validate:"gte=0"`
	S     float64 `json:"s"`
	D     float64 `json:"d"`
	Speed float64 `json:"speed" validate:"gte=0"`
	Lane  int     `json:"lane" validate:"gte=0"`
}

type candidateRequest struct {
	// maneuver name: KL, PLCL, PLCR, LCL or LCR
	Maneuver   pkg.Maneuver      `json:"maneuver"`
	Trajectory []snapshotRequest `json:"trajectory" validate:"dive"`
}

type costsRequest struct {
	EgoS       float64            `json:"ego_s"`
	Candidates []candidateRequest `json:"candidates" validate:"required,min=1,dive"`
}

type cycleRequest struct {
	Observations []observationRequest `json:"observations" validate:"dive"`
	EgoS         float64              `json:"ego_s"`
	Candidates   []candidateRequest   `json:"candidates" validate:"required,min=1,dive"`
}

func toCandidates(reqs []candidateRequest) []estimator.Candidate {
	cands := make([]estimator.Candidate, 0, len(reqs))
	for _, c := range reqs {
		tr := make(da.Trajectory, 0, len(c.Trajectory))
		for _, s := range c.Trajectory {
			tr = append(tr, da.Snapshot{Step: s.Step, S: s.S, D: s.D, Speed: s.Speed, Lane: s.Lane})
		}
		cands = append(cands, estimator.Candidate{State: c.Maneuver, Trajectory: tr})
	}
	return cands
}

type costsResponse struct {
	Costs          []float64                 `json:"costs"`
	Breakdowns     []estimator.CostBreakdown `json:"breakdowns"`
	Best           int                       `json:"best"`
	BestManeuver   string                    `json:"best_maneuver,omitempty"`
	BestTrajectory string                    `json:"best_trajectory,omitempty"`
	Vehicles       int                       `json:"vehicles"`
}

func NewCostsResponse(res *planner.CycleResult, candidates []estimator.Candidate, line string) costsResponse {
	resp := costsResponse{
		Costs:          res.Costs,
		Breakdowns:     res.Breakdowns,
		Best:           res.Best,
		BestTrajectory: line,
		Vehicles:       res.Predictions.Len(),
	}
	if best, ok := res.BestCandidate(candidates); ok {
		resp.BestManeuver = fmt.Sprint(best.State)
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
