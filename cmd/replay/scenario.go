package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lintang-b-s/behaviorplanner/pkg"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/estimator"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
)

// Scenario. recorded planning cycles replayed in order against one planner.
type Scenario struct {
	Profile string  `json:"profile"`
	Cycles  []Cycle `json:"cycles" validate:"required,min=1,dive"`
}

type Cycle struct {
	EgoS         float64             `json:"ego_s"`
	Observations []ObservationRecord `json:"observations" validate:"dive"`
	Candidates   []CandidateRecord   `json:"candidates" validate:"required,min=1,dive"`
}

type ObservationRecord struct {
	ID int     `json:"id" validate:"gte=0"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
	S  float64 `json:"s"`
	D  float64 `json:"d"`
	Dt float64 `json:"dt" validate:"gte=0"`
}

type CandidateRecord struct {
	Maneuver   pkg.Maneuver  `json:"maneuver"`
	Trajectory []da.Snapshot `json:"trajectory"`
}

func (c Cycle) observations() []da.Observation {
	obs := make([]da.Observation, 0, len(c.Observations))
	for _, o := range c.Observations {
		obs = append(obs, da.NewObservation(o.ID, o.X, o.Y, o.VX, o.VY, o.S, o.D, o.Dt))
	}
	return obs
}

func (c Cycle) candidates() []estimator.Candidate {
	cands := make([]estimator.Candidate, 0, len(c.Candidates))
	for _, cand := range c.Candidates {
		cands = append(cands, estimator.Candidate{State: cand.Maneuver, Trajectory: cand.Trajectory})
	}
	return cands
}

func ReadScenario(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "malformed scenario")
	}
	if err := util.ValidateStruct(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func ReadScenarioFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()
	return ReadScenario(f)
}
