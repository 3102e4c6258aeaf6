package datastructure

import (
	"iter"
	"sort"
)

// Prediction. projected state of a tracked vehicle Step intervals (T seconds) ahead.
type Prediction struct {
	Step int     `json:"step"`
	T    float64 `json:"t"`
	S    float64 `json:"s"`
	D    float64 `json:"d"`
	Lane int     `json:"lane"`
}

type VehiclePredictions struct {
	ID          int          `json:"id"`
	Predictions []Prediction `json:"predictions"`
}

// PredictionSet. predictions of every relevant vehicle, ordered by vehicle id.
// A set is frozen once built: all candidate maneuvers of a cycle are costed against the same one.
type PredictionSet struct {
	vehicles []VehiclePredictions
}

func NewPredictionSet(capacity int) *PredictionSet {
	return &PredictionSet{
		vehicles: make([]VehiclePredictions, 0, capacity),
	}
}

// Add inserts or replaces the predictions of vehicle id, keeping the id order.
func (ps *PredictionSet) Add(id int, predictions []Prediction) {
	i := ps.search(id)
	if i < len(ps.vehicles) && ps.vehicles[i].ID == id {
		ps.vehicles[i].Predictions = predictions
		return
	}
	ps.vehicles = append(ps.vehicles, VehiclePredictions{})
	copy(ps.vehicles[i+1:], ps.vehicles[i:])
	ps.vehicles[i] = VehiclePredictions{ID: id, Predictions: predictions}
}

func (ps *PredictionSet) search(id int) int {
	return sort.Search(len(ps.vehicles), func(i int) bool {
		return ps.vehicles[i].ID >= id
	})
}

func (ps *PredictionSet) Get(id int) ([]Prediction, bool) {
	if ps == nil {
		return nil, false
	}
	i := ps.search(id)
	if i < len(ps.vehicles) && ps.vehicles[i].ID == id {
		return ps.vehicles[i].Predictions, true
	}
	return nil, false
}

func (ps *PredictionSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.vehicles)
}

func (ps *PredictionSet) IDs() []int {
	if ps == nil {
		return nil
	}
	ids := make([]int, len(ps.vehicles))
	for i, v := range ps.vehicles {
		ids[i] = v.ID
	}
	return ids
}

// All iterates vehicles in id order.
func (ps *PredictionSet) All() iter.Seq2[int, []Prediction] {
	return func(yield func(int, []Prediction) bool) {
		if ps == nil {
			return
		}
		for _, v := range ps.vehicles {
			if !yield(v.ID, v.Predictions) {
				return
			}
		}
	}
}

// Lane. current lane of vehicle id: the lane of its first prediction.
// Vehicles without predictions are in no lane.
func (ps *PredictionSet) Lane(id int) (int, bool) {
	preds, ok := ps.Get(id)
	if !ok || len(preds) == 0 {
		return 0, false
	}
	return preds[0].Lane, true
}

// Vehicles returns a copy of the entries, in id order.
func (ps *PredictionSet) Vehicles() []VehiclePredictions {
	if ps == nil {
		return nil
	}
	out := make([]VehiclePredictions, len(ps.vehicles))
	copy(out, ps.vehicles)
	return out
}
