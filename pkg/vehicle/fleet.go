package vehicle

import (
	"math"
	"sort"

	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/spatialindex"
	"go.uber.org/zap"
)

// Fleet keeps one Tracker per observed vehicle id. It is not safe for concurrent use.
// Vehicles leaving the sensor range are dropped by the owner through Remove.
type Fleet struct {
	cfg      config.Config
	log      *zap.Logger
	trackers map[int]*Tracker
}

func NewFleet(cfg config.Config, log *zap.Logger) *Fleet {
	return &Fleet{
		cfg:      cfg,
		log:      log,
		trackers: make(map[int]*Tracker),
	}
}

// Observe feeds obs to the tracker of its vehicle, creating the tracker on first sight.
func (f *Fleet) Observe(obs da.Observation) *Tracker {
	tr, ok := f.trackers[obs.ID()]
	if !ok {
		tr = NewTracker(obs.ID(), f.cfg)
		f.trackers[obs.ID()] = tr
		f.log.Debug("tracking new vehicle", zap.Int("id", obs.ID()), zap.Float64("s", obs.S()),
			zap.Float64("d", obs.D()))
	}
	tr.UpdateWithVelocity(obs.X(), obs.Y(), obs.VX(), obs.VY(), obs.S(), obs.D(), obs.Dt())
	return tr
}

func (f *Fleet) Get(id int) (*Tracker, bool) {
	tr, ok := f.trackers[id]
	return tr, ok
}

func (f *Fleet) Remove(id int) bool {
	if _, ok := f.trackers[id]; !ok {
		return false
	}
	delete(f.trackers, id)
	return true
}

func (f *Fleet) Len() int {
	return len(f.trackers)
}

// Prune drops the trackers farther than maxDistance from egoS along the road and returns
// their ids in ascending order.
func (f *Fleet) Prune(egoS, maxDistance float64) []int {
	removed := make([]int, 0)
	for id, tr := range f.trackers {
		if math.Abs(tr.S()-egoS) > maxDistance {
			delete(f.trackers, id)
			removed = append(removed, id)
		}
	}
	sort.Ints(removed)
	if len(removed) > 0 {
		f.log.Debug("pruned vehicles out of range", zap.Ints("ids", removed))
	}
	return removed
}

// Trackers returns every tracker ordered by vehicle id.
func (f *Fleet) Trackers() []*Tracker {
	trs := make([]*Tracker, 0, len(f.trackers))
	for _, tr := range f.trackers {
		trs = append(trs, tr)
	}
	sort.Slice(trs, func(i, j int) bool {
		return trs[i].ID() < trs[j].ID()
	})
	return trs
}

// PredictionSet freezes the predictions of every vehicle within the sensor range of egoS.
// Vehicles seen too few times contribute an empty prediction sequence.
func (f *Fleet) PredictionSet(egoS float64, horizon int) *da.PredictionSet {
	rt := spatialindex.NewRtree()
	entries := make([]spatialindex.VehicleEntry, 0, len(f.trackers))
	for id, tr := range f.trackers {
		entries = append(entries, spatialindex.NewVehicleEntry(id, tr.S(), tr.D()))
	}
	rt.Build(entries, f.log)

	nearby := rt.SearchWithinRange(egoS, f.cfg.SensorRange)
	ps := da.NewPredictionSet(len(nearby))
	for _, e := range nearby {
		ps.Add(e.GetId(), f.trackers[e.GetId()].Predictions(horizon))
	}

	f.log.Debug("prediction set built", zap.Int("tracked", len(f.trackers)),
		zap.Int("relevant", ps.Len()), zap.Int("horizon", horizon))
	return ps
}
