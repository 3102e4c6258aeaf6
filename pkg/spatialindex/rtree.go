package spatialindex

import (
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// lateral extent of a search box; covers every lane of any road we plan on
const maxLateralOffset = 1000.0

type Rtree struct {
	tr *rtree.RTreeG[VehicleEntry]
}

// VehicleEntry. a tracked vehicle indexed by its Frenet position.
type VehicleEntry struct {
	id int
	s  float64
	d  float64
}

func NewVehicleEntry(id int, s, d float64) VehicleEntry {
	return VehicleEntry{
		id: id,
		s:  s,
		d:  d,
	}
}

func (ve VehicleEntry) GetId() int {
	return ve.id
}

func (ve VehicleEntry) GetS() float64 {
	return ve.s
}

func (ve VehicleEntry) GetD() float64 {
	return ve.d
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[VehicleEntry]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every entry as a point (s, d)
func (rt *Rtree) Build(entries []VehicleEntry, log *zap.Logger) {
	for _, e := range entries {
		rt.Insert(e)
	}
	log.Debug("vehicle spatial index built.", zap.Int("vehicles", rt.tr.Len()))
}

func (rt *Rtree) Insert(e VehicleEntry) {
	p := [2]float64{e.s, e.d}
	rt.tr.Insert(p, p, e)
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRange returns every vehicle whose longitudinal position lies within
// [s - radius, s + radius], on any lane.
func (rt *Rtree) SearchWithinRange(s, radius float64) []VehicleEntry {
	results := make([]VehicleEntry, 0, 10)
	rt.tr.Search([2]float64{s - radius, -maxLateralOffset}, [2]float64{s + radius, maxLateralOffset},
		func(min, max [2]float64, data VehicleEntry) bool {
			results = append(results, data)
			return true
		})
	return results
}
