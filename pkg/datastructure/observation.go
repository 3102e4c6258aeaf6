package datastructure

// Observation. one parsed sensor-fusion tuple of a tracked vehicle for one control cycle.
type Observation struct {
	id int
	x  float64
	y  float64
	vx float64
	vy float64
	s  float64
	d  float64
	dt float64 // seconds since the previous frame
}

func NewObservation(id int, x, y, vx, vy, s, d, dt float64) Observation {
	return Observation{
		id: id,
		x:  x,
		y:  y,
		vx: vx,
		vy: vy,
		s:  s,
		d:  d,
		dt: dt,
	}
}

func (o Observation) ID() int {
	return o.id
}

func (o Observation) X() float64 {
	return o.x
}

func (o Observation) Y() float64 {
	return o.y
}

func (o Observation) VX() float64 {
	return o.vx
}

func (o Observation) VY() float64 {
	return o.vy
}

func (o Observation) S() float64 {
	return o.s
}

func (o Observation) D() float64 {
	return o.d
}

func (o Observation) Dt() float64 {
	return o.dt
}
