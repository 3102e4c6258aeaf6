package geo

import (
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-polyline"
)

// EncodePolyline packs points with the google polyline algorithm. X is encoded first, values
// keep five decimals.
func EncodePolyline(points []r2.Point) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.X, p.Y})
	}
	return string(polyline.EncodeCoords(coords))
}
