package layout

import (
	"math"

	"github.com/paulmach/orb"
)

// MarkerWidth is the stroke width of the player arrow.
const MarkerWidth = 2.0

// Arrow is the player marker in screen units, apex at -Y (forward).
var Arrow = [4]orb.Point{
	{0, -8},
	{-4, 8},
	{0, 2},
	{4, 8},
}

// Marker rotates Arrow by headingDeg around the origin and moves it to
// anchor.
func Marker(anchor orb.Point, headingDeg float64) []orb.Point {
	sin, cos := math.Sincos(headingDeg * math.Pi / 180)
	out := make([]orb.Point, len(Arrow))
	for i, p := range Arrow {
		rx := p[0]*cos - p[1]*sin
		ry := p[0]*sin + p[1]*cos
		out[i] = orb.Point{anchor[0] + rx, anchor[1] + ry}
	}
	return out
}
