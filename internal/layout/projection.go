// Package layout turns an area map into screen-space draw commands: a
// uniform world-to-screen projection, per-child outlines and labels, and the
// rotated player marker.
package layout

import (
	"math"

	"github.com/paulmach/orb"

	"areamap/internal/areamap"
)

// Padding is the margin kept between the destination rectangle and the map.
const Padding = 4.0

// Rect is a screen rectangle; Min is the top-left corner, Max the
// bottom-right. Screen Y grows downwards.
type Rect struct {
	Min, Max orb.Point
}

func (r Rect) Dx() float64 { return r.Max[0] - r.Min[0] }
func (r Rect) Dy() float64 { return r.Max[1] - r.Min[1] }

// Inset shrinks r by pad on every side.
func (r Rect) Inset(pad float64) Rect {
	return Rect{
		Min: orb.Point{r.Min[0] + pad, r.Min[1] + pad},
		Max: orb.Point{r.Max[0] - pad, r.Max[1] - pad},
	}
}

// Empty reports whether r has no positive area.
func (r Rect) Empty() bool { return !(r.Dx() > 0 && r.Dy() > 0) }

// Projection maps world (x, z) onto the screen with one scale for both axes.
// World +Z points up the screen.
type Projection struct {
	Dest  Rect // clip rectangle, unpadded
	Map   Rect // Dest less Padding
	Scale float64
	MinX  float64
	MinZ  float64
}

// NewProjection fits the whole area into dest. ok is false when the area has
// no usable bound or the padded rectangle is empty.
func NewProjection(d *areamap.Data, dest Rect) (Projection, bool) {
	b, ok := d.Bound()
	if !ok {
		return Projection{}, false
	}
	m := dest.Inset(Padding)
	if m.Empty() {
		return Projection{}, false
	}
	scale := math.Min(m.Dx()/(b.Max[0]-b.Min[0]), m.Dy()/(b.Max[1]-b.Min[1]))
	return Projection{Dest: dest, Map: m, Scale: scale, MinX: b.Min[0], MinZ: b.Min[1]}, true
}

// ToScreen maps a world point.
func (p Projection) ToScreen(w orb.Point) orb.Point {
	return orb.Point{
		p.Map.Min[0] + p.Scale*(w[0]-p.MinX),
		p.Map.Max[1] - p.Scale*(w[1]-p.MinZ),
	}
}

// ToWorld is the inverse of ToScreen.
func (p Projection) ToWorld(s orb.Point) orb.Point {
	return orb.Point{
		p.MinX + (s[0]-p.Map.Min[0])/p.Scale,
		p.MinZ + (p.Map.Max[1]-s[1])/p.Scale,
	}
}

// Ring maps every vertex of a world ring.
func (p Projection) Ring(r orb.Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, w := range r {
		out[i] = p.ToScreen(w)
	}
	return out
}
