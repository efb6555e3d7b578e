package geom

import "github.com/paulmach/orb"

// RectRing returns the corners of b as a closed ring in the order
// (minX,minZ), (maxX,minZ), (maxX,maxZ), (minX,maxZ).
func RectRing(b orb.Bound) orb.Ring {
	return orb.Ring{
		{b.Min[0], b.Min[1]},
		{b.Max[0], b.Min[1]},
		{b.Max[0], b.Max[1]},
		{b.Min[0], b.Max[1]},
		{b.Min[0], b.Min[1]},
	}
}

// BoundsOf returns the tight box around every vertex of polys.
// ok is false when there are no vertices at all.
func BoundsOf(polys []orb.Ring) (b orb.Bound, ok bool) {
	for _, ring := range polys {
		for _, p := range ring {
			if !ok {
				b = orb.Bound{Min: p, Max: p}
				ok = true
				continue
			}
			if p[0] < b.Min[0] {
				b.Min[0] = p[0]
			}
			if p[1] < b.Min[1] {
				b.Min[1] = p[1]
			}
			if p[0] > b.Max[0] {
				b.Max[0] = p[0]
			}
			if p[1] > b.Max[1] {
				b.Max[1] = p[1]
			}
		}
	}
	return b, ok
}

// normalize orders the corners of b so that Min <= Max on both axes.
func normalize(b orb.Bound) orb.Bound {
	if b.Min[0] > b.Max[0] {
		b.Min[0], b.Max[0] = b.Max[0], b.Min[0]
	}
	if b.Min[1] > b.Max[1] {
		b.Min[1], b.Max[1] = b.Max[1], b.Min[1]
	}
	return b
}
