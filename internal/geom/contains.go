package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Contains reports whether p lies inside rings under the non-zero rule, with
// counter-clockwise rings adding and clockwise rings (holes) subtracting.
func Contains(rings []orb.Ring, p orb.Point) bool {
	w := 0
	for _, r := range rings {
		if !r.Bound().Contains(p) || !planar.RingContains(r, p) {
			continue
		}
		if r.Orientation() == orb.CCW {
			w++
		} else {
			w--
		}
	}
	return w != 0
}
