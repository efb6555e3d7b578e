// Package overlay runs the area map once per rendered frame: it asks whether
// the map is visible, fetches the cached geometry for the current area, lays
// it out and draws it.
//
// An Overlay is meant to be driven from a single UI goroutine, one frame at a
// time. The cache it reads is safe to share, but the catalog behind it is
// read without locking while a map is being built.
package overlay

import (
	"log"

	"github.com/paulmach/orb"

	"areamap/internal/areamap"
	"areamap/internal/layout"
	"areamap/internal/scene"
)

// Visibility decides per frame whether the overlay is shown.
type Visibility interface {
	Visible() bool
}

// Always is a Visibility that is always on.
type Always struct{}

func (Always) Visible() bool { return true }

// Toggle is a Visibility flipped by user input.
type Toggle struct {
	On bool
}

func (t *Toggle) Visible() bool { return t.On }

// Flip switches the overlay and returns the new state.
func (t *Toggle) Flip() bool {
	t.On = !t.On
	return t.On
}

// PlayerSource reports the primary player's live state.
type PlayerSource interface {
	Position() orb.Point
	Heading() float64
}

// Overlay ties the cache, the visibility gate and the player together.
type Overlay struct {
	Cache      *areamap.Cache
	Visibility Visibility
	Player     PlayerSource

	skipped map[scene.AreaID]bool
}

func New(cache *areamap.Cache, vis Visibility, player PlayerSource) *Overlay {
	return &Overlay{Cache: cache, Visibility: vis, Player: player, skipped: map[scene.AreaID]bool{}}
}

// Frame lays out area inside dest. ok is false when the overlay is hidden or
// the area has nothing to show.
func (o *Overlay) Frame(area scene.AreaID, dest layout.Rect, m layout.Measurer) (layout.Frame, *areamap.Data, bool) {
	if o.Visibility != nil && !o.Visibility.Visible() {
		return layout.Frame{}, nil, false
	}
	d := o.Cache.GetOrBuild(area)
	var p layout.Player
	if o.Player != nil {
		p = layout.Player{Position: o.Player.Position(), Heading: o.Player.Heading()}
	}
	f, ok := layout.Compute(d, dest, p, m)
	if !ok {
		if !o.skipped[area] {
			if o.skipped == nil {
				o.skipped = map[scene.AreaID]bool{}
			}
			log.Printf("overlay: area %q has no drawable bounds (%d children)", area, len(d.Children))
			o.skipped[area] = true
		}
		return layout.Frame{}, d, false
	}
	delete(o.skipped, area)
	return f, d, true
}

// Draw renders one frame of area onto s and reports whether anything was
// drawn.
func (o *Overlay) Draw(area scene.AreaID, dest layout.Rect, s layout.Surface) bool {
	f, _, ok := o.Frame(area, dest, s)
	if !ok {
		return false
	}
	f.Draw(s)
	return true
}
