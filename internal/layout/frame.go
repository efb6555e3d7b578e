package layout

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"

	"areamap/internal/areamap"
	"areamap/internal/geom"
	"areamap/internal/scene"
)

// Measurer reports the rendered size of a text block in screen units.
type Measurer interface {
	MeasureText(s string) orb.Point
}

// Surface receives draw commands. Polylines are given without repeating the
// first point; closed asks the surface to join the last point to the first.
type Surface interface {
	Measurer
	PushClipRect(r Rect)
	PopClipRect()
	Polyline(pts []orb.Point, c colorful.Color, closed bool, width float64)
	Text(pos orb.Point, c colorful.Color, s string)
}

// Player is the live state of the primary player.
type Player struct {
	Position orb.Point // world (x, z)
	Heading  float64   // degrees
}

// Child is the screen layout of one sub-zone.
type Child struct {
	Scene    scene.Record
	Color    colorful.Color
	Outlines []orb.Ring // screen space, closed
	Label    string
	LabelPos orb.Point // top-left of the text block
	HasLabel bool      // false when the child has no outline to centre on
}

// Frame is everything drawn for one area in one pass.
type Frame struct {
	Projection Projection
	Children   []Child
	Anchor     orb.Point // player position on screen
	Marker     []orb.Point
}

// Compute lays out d inside dest. ok is false when the area cannot be
// projected this frame (no children, zero-width or zero-height bounds, or no
// room on screen); nothing should be drawn then.
func Compute(d *areamap.Data, dest Rect, player Player, m Measurer) (Frame, bool) {
	proj, ok := NewProjection(d, dest)
	if !ok {
		return Frame{}, false
	}
	f := Frame{Projection: proj, Children: make([]Child, 0, len(d.Children))}
	for i, c := range d.Children {
		ch := Child{Scene: c, Color: ChildColor(i), Label: Label(d, c)}
		for _, r := range d.WorldBounds[c.ID] {
			ch.Outlines = append(ch.Outlines, proj.Ring(r))
		}
		// centre of the outline box, not of the outline's area
		if b, ok := geom.BoundsOf(ch.Outlines); ok {
			size := m.MeasureText(ch.Label)
			center := b.Center()
			ch.LabelPos = orb.Point{center[0] - size[0]/2, center[1] - size[1]/2}
			ch.HasLabel = true
		}
		f.Children = append(f.Children, ch)
	}
	f.Anchor = proj.ToScreen(player.Position)
	f.Marker = Marker(f.Anchor, player.Heading)
	return f, true
}

// Draw replays the frame onto s, clipped to the destination rectangle. The
// marker is drawn last so it stays on top.
func (f Frame) Draw(s Surface) {
	s.PushClipRect(f.Projection.Dest)
	for _, ch := range f.Children {
		for _, r := range ch.Outlines {
			pts := []orb.Point(r)
			if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
				pts = pts[:len(pts)-1]
			}
			s.Polyline(pts, ch.Color, true, 1)
		}
		if ch.HasLabel {
			s.Text(ch.LabelPos, ch.Color, ch.Label)
		}
	}
	s.Polyline(f.Marker, MarkerColor, true, MarkerWidth)
	s.PopClipRect()
}
