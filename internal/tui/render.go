package tui

import (
	"strings"

	"github.com/paulmach/orb"

	"areamap/internal/layout"
)

// mapRect is the destination rectangle of a w x h cell canvas, in
// micro-pixels.
func mapRect(w, h int) layout.Rect {
	return layout.Rect{Max: orb.Point{float64(w * 2), float64(h * 4)}}
}

// renderMap draws the overlay for the current area onto a braille canvas.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	area, ok := m.currentArea()
	if !ok || m.overlay == nil {
		return blank(w, h, "no catalog loaded: Tab to pick a file, p to paste one")
	}
	if !m.visible.Visible() {
		return blank(w, h, "map hidden: press m to show it")
	}
	if !m.overlay.Draw(area, mapRect(w, h), br) {
		return blank(w, h, "area "+string(area)+" has no drawable sub-zones")
	}
	return strings.Join(br.toLines(), "\n")
}

func blank(w, h int, msg string) string {
	lines := make([]string, h)
	for y := range lines {
		lines[y] = strings.Repeat(" ", w)
	}
	if h > 0 {
		lines[h/2] = dimStyle.Render(msg)
	}
	return strings.Join(lines, "\n")
}

// cellToWorld converts a map cell back to world (x, z) using the same
// projection the overlay drew with.
func (m Model) cellToWorld(cx, cy, w, h int) (orb.Point, bool) {
	d, ok := m.currentData()
	if !ok {
		return orb.Point{}, false
	}
	proj, ok := layout.NewProjection(d, mapRect(w, h))
	if !ok {
		return orb.Point{}, false
	}
	// centre of the cell in micro-pixels
	return proj.ToWorld(orb.Point{float64(cx*2) + 1, float64(cy*4) + 2}), true
}

// sceneAt names the sub-zone under a world point, or "" when there is none.
func (m Model) sceneAt(p orb.Point) string {
	d, ok := m.currentData()
	if !ok {
		return ""
	}
	c, ok := d.ChildAt(p)
	if !ok {
		return ""
	}
	return layout.DisplayName(d.RootName(), c.Name)
}
