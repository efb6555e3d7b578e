// Package areamap derives the overview geometry of an area from its
// sub-zones' entrance volumes and keeps one snapshot per area.
package areamap

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"areamap/internal/geom"
	"areamap/internal/scene"
)

// Data is the derived map of one area. It is built once and must not be
// mutated afterwards; renderers only read it.
type Data struct {
	Area scene.AreaID

	// World-space box around every child's entrance volumes. Infinite when
	// the area has no volumes at all.
	MinX, MaxX float64
	MinZ, MaxZ float64

	// Root is the sub-zone without a parent, nil when the area has none.
	Root *scene.Record
	// Children are the remaining sub-zones in discovery order.
	Children []scene.Record

	WorldBounds  map[scene.ID][]orb.Ring
	Collectibles map[scene.ID][]scene.ProgressItem
	Capturables  map[scene.ID][]scene.ProgressItem

	index *rtreego.Rtree
	order map[scene.ID]int
}

// Bound returns the area's world box. ok is false when the box is empty,
// infinite, or has zero width or height, in which case nothing can be laid
// out.
func (d *Data) Bound() (b orb.Bound, ok bool) {
	w, h := d.MaxX-d.MinX, d.MaxZ-d.MinZ
	if math.IsInf(w, 0) || math.IsNaN(w) || math.IsInf(h, 0) || math.IsNaN(h) || w <= 0 || h <= 0 {
		return orb.Bound{}, false
	}
	return orb.Bound{Min: orb.Point{d.MinX, d.MinZ}, Max: orb.Point{d.MaxX, d.MaxZ}}, true
}

// RootName is the root sub-zone's display name, or "" without a root.
func (d *Data) RootName() string {
	if d.Root == nil {
		return ""
	}
	return d.Root.Name
}

// ChildAt returns the child whose merged boundary contains p. When
// boundaries overlap the child discovered first wins.
func (d *Data) ChildAt(p orb.Point) (scene.Record, bool) {
	if d.index == nil {
		return scene.Record{}, false
	}
	best := -1
	for _, s := range d.index.SearchIntersect(rtreego.Point{p[0], p[1]}.ToRect(1e-9)) {
		box := s.(*childBox)
		i := d.order[box.id]
		if best != -1 && i >= best {
			continue
		}
		if geom.Contains(d.WorldBounds[box.id], p) {
			best = i
		}
	}
	if best == -1 {
		return scene.Record{}, false
	}
	return d.Children[best], true
}

// childBox is the R-tree entry for one child's merged boundary.
type childBox struct {
	id   scene.ID
	rect rtreego.Rect
}

func (c *childBox) Bounds() rtreego.Rect { return c.rect }

func buildIndex(children []scene.Record, bounds map[scene.ID][]orb.Ring) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 2, 8)
	for _, c := range children {
		b, ok := geom.BoundsOf(bounds[c.ID])
		if !ok {
			continue
		}
		r, err := rtreego.NewRectFromPoints(
			rtreego.Point{b.Min[0], b.Min[1]},
			rtreego.Point{b.Max[0], b.Max[1]},
		)
		if err != nil {
			continue
		}
		tree.Insert(&childBox{id: c.ID, rect: r})
	}
	return tree
}
