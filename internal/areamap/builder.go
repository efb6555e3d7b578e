package areamap

import (
	"math"

	"github.com/paulmach/orb"

	"areamap/internal/geom"
	"areamap/internal/scene"
)

// Build scans cat for the sub-zones tagged with area and derives their map.
//
// The sub-zone without a parent becomes the root; every other one is a child
// whose entrance volumes are merged into boundary rings. Children without
// volumes are kept with no rings and leave the area box untouched. An area
// with no matching sub-zones yields empty children, a nil root and an
// infinite box.
func Build(area scene.AreaID, cat scene.Catalog) *Data {
	d := &Data{
		Area:         area,
		MinX:         math.Inf(1),
		MaxX:         math.Inf(-1),
		MinZ:         math.Inf(1),
		MaxZ:         math.Inf(-1),
		WorldBounds:  map[scene.ID][]orb.Ring{},
		Collectibles: map[scene.ID][]scene.ProgressItem{},
		Capturables:  map[scene.ID][]scene.ProgressItem{},
		order:        map[scene.ID]int{},
	}

	for _, rec := range cat.Scenes() {
		if rec.Area != area {
			continue
		}
		if !rec.HasParent() {
			r := rec
			d.Root = &r
			continue
		}
		d.order[rec.ID] = len(d.Children)
		d.Children = append(d.Children, rec)

		vols := cat.EntranceVolumes(rec.ID)
		rects := make([]orb.Bound, 0, len(vols))
		for _, b := range vols {
			rects = append(rects, b)
			d.MinX = math.Min(d.MinX, math.Min(b.Min[0], b.Max[0]))
			d.MaxX = math.Max(d.MaxX, math.Max(b.Min[0], b.Max[0]))
			d.MinZ = math.Min(d.MinZ, math.Min(b.Min[1], b.Max[1]))
			d.MaxZ = math.Max(d.MaxZ, math.Max(b.Min[1], b.Max[1]))
		}
		d.WorldBounds[rec.ID] = geom.Union(rects)
		d.Collectibles[rec.ID] = cat.Collectibles(rec.ID)
		d.Capturables[rec.ID] = cat.Capturables(rec.ID)
	}

	d.index = buildIndex(d.Children, d.WorldBounds)
	return d
}
