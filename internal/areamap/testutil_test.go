package areamap

import (
	"testing"

	"github.com/paulmach/orb"

	"areamap/internal/scene"
)

func box(minX, minZ, maxX, maxZ float64) orb.Bound {
	return orb.Bound{Min: orb.Point{minX, minZ}, Max: orb.Point{maxX, maxZ}}
}

// valley is the two-child area used across the package tests: North has 3 of
// 5 coins, South has no fish at all.
func valley(t *testing.T) *scene.Static {
	t.Helper()
	cat := scene.NewStatic()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(cat.AddScene(scene.Record{ID: "valley", Name: "Valley", Area: "valley"}))
	must(cat.AddScene(scene.Record{ID: "north", Name: "Valley_North", Area: "valley", Parent: "valley"}))
	must(cat.AddScene(scene.Record{ID: "south", Name: "Valley_South", Area: "valley", Parent: "valley"}))
	must(cat.AddScene(scene.Record{ID: "peak", Name: "Peak", Area: "mountain"}))
	must(cat.AddVolume("north", box(0, 0, 10, 10)))
	must(cat.AddVolume("south", box(20, 0, 30, 10)))
	for i := 0; i < 5; i++ {
		must(cat.AddCollectible("north", &scene.Collectible{Collected: i < 3}))
	}
	return cat
}
