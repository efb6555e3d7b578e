package areamap

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"areamap/internal/geom"
	"areamap/internal/scene"
)

func TestBuildValley(t *testing.T) {
	d := Build("valley", valley(t))
	if d.MinX != 0 || d.MaxX != 30 || d.MinZ != 0 || d.MaxZ != 10 {
		t.Fatalf("unexpected bounds x=[%v,%v] z=[%v,%v]", d.MinX, d.MaxX, d.MinZ, d.MaxZ)
	}
	if d.Root == nil || d.Root.ID != "valley" {
		t.Fatalf("expected valley root, got %+v", d.Root)
	}
	if len(d.Children) != 2 || d.Children[0].ID != "north" || d.Children[1].ID != "south" {
		t.Fatalf("unexpected children %+v", d.Children)
	}
	for _, c := range d.Children {
		if n := len(d.WorldBounds[c.ID]); n != 1 {
			t.Fatalf("%s: expected one ring, got %d", c.ID, n)
		}
	}
	if !geom.Contains(d.WorldBounds["north"], orb.Point{5, 5}) || geom.Contains(d.WorldBounds["north"], orb.Point{25, 5}) {
		t.Fatalf("north boundary covers the wrong region")
	}
	done, total := Count(d.Collectibles["north"])
	if done != 3 || total != 5 {
		t.Fatalf("expected 3/5 coins, got %d/%d", done, total)
	}
	if _, total := Count(d.Capturables["south"]); total != 0 {
		t.Fatalf("expected no fish in south, got %d", total)
	}
	if _, ok := d.Bound(); !ok {
		t.Fatalf("valley should have a usable bound")
	}
}

func TestBuildWithoutRoot(t *testing.T) {
	cat := scene.NewStatic()
	_ = cat.AddScene(scene.Record{ID: "a", Name: "A", Area: "x", Parent: "missing"})
	_ = cat.AddVolume("a", box(0, 0, 1, 1))
	d := Build("x", cat)
	if d.Root != nil || d.RootName() != "" {
		t.Fatalf("expected no root, got %+v", d.Root)
	}
	if len(d.Children) != 1 {
		t.Fatalf("expected one child, got %d", len(d.Children))
	}
}

func TestBuildUnknownArea(t *testing.T) {
	d := Build("nowhere", valley(t))
	if d.Root != nil || len(d.Children) != 0 {
		t.Fatalf("expected an empty map, got %+v", d)
	}
	if !math.IsInf(d.MinX, 1) || !math.IsInf(d.MaxX, -1) {
		t.Fatalf("expected infinite bounds, got %v %v", d.MinX, d.MaxX)
	}
	if _, ok := d.Bound(); ok {
		t.Fatalf("empty map must not report a bound")
	}
	if _, ok := d.ChildAt(orb.Point{0, 0}); ok {
		t.Fatalf("empty map has no children to hit")
	}
}

func TestBuildChildWithoutVolumes(t *testing.T) {
	cat := valley(t)
	_ = cat.AddScene(scene.Record{ID: "cave", Name: "Valley_Cave", Area: "valley", Parent: "valley"})
	d := Build("valley", cat)
	if len(d.Children) != 3 {
		t.Fatalf("child without volumes must be kept, got %d children", len(d.Children))
	}
	if len(d.WorldBounds["cave"]) != 0 {
		t.Fatalf("expected no rings for cave")
	}
	if d.MinX != 0 || d.MaxX != 30 || d.MinZ != 0 || d.MaxZ != 10 {
		t.Fatalf("cave must not move the bounds")
	}
}

func TestBuildBoundsNeverShrink(t *testing.T) {
	cat := valley(t)
	prev := Build("valley", cat)
	for i, b := range []orb.Bound{box(2, 2, 3, 3), box(-5, 4, 1, 6), box(10, -10, 12, 40)} {
		if err := cat.AddVolume("south", b); err != nil {
			t.Fatal(err)
		}
		next := Build("valley", cat)
		if next.MinX > prev.MinX || next.MinZ > prev.MinZ || next.MaxX < prev.MaxX || next.MaxZ < prev.MaxZ {
			t.Fatalf("step %d: bounds shrank from %+v to %+v", i, prev, next)
		}
		prev = next
	}
	if prev.MinX != -5 || prev.MinZ != -10 || prev.MaxZ != 40 {
		t.Fatalf("unexpected final bounds %v %v %v", prev.MinX, prev.MinZ, prev.MaxZ)
	}
}

func TestChildAt(t *testing.T) {
	d := Build("valley", valley(t))
	cases := []struct {
		p    orb.Point
		want scene.ID
		ok   bool
	}{
		{orb.Point{5, 5}, "north", true},
		{orb.Point{25, 2}, "south", true},
		{orb.Point{15, 5}, "", false},
		{orb.Point{5, 50}, "", false},
	}
	for _, tc := range cases {
		got, ok := d.ChildAt(tc.p)
		if ok != tc.ok || got.ID != tc.want {
			t.Errorf("ChildAt(%v) = %q,%v want %q,%v", tc.p, got.ID, ok, tc.want, tc.ok)
		}
	}
}

func TestPercent(t *testing.T) {
	if p, ok := Percent(3, 5); !ok || p != 60 {
		t.Fatalf("expected 60%%, got %d %v", p, ok)
	}
	if p, ok := Percent(2, 3); !ok || p != 66 {
		t.Fatalf("percent must floor, got %d", p)
	}
	if _, ok := Percent(0, 0); ok {
		t.Fatalf("zero total has no percentage")
	}
}

func TestProgressIsLive(t *testing.T) {
	cat := valley(t)
	coin := &scene.Collectible{}
	_ = cat.AddCollectible("south", coin)
	d := Build("valley", cat)
	if done, _ := Count(d.Collectibles["south"]); done != 0 {
		t.Fatalf("expected nothing collected yet")
	}
	coin.Collected = true
	if done, _ := Count(d.Collectibles["south"]); done != 1 {
		t.Fatalf("snapshot should observe later progress")
	}
}

func TestBuildFromGeoJSONFixture(t *testing.T) {
	cat, err := scene.LoadGeoJSON("../scene/testdata/valley.geojson")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d := Build("valley", cat)
	if len(d.Children) != 3 || d.RootName() != "Valley" {
		t.Fatalf("unexpected valley map: root=%q children=%d", d.RootName(), len(d.Children))
	}
	// the two overlapping north volumes merge into one outline
	if n := len(d.WorldBounds["valley_north"]); n != 1 {
		t.Fatalf("expected one merged outline for north, got %d", n)
	}
	if d.MinX != 0 || d.MaxX != 30 || d.MinZ != -16 || d.MaxZ != 14 {
		t.Fatalf("unexpected bounds x=[%v,%v] z=[%v,%v]", d.MinX, d.MaxX, d.MinZ, d.MaxZ)
	}
	if c, ok := d.ChildAt(orb.Point{18, -14}); !ok || c.ID != "valley_lake" {
		t.Fatalf("expected the lake under (18,-14), got %q %v", c.ID, ok)
	}
}
