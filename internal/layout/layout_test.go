package layout

import (
	"fmt"
	"math"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"

	"areamap/internal/areamap"
	"areamap/internal/scene"
)

func box(minX, minZ, maxX, maxZ float64) orb.Bound {
	return orb.Bound{Min: orb.Point{minX, minZ}, Max: orb.Point{maxX, maxZ}}
}

func valley(t *testing.T) *areamap.Data {
	t.Helper()
	cat := scene.NewStatic()
	for _, err := range []error{
		cat.AddScene(scene.Record{ID: "valley", Name: "Valley", Area: "valley"}),
		cat.AddScene(scene.Record{ID: "north", Name: "Valley_North", Area: "valley", Parent: "valley"}),
		cat.AddScene(scene.Record{ID: "south", Name: "Valley_South", Area: "valley", Parent: "valley"}),
		cat.AddVolume("north", box(0, 0, 10, 10)),
		cat.AddVolume("south", box(20, 0, 30, 10)),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 5; i++ {
		_ = cat.AddCollectible("north", &scene.Collectible{Collected: i < 3})
	}
	return areamap.Build("valley", cat)
}

// recorder is a Surface that keeps a log of calls. Text is one unit per rune
// wide and one unit per line high.
type recorder struct {
	calls []string
	lines [][]orb.Point
	width []float64
}

func (r *recorder) MeasureText(s string) orb.Point {
	w := 0
	ls := strings.Split(s, "\n")
	for _, l := range ls {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	return orb.Point{float64(w), float64(len(ls))}
}

func (r *recorder) PushClipRect(c Rect) { r.calls = append(r.calls, fmt.Sprintf("push %v", c)) }
func (r *recorder) PopClipRect()        { r.calls = append(r.calls, "pop") }

func (r *recorder) Polyline(pts []orb.Point, c colorful.Color, closed bool, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("line %s closed=%v", c.Hex(), closed))
	r.lines = append(r.lines, pts)
	r.width = append(r.width, width)
}

func (r *recorder) Text(pos orb.Point, c colorful.Color, s string) {
	r.calls = append(r.calls, "text "+strings.SplitN(s, "\n", 2)[0])
}

func TestAspectFit(t *testing.T) {
	cat := scene.NewStatic()
	_ = cat.AddScene(scene.Record{ID: "c", Name: "C", Area: "a", Parent: "r"})
	_ = cat.AddVolume("c", box(0, 0, 100, 50))
	d := areamap.Build("a", cat)

	dest := Rect{Max: orb.Point{800 + 2*Padding, 800 + 2*Padding}}
	p, ok := NewProjection(d, dest)
	if !ok {
		t.Fatalf("expected a projection")
	}
	if p.Scale != 8 {
		t.Fatalf("expected scale 8, got %v", p.Scale)
	}
	tl := p.ToScreen(orb.Point{0, 50})
	br := p.ToScreen(orb.Point{100, 0})
	if tl != (orb.Point{Padding, Padding + 400}) {
		t.Fatalf("unexpected top-left %v", tl)
	}
	if br != (orb.Point{Padding + 800, Padding + 800}) {
		t.Fatalf("x should fill the map exactly, bottom-right %v", br)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	d := valley(t)
	p, ok := NewProjection(d, Rect{Min: orb.Point{13, 7}, Max: orb.Point{517, 301}})
	if !ok {
		t.Fatalf("expected a projection")
	}
	for x := 0.0; x <= 30; x += 2.5 {
		for z := 0.0; z <= 10; z += 1.25 {
			w := orb.Point{x, z}
			back := p.ToWorld(p.ToScreen(w))
			if math.Abs(back[0]-w[0]) > 1e-9 || math.Abs(back[1]-w[1]) > 1e-9 {
				t.Fatalf("round trip of %v gave %v", w, back)
			}
		}
	}
	// +Z goes up the screen
	if p.ToScreen(orb.Point{0, 10})[1] >= p.ToScreen(orb.Point{0, 0})[1] {
		t.Fatalf("z axis must be flipped")
	}
}

func TestProjectionDegenerate(t *testing.T) {
	cat := scene.NewStatic()
	_ = cat.AddScene(scene.Record{ID: "c", Name: "C", Area: "flat", Parent: "r"})
	_ = cat.AddVolume("c", box(0, 0, 10, 0))
	dest := Rect{Max: orb.Point{100, 100}}
	for name, d := range map[string]*areamap.Data{
		"flat":  areamap.Build("flat", cat),
		"empty": areamap.Build("none", cat),
	} {
		if _, ok := Compute(d, dest, Player{}, &recorder{}); ok {
			t.Errorf("%s: layout should be skipped", name)
		}
	}
	if _, ok := NewProjection(valley(t), Rect{Max: orb.Point{8, 8}}); ok {
		t.Fatalf("no room left after padding")
	}
}

func TestLabel(t *testing.T) {
	d := valley(t)
	north := Label(d, d.Children[0])
	lines := strings.Split(north, "\n")
	if len(lines) != 3 || lines[0] != "North" {
		t.Fatalf("unexpected label %q", north)
	}
	if lines[1] != "Coins:   3/  5 ( 60%)" {
		t.Fatalf("unexpected coin line %q", lines[1])
	}
	if lines[2] != "Fish:    0/  0 (N/A)" {
		t.Fatalf("unexpected fish line %q", lines[2])
	}
	if south := Label(d, d.Children[1]); !strings.HasPrefix(south, "South\nCoins:   0/  0 (N/A)") {
		t.Fatalf("unexpected label %q", south)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct{ root, name, want string }{
		{"Valley", "Valley_North", "North"},
		{"Valley", "ValleyNorth", "ValleyNorth"},
		{"Valley", "Hill_Valley_North", "Hill_Valley_North"},
		{"", "Valley_North", "Valley_North"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.root, tc.name); got != tc.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tc.root, tc.name, got, tc.want)
		}
	}
}

func TestMarker(t *testing.T) {
	anchor := orb.Point{100, 50}
	got := Marker(anchor, 0)
	for i, p := range Arrow {
		if got[i] != (orb.Point{anchor[0] + p[0], anchor[1] + p[1]}) {
			t.Fatalf("heading 0 should only translate: %v", got)
		}
	}
	// a quarter turn points the apex along +X
	apex := Marker(anchor, 90)[0]
	if math.Abs(apex[0]-108) > 1e-9 || math.Abs(apex[1]-50) > 1e-9 {
		t.Fatalf("unexpected apex %v", apex)
	}
	apex = Marker(anchor, 180)[0]
	if math.Abs(apex[0]-100) > 1e-9 || math.Abs(apex[1]-58) > 1e-9 {
		t.Fatalf("unexpected apex %v", apex)
	}
}

func TestComputeValley(t *testing.T) {
	d := valley(t)
	dest := Rect{Max: orb.Point{300 + 2*Padding, 100 + 2*Padding}}
	rec := &recorder{}
	f, ok := Compute(d, dest, Player{Position: orb.Point{15, 5}, Heading: 0}, rec)
	if !ok {
		t.Fatalf("expected a frame")
	}
	if f.Projection.Scale != 10 {
		t.Fatalf("expected scale 10, got %v", f.Projection.Scale)
	}
	if len(f.Children) != 2 {
		t.Fatalf("expected two children")
	}
	north := f.Children[0]
	if len(north.Outlines) != 1 || !north.HasLabel {
		t.Fatalf("north should have one outline and a label")
	}
	// outline box is x 4..104, y 4..104; label is 21x3
	if north.LabelPos != (orb.Point{54 - 10.5, 54 - 1.5}) {
		t.Fatalf("unexpected label position %v", north.LabelPos)
	}
	if north.Color != Palette[0] || f.Children[1].Color != Palette[1] {
		t.Fatalf("children should take palette colours in order")
	}
	if f.Anchor != (orb.Point{154, 54}) {
		t.Fatalf("unexpected player anchor %v", f.Anchor)
	}

	f.Draw(rec)
	if !strings.HasPrefix(rec.calls[0], "push") || rec.calls[len(rec.calls)-1] != "pop" {
		t.Fatalf("drawing must be wrapped in a clip rect: %v", rec.calls)
	}
	last := len(rec.lines) - 1
	if rec.calls[len(rec.calls)-2] != "line "+MarkerColor.Hex()+" closed=true" || rec.width[last] != MarkerWidth {
		t.Fatalf("marker must be drawn last with width %v: %v", MarkerWidth, rec.calls)
	}
	if len(rec.lines[0]) != 4 {
		t.Fatalf("outline should be passed without the closing point, got %v", rec.lines[0])
	}
	want := []string{"text North", "text South"}
	var texts []string
	for _, c := range rec.calls {
		if strings.HasPrefix(c, "text") {
			texts = append(texts, c)
		}
	}
	if strings.Join(texts, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected labels %v", texts)
	}
}

func TestComputeWithoutRoot(t *testing.T) {
	cat := scene.NewStatic()
	_ = cat.AddScene(scene.Record{ID: "n", Name: "Valley_North", Area: "v", Parent: "gone"})
	_ = cat.AddScene(scene.Record{ID: "e", Name: "Valley_East", Area: "v", Parent: "gone"})
	_ = cat.AddVolume("n", box(0, 0, 10, 10))
	d := areamap.Build("v", cat)
	f, ok := Compute(d, Rect{Max: orb.Point{100, 100}}, Player{}, &recorder{})
	if !ok {
		t.Fatalf("expected a frame")
	}
	if !strings.HasPrefix(f.Children[0].Label, "Valley_North\n") {
		t.Fatalf("name must not be stripped without a root: %q", f.Children[0].Label)
	}
	if f.Children[1].HasLabel {
		t.Fatalf("a child without outlines has nowhere to put its label")
	}
}
