package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"

	"areamap/internal/layout"
)

// brailleBuf is a layout.Surface backed by braille cells. One screen unit is
// one micro-pixel; every cell holds 2x4 of them. Text is laid over the dots
// one rune per cell.
type brailleBuf struct {
	w, h  int                // in cells
	m     [][]uint8          // per-cell 8-bit mask
	col   [][]colorful.Color // colour of the last dot set in a cell
	txt   [][]rune
	txtC  [][]colorful.Color
	clips []layout.Rect
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h}
	b.m = make([][]uint8, h)
	b.col = make([][]colorful.Color, h)
	b.txt = make([][]rune, h)
	b.txtC = make([][]colorful.Color, h)
	for i := 0; i < h; i++ {
		b.m[i] = make([]uint8, w)
		b.col[i] = make([]colorful.Color, w)
		b.txt[i] = make([]rune, w)
		b.txtC[i] = make([]colorful.Color, w)
	}
	return b
}

// bounds is the full canvas in micro-pixels.
func (b *brailleBuf) bounds() layout.Rect {
	return layout.Rect{Max: orb.Point{float64(b.w * 2), float64(b.h * 4)}}
}

func (b *brailleBuf) clip() layout.Rect {
	if len(b.clips) == 0 {
		return b.bounds()
	}
	return b.clips[len(b.clips)-1]
}

func (b *brailleBuf) PushClipRect(r layout.Rect) {
	c := b.clip()
	r.Min[0], r.Min[1] = math.Max(r.Min[0], c.Min[0]), math.Max(r.Min[1], c.Min[1])
	r.Max[0], r.Max[1] = math.Min(r.Max[0], c.Max[0]), math.Min(r.Max[1], c.Max[1])
	b.clips = append(b.clips, r)
}

func (b *brailleBuf) PopClipRect() {
	if len(b.clips) > 0 {
		b.clips = b.clips[:len(b.clips)-1]
	}
}

func (b *brailleBuf) inClip(x, y float64) bool {
	c := b.clip()
	return x >= c.Min[0] && x < c.Max[0] && y >= c.Min[1] && y < c.Max[1]
}

// MeasureText sizes s in micro-pixels.
func (b *brailleBuf) MeasureText(s string) orb.Point {
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return orb.Point{float64(w * 2), float64(len(lines) * 4)}
}

func (b *brailleBuf) Polyline(pts []orb.Point, c colorful.Color, closed bool, width float64) {
	if len(pts) < 2 {
		return
	}
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		a, z := pts[i], pts[(i+1)%len(pts)]
		x0, y0 := int(math.Round(a[0])), int(math.Round(a[1]))
		x1, y1 := int(math.Round(z[0])), int(math.Round(z[1]))
		b.drawLineMicro(x0, y0, x1, y1, c)
		// thicker strokes get a second pass one dot to the right
		for k := 1; k < int(width); k++ {
			b.drawLineMicro(x0+k, y0, x1+k, y1, c)
		}
	}
}

func (b *brailleBuf) Text(pos orb.Point, c colorful.Color, s string) {
	cx0 := int(math.Floor(pos[0] / 2))
	cy := int(math.Floor(pos[1] / 4))
	for i, line := range strings.Split(s, "\n") {
		y := cy + i
		if y < 0 || y >= b.h {
			continue
		}
		x := cx0
		for _, r := range line {
			if x >= 0 && x < b.w && b.inClip(float64(x*2), float64(y*4)) {
				b.txt[y][x] = r
				b.txtC[y][x] = c
			}
			x++
		}
	}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c colorful.Color) {
	if mx < 0 || my < 0 || !b.inClip(float64(mx), float64(my)) {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.col[cy][cx] = c
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, c colorful.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cell returns the glyph and colour shown at a cell; ok is false for blanks.
func (b *brailleBuf) cell(x, y int) (rune, colorful.Color, bool) {
	if r := b.txt[y][x]; r != 0 {
		return r, b.txtC[y][x], true
	}
	if mask := b.m[y][x]; mask != 0 {
		return rune(0x2800 + int(mask)), b.col[y][x], true
	}
	return ' ', colorful.Color{}, false
}

// toLines renders every row, styling runs of equally coloured cells at once.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		var runCol colorful.Color
		runStyled := false
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runStyled {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runCol.Hex())).Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			r, c, ok := b.cell(x, y)
			if ok != runStyled || (ok && c != runCol) {
				flush()
				runStyled, runCol = ok, c
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
