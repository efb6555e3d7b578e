package geom

import (
	"sort"

	"github.com/paulmach/orb"
)

// vtx is a corner of the compressed grid, addressed by column/row index.
type vtx struct{ i, j int }

// edge is a unit step along a cell boundary, oriented so the filled cell lies
// on its left.
type edge struct{ from, to vtx }

func (e edge) dir() vtx { return vtx{e.to.i - e.from.i, e.to.j - e.from.j} }

// Union merges axis-aligned rectangles into boundary rings using the
// non-zero fill rule. Outer boundaries come back counter-clockwise in the
// (x, z) plane and holes clockwise; every ring is closed. Rectangles with zero
// area contribute nothing and an empty input yields nil.
//
// The rectangles' edges are compressed into a grid, covered cells are marked,
// and the boundary between covered and uncovered cells is traced. At a vertex
// where two covered cells only meet diagonally the trace turns left, which
// keeps the two outlines apart so every ring stays simple.
func Union(rects []orb.Bound) []orb.Ring {
	live := make([]orb.Bound, 0, len(rects))
	for _, r := range rects {
		r = normalize(r)
		if r.Max[0] > r.Min[0] && r.Max[1] > r.Min[1] {
			live = append(live, r)
		}
	}
	if len(live) == 0 {
		return nil
	}

	xs := axis(live, 0)
	zs := axis(live, 1)
	nx, nz := len(xs)-1, len(zs)-1
	filled := make([]bool, nx*nz)
	for _, r := range live {
		i0, i1 := sort.SearchFloat64s(xs, r.Min[0]), sort.SearchFloat64s(xs, r.Max[0])
		j0, j1 := sort.SearchFloat64s(zs, r.Min[1]), sort.SearchFloat64s(zs, r.Max[1])
		for j := j0; j < j1; j++ {
			for i := i0; i < i1; i++ {
				filled[j*nx+i] = true
			}
		}
	}
	at := func(i, j int) bool {
		if i < 0 || j < 0 || i >= nx || j >= nz {
			return false
		}
		return filled[j*nx+i]
	}

	var edges []edge
	for j := 0; j < nz; j++ {
		for i := 0; i < nx; i++ {
			if !at(i, j) {
				continue
			}
			if !at(i, j-1) {
				edges = append(edges, edge{vtx{i, j}, vtx{i + 1, j}})
			}
			if !at(i+1, j) {
				edges = append(edges, edge{vtx{i + 1, j}, vtx{i + 1, j + 1}})
			}
			if !at(i, j+1) {
				edges = append(edges, edge{vtx{i + 1, j + 1}, vtx{i, j + 1}})
			}
			if !at(i-1, j) {
				edges = append(edges, edge{vtx{i, j + 1}, vtx{i, j}})
			}
		}
	}

	outgoing := make(map[vtx][]int, len(edges))
	for k, e := range edges {
		outgoing[e.from] = append(outgoing[e.from], k)
	}

	used := make([]bool, len(edges))
	var rings []orb.Ring
	for start := range edges {
		if used[start] {
			continue
		}
		var path []vtx
		cur := start
		for {
			used[cur] = true
			path = append(path, edges[cur].from)
			d := edges[cur].dir()
			next, best := -1, 4
			for _, k := range outgoing[edges[cur].to] {
				if used[k] && k != start {
					continue
				}
				if r := turnRank(d, edges[k].dir()); r < best {
					next, best = k, r
				}
			}
			if next == -1 || next == start {
				break
			}
			cur = next
		}
		rings = append(rings, toRing(simplify(path), xs, zs))
	}
	return rings
}

// axis returns the sorted distinct coordinates of all rectangle edges along
// dimension d.
func axis(rects []orb.Bound, d int) []float64 {
	vals := make([]float64, 0, 2*len(rects))
	for _, r := range rects {
		vals = append(vals, r.Min[d], r.Max[d])
	}
	sort.Float64s(vals)
	out := vals[:1]
	for _, v := range vals[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// turnRank orders candidate directions: left turn, straight, right turn.
func turnRank(d, c vtx) int {
	cross := d.i*c.j - d.j*c.i
	switch {
	case cross > 0:
		return 0
	case cross == 0 && d.i*c.i+d.j*c.j > 0:
		return 1
	case cross < 0:
		return 2
	}
	return 3
}

// simplify drops vertices that sit in the middle of a straight run.
func simplify(path []vtx) []vtx {
	n := len(path)
	if n < 3 {
		return path
	}
	out := make([]vtx, 0, n)
	for k := 0; k < n; k++ {
		prev := path[(k+n-1)%n]
		cur := path[k]
		next := path[(k+1)%n]
		in := vtx{sign(cur.i - prev.i), sign(cur.j - prev.j)}
		outDir := vtx{sign(next.i - cur.i), sign(next.j - cur.j)}
		if in == outDir {
			continue
		}
		out = append(out, cur)
	}
	return out
}

func toRing(path []vtx, xs, zs []float64) orb.Ring {
	ring := make(orb.Ring, 0, len(path)+1)
	for _, v := range path {
		ring = append(ring, orb.Point{xs[v.i], zs[v.j]})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
