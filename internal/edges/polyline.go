package edges

import (
	"math"
	"sort"

	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
)

// WindingRule selects how a Polyline resolves overlapping sub-paths.
type WindingRule int

const (
	// EvenOdd toggles inside/outside on every crossing.
	EvenOdd WindingRule = iota
	// NonZero accumulates signed crossings; non-zero is inside.
	NonZero
)

type segment struct {
	x0, y0, x1, y1 float64
	minY, maxY     float64
	// sign is +1 if y increases from p0 to p1, -1 if it decreases. Used for
	// non-zero winding direction classification.
	sign float64
}

// Polyline is a closed polygon edge (possibly with multiple sub-contours)
// built from a flat list of points per contour. It keeps its segments sorted
// by minY so each row's query can stop at the first segment that starts
// beyond that row.
type Polyline struct {
	shape   edgeplan.ShapeId
	rule    WindingRule
	contours [][][2]float64

	segs []segment
	bbox edgeplan.BoundingBox
}

// NewPolyline builds a Polyline edge from one or more closed contours, each a
// slice of (x,y) points. The last point need not repeat the first; the
// contour is implicitly closed.
func NewPolyline(shape edgeplan.ShapeId, rule WindingRule, contours ...[][2]float64) *Polyline {
	return &Polyline{shape: shape, rule: rule, contours: contours}
}

func (p *Polyline) Clone() edgeplan.Edge {
	cp := *p
	cp.segs = append([]segment(nil), p.segs...)
	return &cp
}

func (p *Polyline) Shape() edgeplan.ShapeId { return p.shape }

func (p *Polyline) PrepareToRender() {
	p.segs = p.segs[:0]
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, contour := range p.contours {
		n := len(contour)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := contour[i]
			b := contour[(i+1)%n]
			if a[1] == b[1] {
				continue // horizontal edges never intercept a scanline
			}
			sign := 1.0
			if b[1] < a[1] {
				sign = -1.0
			}
			y0, y1 := a[1], b[1]
			if y0 > y1 {
				y0, y1 = y1, y0
			}
			p.segs = append(p.segs, segment{
				x0: a[0], y0: a[1], x1: b[0], y1: b[1],
				minY: y0, maxY: y1, sign: sign,
			})
			for _, pt := range [2][2]float64{a, b} {
				if pt[0] < minX {
					minX = pt[0]
				}
				if pt[0] > maxX {
					maxX = pt[0]
				}
				if pt[1] < minY {
					minY = pt[1]
				}
				if pt[1] > maxY {
					maxY = pt[1]
				}
			}
		}
	}

	sort.Slice(p.segs, func(i, j int) bool { return p.segs[i].minY < p.segs[j].minY })
	p.bbox = edgeplan.BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (p *Polyline) BoundingBox() edgeplan.BoundingBox { return p.bbox }

func (p *Polyline) Intercepts(ys []float64, out [][]edgeplan.EdgeIntercept) {
	for i, y := range ys {
		out[i] = out[i][:0]
		for _, s := range p.segs {
			if s.minY > y {
				break // sorted by minY: no later segment can match either
			}
			if s.maxY < y {
				continue
			}
			x := s.x0 + (y-s.y0)*(s.x1-s.x0)/(s.y1-s.y0)
			dir := edgeplan.Toggle
			if p.rule == NonZero {
				if s.sign > 0 {
					dir = edgeplan.DirectionOut
				} else {
					dir = edgeplan.DirectionIn
				}
			}
			out[i] = append(out[i], edgeplan.EdgeIntercept{Dir: dir, X: x})
		}
		sort.Slice(out[i], func(a, b int) bool { return out[i][a].X < out[i][b].X })
	}
}
