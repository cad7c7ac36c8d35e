package edges

import (
	"math"
	"sort"

	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
)

const (
	flattenDistanceTolerance = 0.1
	flattenRecursionLimit    = 24
)

// FlattenedBezier is a cubic bezier edge that is flattened to a polyline at
// PrepareToRender time, recursively subdividing until each segment's
// deviation from a straight chord falls under flattenDistanceTolerance
// (midpoint de Casteljau subdivision with a recursive flatness test).
type FlattenedBezier struct {
	shape                      edgeplan.ShapeId
	rule                       WindingRule
	x0, y0, x1, y1, x2, y2, x3, y3 float64
	inner                      *Polyline
}

// NewFlattenedBezier builds a closed single-contour shape bounded by one
// cubic bezier arc from (x0,y0) to (x3,y3) via control points (x1,y1) and
// (x2,y2), implicitly closed back to the start point.
func NewFlattenedBezier(shape edgeplan.ShapeId, rule WindingRule, x0, y0, x1, y1, x2, y2, x3, y3 float64) *FlattenedBezier {
	return &FlattenedBezier{shape: shape, rule: rule, x0: x0, y0: y0, x1: x1, y1: y1, x2: x2, y2: y2, x3: x3, y3: y3}
}

func (f *FlattenedBezier) Clone() edgeplan.Edge { cp := *f; return &cp }
func (f *FlattenedBezier) Shape() edgeplan.ShapeId { return f.shape }

func (f *FlattenedBezier) PrepareToRender() {
	pts := [][2]float64{{f.x0, f.y0}}
	subdivideCubic(f.x0, f.y0, f.x1, f.y1, f.x2, f.y2, f.x3, f.y3, 0, &pts)
	f.inner = NewPolyline(f.shape, f.rule, pts)
	f.inner.PrepareToRender()
}

func (f *FlattenedBezier) BoundingBox() edgeplan.BoundingBox { return f.inner.BoundingBox() }

func (f *FlattenedBezier) Intercepts(ys []float64, out [][]edgeplan.EdgeIntercept) {
	f.inner.Intercepts(ys, out)
}

// subdivideCubic appends points approximating the cubic bezier's curve to
// pts, stopping when the two control points' summed distance from the chord
// is less than flattenDistanceTolerance or the recursion limit is hit.
func subdivideCubic(x0, y0, x1, y1, x2, y2, x3, y3 float64, depth int, pts *[][2]float64) {
	if depth >= flattenRecursionLimit || isFlatEnough(x0, y0, x1, y1, x2, y2, x3, y3) {
		*pts = append(*pts, [2]float64{x3, y3})
		return
	}

	x01, y01 := (x0+x1)/2, (y0+y1)/2
	x12, y12 := (x1+x2)/2, (y1+y2)/2
	x23, y23 := (x2+x3)/2, (y2+y3)/2
	x012, y012 := (x01+x12)/2, (y01+y12)/2
	x123, y123 := (x12+x23)/2, (y12+y23)/2
	x0123, y0123 := (x012+x123)/2, (y012+y123)/2

	subdivideCubic(x0, y0, x01, y01, x012, y012, x0123, y0123, depth+1, pts)
	subdivideCubic(x0123, y0123, x123, y123, x23, y23, x3, y3, depth+1, pts)
}

func isFlatEnough(x0, y0, x1, y1, x2, y2, x3, y3 float64) bool {
	d1 := pointLineDistance(x1, y1, x0, y0, x3, y3)
	d2 := pointLineDistance(x2, y2, x0, y0, x3, y3)
	return d1+d2 < flattenDistanceTolerance
}

func pointLineDistance(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length < 1e-12 {
		return math.Hypot(px-ax, py-ay)
	}
	return math.Abs((px-ax)*dy-(py-ay)*dx) / length
}

// DirectCubicBezier answers Intercepts by solving the cubic bezier's x(t)
// and y(t) for the y values that were queried, without flattening. It is
// better suited than FlattenedBezier when few scanlines need to be queried
// against many distinct curves, since no subdivision work is paid upfront.
type DirectCubicBezier struct {
	shape                          edgeplan.ShapeId
	x0, y0, x1, y1, x2, y2, x3, y3 float64
	bbox                           edgeplan.BoundingBox
}

func NewDirectCubicBezier(shape edgeplan.ShapeId, x0, y0, x1, y1, x2, y2, x3, y3 float64) *DirectCubicBezier {
	return &DirectCubicBezier{shape: shape, x0: x0, y0: y0, x1: x1, y1: y1, x2: x2, y2: y2, x3: x3, y3: y3}
}

func (d *DirectCubicBezier) Clone() edgeplan.Edge { cp := *d; return &cp }
func (d *DirectCubicBezier) Shape() edgeplan.ShapeId { return d.shape }

func (d *DirectCubicBezier) PrepareToRender() {
	minX, maxX := d.x0, d.x0
	minY, maxY := d.y0, d.y0
	for _, p := range [4][2]float64{{d.x0, d.y0}, {d.x1, d.y1}, {d.x2, d.y2}, {d.x3, d.y3}} {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	d.bbox = edgeplan.BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (d *DirectCubicBezier) BoundingBox() edgeplan.BoundingBox { return d.bbox }

// cubicAt evaluates the cubic bezier coordinate axis at parameter t given
// the four control values along that axis.
func cubicAt(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// solveCubicForY finds every t in [0,1] with y(t) == y, via the real roots
// of the cubic y0..y3 - y == 0 (closed-form Cardano roots; there is no
// iterative refinement near double roots). Roots within 1e-6 outside [0,1]
// are clamped into it.
func solveCubicForY(y0, y1, y2, y3, y float64) []float64 {
	// Bezier-to-polynomial basis: y(t) = a*t^3 + b*t^2 + c*t + d
	a := -y0 + 3*y1 - 3*y2 + y3
	b := 3*y0 - 6*y1 + 3*y2
	c := -3*y0 + 3*y1
	d := y0 - y

	var roots []float64
	const eps = 1e-9
	if math.Abs(a) < eps {
		roots = solveQuadratic(b, c, d)
	} else {
		roots = solveCubicDepressed(a, b, c, d)
	}

	out := roots[:0]
	for _, t := range roots {
		if t >= -1e-6 && t <= 1+1e-6 {
			out = append(out, math.Max(0, math.Min(1, t)))
		}
	}
	return out
}

func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// solveCubicDepressed solves a*t^3+b*t^2+c*t+d=0 via the trigonometric form
// of Cardano's method for three real roots, falling back to the general
// formula when only one real root exists.
func solveCubicDepressed(a, b, c, d float64) []float64 {
	b, c, d = b/a, c/a, d/a
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	shift := b / 3

	if math.Abs(p) < 1e-12 && math.Abs(q) < 1e-12 {
		return []float64{-shift}
	}

	disc := q*q/4 + p*p*p/27
	if disc > 0 {
		sq := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(-q/2 - sq)
		return []float64{u + v - shift}
	}

	// Three real roots.
	r := math.Sqrt(-p * p * p / 27)
	phi := math.Acos(clamp(-q/(2*r), -1, 1))
	m := 2 * math.Sqrt(-p/3)
	return []float64{
		m*math.Cos(phi/3) - shift,
		m*math.Cos((phi+2*math.Pi)/3) - shift,
		m*math.Cos((phi+4*math.Pi)/3) - shift,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func (d *DirectCubicBezier) Intercepts(ys []float64, out [][]edgeplan.EdgeIntercept) {
	for i, y := range ys {
		out[i] = out[i][:0]
		if y < d.bbox.MinY || y > d.bbox.MaxY {
			continue
		}
		ts := solveCubicForY(d.y0, d.y1, d.y2, d.y3, y)
		for _, t := range ts {
			x := cubicAt(d.x0, d.x1, d.x2, d.x3, t)
			dy := 3 * ((1-t)*(1-t)*(d.y1-d.y0) + 2*(1-t)*t*(d.y2-d.y1) + t*t*(d.y3-d.y2))
			dir := edgeplan.DirectionOut
			if dy < 0 {
				dir = edgeplan.DirectionIn
			}
			out[i] = append(out[i], edgeplan.EdgeIntercept{Dir: dir, X: x})
		}
		sort.Slice(out[i], func(a, b int) bool { return out[i][a].X < out[i][b].X })
	}
}
