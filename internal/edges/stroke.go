package edges

import (
	"github.com/arclight-gfx/rasterpipe/internal/basics"
	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
)

// Stroker converts an open or closed polyline into the filled outline
// contour(s) that represent stroking it at a given width. Implementations
// decide cap and join style; the zero value of MathStroker strokes with
// butt caps and miter joins, matching the stroke generator this type is
// adapted from.
type Stroker interface {
	Stroke(points [][2]float64, closed bool, width float64) [][][2]float64
}

// StrokeEdge is a Polyline whose contour is produced by stroking an input
// path rather than being supplied directly, keeping the stroke algorithm
// itself pluggable: geometry comes from an external Stroker rather than
// being baked into the edge.
type StrokeEdge struct {
	shape   edgeplan.ShapeId
	points  [][2]float64
	closed  bool
	width   float64
	stroker Stroker
	inner   *Polyline
}

// NewStrokeEdge builds a stroke edge. If stroker is nil, MathStroker{} (butt
// caps, miter joins) is used.
func NewStrokeEdge(shape edgeplan.ShapeId, points [][2]float64, closed bool, width float64, stroker Stroker) *StrokeEdge {
	if stroker == nil {
		stroker = MathStroker{}
	}
	return &StrokeEdge{shape: shape, points: points, closed: closed, width: width, stroker: stroker}
}

func (s *StrokeEdge) Clone() edgeplan.Edge { cp := *s; return &cp }
func (s *StrokeEdge) Shape() edgeplan.ShapeId { return s.shape }

func (s *StrokeEdge) PrepareToRender() {
	contours := s.stroker.Stroke(s.points, s.closed, s.width)
	s.inner = NewPolyline(s.shape, NonZero, contours...)
	s.inner.PrepareToRender()
}

func (s *StrokeEdge) BoundingBox() edgeplan.BoundingBox { return s.inner.BoundingBox() }

func (s *StrokeEdge) Intercepts(ys []float64, out [][]edgeplan.EdgeIntercept) {
	s.inner.Intercepts(ys, out)
}

// MathStroker is the default Stroker, built on basics.MathStroke's join and
// cap geometry.
type MathStroker struct {
	LineCap    basics.LineCap
	LineJoin   basics.LineJoin
	MiterLimit float64
}

type vertexCollector struct {
	pts [][2]float64
}

func (vc *vertexCollector) Add(x, y float64)  { vc.pts = append(vc.pts, [2]float64{x, y}) }
func (vc *vertexCollector) RemoveAll()        { vc.pts = vc.pts[:0] }

// Stroke offsets points to both sides by width/2, producing one contour per
// side joined by caps (open paths) so the union forms the stroked outline.
// Degenerate inputs (fewer than two distinct points) yield no contours.
func (m MathStroker) Stroke(points [][2]float64, closed bool, width float64) [][][2]float64 {
	pts := dedupeConsecutive(points)
	if len(pts) < 2 {
		return nil
	}

	ms := basics.NewMathStroke()
	ms.SetWidth(width)
	ms.SetLineCap(m.LineCap)
	ms.SetLineJoin(m.LineJoin)
	if m.MiterLimit > 0 {
		ms.SetMiterLimit(m.MiterLimit)
	}

	dist := toVertexDist(pts, closed)
	left := strokeSide(ms, dist, closed, 1)
	right := strokeSide(ms, dist, closed, -1)

	if closed {
		reverse(right)
		return [][][2]float64{left, right}
	}

	// Open path: join the two sides with caps into a single ring.
	n := len(dist)
	outline := append([][2]float64{}, left...)
	outline = append(outline, capVertices(ms, dist[n-1], dist[n-2], dist[n-2].Dist)...)
	reverse(right)
	outline = append(outline, right...)
	outline = append(outline, capVertices(ms, dist[0], dist[1], dist[0].Dist)...)
	return [][][2]float64{outline}
}

func dedupeConsecutive(points [][2]float64) [][2]float64 {
	var out [][2]float64
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

func toVertexDist(pts [][2]float64, closed bool) []basics.VertexDist {
	n := len(pts)
	dist := make([]basics.VertexDist, n)
	for i, p := range pts {
		dist[i] = basics.VertexDist{X: p[0], Y: p[1]}
	}
	for i := 0; i < n; i++ {
		next := i + 1
		if next == n {
			if !closed {
				break
			}
			next = 0
		}
		dist[i].CalculateDistance(dist[next])
	}
	return dist
}

// strokeSide walks dist and emits one offset vertex per interior join and
// two per straight run, scaled by sign (+1 left side, -1 right side).
func strokeSide(ms *basics.MathStroke, dist []basics.VertexDist, closed bool, sign float64) [][2]float64 {
	ms.SetWidth(signedWidth(ms, sign))
	n := len(dist)
	var out [][2]float64
	vc := &vertexCollector{}

	start, end := 1, n-1
	if closed {
		start, end = 0, n
	}
	for i := start; i < end; i++ {
		v0 := dist[(i-1+n)%n]
		v1 := dist[i]
		v2 := dist[(i+1)%n]
		len1 := v0.Dist
		len2 := v1.Dist
		ms.CalcJoin(vc, v0, v1, v2, len1, len2)
		out = append(out, vc.pts...)
	}
	return out
}

func capVertices(ms *basics.MathStroke, v0, v1 basics.VertexDist, length float64) [][2]float64 {
	vc := &vertexCollector{}
	ms.CalcCap(vc, v0, v1, length)
	return vc.pts
}

func signedWidth(ms *basics.MathStroke, sign float64) float64 {
	w := ms.Width()
	if w < 0 {
		w = -w
	}
	return w * sign
}

func reverse(pts [][2]float64) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
