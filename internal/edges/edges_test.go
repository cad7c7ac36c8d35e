package edges

import (
	"testing"

	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
)

func TestRectangleIntercepts(t *testing.T) {
	r := NewRectangle(0, 10, 10, 20, 20)
	r.PrepareToRender()

	ys := []float64{15, 5}
	out := make([][]edgeplan.EdgeIntercept, 2)
	r.Intercepts(ys, out)

	if len(out[0]) != 2 || out[0][0].X != 10 || out[0][1].X != 20 {
		t.Errorf("expected intercepts at 10,20, got %v", out[0])
	}
	if len(out[1]) != 0 {
		t.Errorf("expected no intercepts outside the box, got %v", out[1])
	}
}

func TestPolylineEvenOddSquare(t *testing.T) {
	square := [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	p := NewPolyline(0, EvenOdd, square)
	p.PrepareToRender()

	out := make([][]edgeplan.EdgeIntercept, 1)
	p.Intercepts([]float64{5}, out)
	if len(out[0]) != 2 {
		t.Fatalf("expected 2 crossings through a square, got %d: %v", len(out[0]), out[0])
	}
	if out[0][0].X != 0 || out[0][1].X != 10 {
		t.Errorf("expected crossings at x=0,10, got %v", out[0])
	}
}

func TestPolylineNonZeroOverlappingSquares(t *testing.T) {
	// Two same-winding overlapping squares: non-zero rule keeps the union
	// solid (no even-odd "hole" in the overlap).
	a := [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := [][2]float64{{5, 0}, {15, 0}, {15, 10}, {5, 10}}
	p := NewPolyline(0, NonZero, a, b)
	p.PrepareToRender()

	out := make([][]edgeplan.EdgeIntercept, 1)
	p.Intercepts([]float64{5}, out)
	if len(out[0]) != 4 {
		t.Fatalf("expected 4 raw crossings (2 contours x 2 edges), got %d", len(out[0]))
	}
}

func TestFlattenedBezierBoundingBoxContainsCurve(t *testing.T) {
	// The curve peaks at y=75 (t=0.5) and ends at x=100.
	b := NewFlattenedBezier(0, EvenOdd, 0, 0, 0, 100, 100, 100, 100, 0)
	b.PrepareToRender()
	bbox := b.BoundingBox()
	if bbox.MaxY < 75 || bbox.MaxX < 100 {
		t.Errorf("expected bbox to contain the curve, got %+v", bbox)
	}
}

func TestDirectCubicBezierFindsMidpointCrossing(t *testing.T) {
	// A cubic from (0,0) to (100,100) with control points pulling it through
	// y=50 near the middle.
	d := NewDirectCubicBezier(0, 0, 0, 33, 0, 67, 100, 100, 100)
	d.PrepareToRender()

	out := make([][]edgeplan.EdgeIntercept, 1)
	d.Intercepts([]float64{50}, out)
	if len(out[0]) == 0 {
		t.Fatalf("expected at least one crossing at y=50")
	}
	for _, ic := range out[0] {
		if ic.X < 0 || ic.X > 100 {
			t.Errorf("crossing x=%v out of expected range", ic.X)
		}
	}
}

func TestStrokeEdgeOpenSegmentProducesClosedOutline(t *testing.T) {
	points := [][2]float64{{0, 0}, {100, 0}}
	s := NewStrokeEdge(0, points, false, 10, nil)
	s.PrepareToRender()

	out := make([][]edgeplan.EdgeIntercept, 1)
	s.Intercepts([]float64{0}, out)
	if len(out[0]) == 0 {
		t.Fatalf("expected the stroked outline to cross y=0 (the segment's own line)")
	}
}

func TestClippedShapeIntersectsRectangles(t *testing.T) {
	inner := []edgeplan.Edge{NewRectangle(0, 0, 0, 20, 20)}
	clip := []edgeplan.Edge{NewRectangle(0, 10, 10, 30, 30)}
	cs := NewClippedShape(0, inner, clip)
	cs.PrepareToRender()

	out := make([][]edgeplan.EdgeIntercept, 1)
	cs.Intercepts([]float64{15}, out)
	if len(out[0]) != 2 || out[0][0].X != 10 || out[0][1].X != 20 {
		t.Errorf("expected the overlap interval [10,20], got %v", out[0])
	}

	cs.Intercepts([]float64{5}, out)
	if len(out[0]) != 0 {
		t.Errorf("expected no overlap outside the clip region, got %v", out[0])
	}
}
