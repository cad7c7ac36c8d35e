package edges

import (
	"testing"

	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
)

// TestScenarioClippedAnnulus exercises a clipped annulus built from two
// concentric rectangles used as a clip region for a larger rectangle: outer
// ring (100..200, 200..300) minus inner hole (125..175, 225..275), clipping
// (0..400, 0..400).
func TestScenarioClippedAnnulus(t *testing.T) {
	big := NewRectangle(0, 0, 0, 400, 400)
	outer := NewRectangle(0, 100, 200, 200, 300)
	hole := NewRectangle(0, 125, 225, 175, 275)

	cs := NewClippedShape(0, []edgeplan.Edge{big}, []edgeplan.Edge{outer, hole})
	cs.PrepareToRender()

	out := make([][]edgeplan.EdgeIntercept, 1)

	cs.Intercepts([]float64{250}, out)
	if xs := xsOf(out[0]); !floatsEqual(xs, []float64{100, 125, 175, 200}) {
		t.Errorf("y=250: expected intercepts {100,125,175,200}, got %v", xs)
	}

	cs.Intercepts([]float64{210}, out)
	if xs := xsOf(out[0]); !floatsEqual(xs, []float64{100, 200}) {
		t.Errorf("y=210: expected intercepts {100,200}, got %v", xs)
	}

	cs.Intercepts([]float64{150}, out)
	if len(out[0]) != 0 {
		t.Errorf("y=150: expected zero intercepts outside the ring's y-range, got %v", out[0])
	}
}

func xsOf(ics []edgeplan.EdgeIntercept) []float64 {
	xs := make([]float64, len(ics))
	for i, ic := range ics {
		xs[i] = ic.X
	}
	return xs
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
