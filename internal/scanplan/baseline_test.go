package scanplan

import (
	"testing"

	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
	"github.com/arclight-gfx/rasterpipe/internal/edges"
	"github.com/arclight-gfx/rasterpipe/internal/program"
)

func TestPlanBaselineSingleRectangle(t *testing.T) {
	plan := edgeplan.New()
	shape := plan.AddShape(edgeplan.ShapeDescriptor{ZIndex: 0, IsOpaque: true, Programs: []program.DataID{7}})
	plan.AddEdge(edges.NewRectangle(shape, 10, 0, 20, 100))
	plan.PrepareAll()

	plans := PlanBaseline(plan, []float64{50}, XRange{Start: 0, End: 30})
	spans := plans[0].Spans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d: %+v", len(spans), spans)
	}
	if spans[0].XRange.Start != 10 || spans[0].XRange.End != 20 {
		t.Errorf("expected span [10,20), got %+v", spans[0].XRange)
	}
	if len(spans[0].Items) != 1 || spans[0].Items[0].Program != 7 {
		t.Errorf("expected a single Run(7) item, got %+v", spans[0].Items)
	}
}

func TestPlanBaselineZFloorCullsHiddenShape(t *testing.T) {
	plan := edgeplan.New()
	back := plan.AddShape(edgeplan.ShapeDescriptor{ZIndex: 0, IsOpaque: false, Programs: []program.DataID{1}})
	front := plan.AddShape(edgeplan.ShapeDescriptor{ZIndex: 10, IsOpaque: true, Programs: []program.DataID{2}})
	plan.AddEdge(edges.NewRectangle(back, 0, 0, 100, 100))
	plan.AddEdge(edges.NewRectangle(front, 0, 0, 100, 100))
	plan.PrepareAll()

	plans := PlanBaseline(plan, []float64{50}, XRange{Start: 0, End: 100})
	spans := plans[0].Spans()
	if len(spans) != 1 {
		t.Fatalf("expected the opaque front shape to fully occlude the back one, got %d spans: %+v", len(spans), spans)
	}
	if spans[0].Items[0].Program != 2 {
		t.Errorf("expected only the front shape's program to run, got %+v", spans[0].Items)
	}
}

func TestPlanBaselineEmptyOutsideShapes(t *testing.T) {
	plan := edgeplan.New()
	shape := plan.AddShape(edgeplan.ShapeDescriptor{ZIndex: 0, IsOpaque: true, Programs: []program.DataID{1}})
	plan.AddEdge(edges.NewRectangle(shape, 10, 10, 20, 20))
	plan.PrepareAll()

	plans := PlanBaseline(plan, []float64{5}, XRange{Start: 0, End: 100})
	if !plans[0].IsEmpty() {
		t.Errorf("expected an empty plan for a row with no shapes, got %+v", plans[0].Spans())
	}
}
