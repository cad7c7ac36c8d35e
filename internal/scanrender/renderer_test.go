package scanrender

import (
	"testing"

	"github.com/arclight-gfx/rasterpipe/internal/color"
	"github.com/arclight-gfx/rasterpipe/internal/program"
	"github.com/arclight-gfx/rasterpipe/internal/scanplan"
)

func TestRenderSpanSingleRun(t *testing.T) {
	cache := program.NewCache()
	stored := cache.Register(program.FlatColor{})
	dc := cache.CreateDataCache()
	red := color.PixelF32{R: 1, A: 1}
	id := cache.Bind(stored, program.FlatColorData{Pixel: red}, dc)

	r := New(cache)
	dst := make([]color.PixelF32, 4)
	r.RenderSpan(scanplan.ScanSpan{
		XRange: scanplan.XRange{Start: 0, End: 4},
		Items:  []scanplan.PlanItem{scanplan.RunItem(id)},
		Opaque: true,
	}, dc, dst)

	for i, p := range dst {
		if p != red {
			t.Errorf("pixel %d: expected %+v, got %+v", i, red, p)
		}
	}
}

func TestRenderSpanUnbalancedBlendStackPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on an unbalanced StartBlend")
		}
	}()

	cache := program.NewCache()
	dc := cache.CreateDataCache()
	r := New(cache)
	dst := make([]color.PixelF32, 2)
	r.RenderSpan(scanplan.ScanSpan{
		XRange: scanplan.XRange{Start: 0, End: 2},
		Items:  []scanplan.PlanItem{{Kind: scanplan.StartBlend}},
	}, dc, dst)
}

func TestRenderSpanLinearBlendFadesIn(t *testing.T) {
	cache := program.NewCache()
	stored := cache.Register(program.FlatColor{})
	dc := cache.CreateDataCache()
	white := color.PixelF32{R: 1, G: 1, B: 1, A: 1}
	id := cache.Bind(stored, program.FlatColorData{Pixel: white}, dc)

	r := New(cache)
	dst := make([]color.PixelF32, 4)
	r.RenderSpan(scanplan.ScanSpan{
		XRange: scanplan.XRange{Start: 0, End: 4},
		Items: []scanplan.PlanItem{
			{Kind: scanplan.StartBlend},
			scanplan.RunItem(id),
			scanplan.LinearBlendItem(0, 1),
		},
	}, dc, dst)

	if dst[0].A >= dst[3].A {
		t.Errorf("expected alpha to ramp up across the span, got %v -> %v", dst[0].A, dst[3].A)
	}
}
