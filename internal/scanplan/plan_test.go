package scanplan

import "testing"

func TestAddSpanSingleOpaque(t *testing.T) {
	p := New()
	p.AddSpan(ScanSpan{XRange: XRange{Start: 0, End: 10}, Items: []PlanItem{RunItem(1)}, Opaque: true})

	spans := p.Spans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].XRange != (XRange{Start: 0, End: 10}) || !spans[0].Opaque {
		t.Errorf("unexpected span: %+v", spans[0])
	}
}

func TestAddSpanOpaqueReplacesUnderlying(t *testing.T) {
	p := New()
	p.AddSpan(ScanSpan{XRange: XRange{Start: 0, End: 10}, Items: []PlanItem{RunItem(1)}, Opaque: false})
	p.AddSpan(ScanSpan{XRange: XRange{Start: 2, End: 8}, Items: []PlanItem{RunItem(2)}, Opaque: true})

	spans := p.Spans()
	// [0,2) run(1), [2,8) opaque run(2), [8,10) run(1); Spans reports each
	// stack's base as opaque.
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans after opaque cut, got %d: %+v", len(spans), spans)
	}
	if spans[1].XRange != (XRange{Start: 2, End: 8}) || !spans[1].Opaque {
		t.Errorf("expected the middle span to be the opaque cut, got %+v", spans[1])
	}
}

func TestAddSpanTransparentStacks(t *testing.T) {
	p := New()
	p.AddSpan(ScanSpan{XRange: XRange{Start: 0, End: 10}, Items: []PlanItem{RunItem(1)}, Opaque: true})
	p.AddSpan(ScanSpan{XRange: XRange{Start: 0, End: 10}, Items: []PlanItem{RunItem(2)}, Opaque: false})

	spans := p.Spans()
	if len(spans) != 2 {
		t.Fatalf("expected base + overlay span, got %d: %+v", len(spans), spans)
	}
	if !spans[0].Opaque || spans[1].Opaque {
		t.Errorf("expected first span opaque and second transparent, got %+v", spans)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := ForRegion(0, 100, 50)
	px := tr.SourceToPixel(50)
	if px != 25 {
		t.Errorf("expected source 50 to map to pixel 25, got %v", px)
	}
	if tr.PixelToSource(25) != 50 {
		t.Errorf("expected pixel 25 to map back to source 50, got %v", tr.PixelToSource(25))
	}
}

func TestEmptyPlanIsEmpty(t *testing.T) {
	if !New().IsEmpty() {
		t.Errorf("expected fresh plan to be empty")
	}
}
