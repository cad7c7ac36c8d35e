package scanplan

import "github.com/arclight-gfx/rasterpipe/internal/program"

// PlanItemKind distinguishes the PixelProgramPlan item variants.
type PlanItemKind int

const (
	// Run executes a bound pixel program across the active x-range.
	Run PlanItemKind = iota
	// StartBlend pushes a fresh blend buffer for subsequent items to
	// composite into before it is blended onto the layer beneath it.
	StartBlend
	// Blend composites the current top blend buffer onto the one below it
	// at a constant alpha.
	Blend
	// LinearBlend composites the current top blend buffer onto the one
	// below it, ramping alpha linearly from AlphaStart to AlphaEnd across
	// the span's x-range — anti-aliasing for a moving edge.
	LinearBlend
)

// PlanItem is one instruction in a pixel program plan.
type PlanItem struct {
	Kind       PlanItemKind
	Program    program.DataID
	Alpha      float64
	AlphaStart float64
	AlphaEnd   float64
}

// RunItem builds a Run plan item for the given bound program.
func RunItem(id program.DataID) PlanItem { return PlanItem{Kind: Run, Program: id} }

// BlendItem builds a constant-alpha Blend plan item.
func BlendItem(alpha float64) PlanItem { return PlanItem{Kind: Blend, Alpha: alpha} }

// LinearBlendItem builds a LinearBlend plan item ramping from start to end.
func LinearBlendItem(start, end float64) PlanItem {
	return PlanItem{Kind: LinearBlend, AlphaStart: start, AlphaEnd: end}
}

// XRange is a half-open pixel column range [Start, End).
type XRange struct{ Start, End int }

// Width reports the number of pixel columns the range covers.
func (r XRange) Width() int { return r.End - r.Start }

// ScanSpan is a single program stack occupying an x-range, either opaque
// (fully replacing anything drawn before it) or transparent (stacking on
// top of whatever came before).
type ScanSpan struct {
	XRange XRange
	Items  []PlanItem
	Opaque bool
}

// scanSpanStack groups one opaque base layer ("first") with zero or more
// transparent layers drawn over it within the same x-range, mirroring the
// stack representation a left-to-right scanline plan is built from so that
// content fully hidden behind a later opaque span can be dropped instead of
// composited and discarded.
type scanSpanStack struct {
	xRange XRange
	first  []PlanItem
	others [][]PlanItem
}

// ScanlinePlan is the ordered, non-overlapping set of program stacks that
// make up a single scanline's drawing plan.
type ScanlinePlan struct {
	spans []scanSpanStack
}

// New creates an empty scanline plan.
func New() *ScanlinePlan { return &ScanlinePlan{} }

// split divides a stack at pixel x, returning the right-hand remainder.
// ok is false if x does not fall strictly inside the stack's range.
func (s *scanSpanStack) split(x int) (scanSpanStack, bool) {
	if x <= s.xRange.Start || x >= s.xRange.End {
		return scanSpanStack{}, false
	}
	right := scanSpanStack{xRange: XRange{Start: x, End: s.xRange.End}, first: s.first, others: append([][]PlanItem(nil), s.others...)}
	s.xRange.End = x
	return right, true
}

func stackOf(span ScanSpan) scanSpanStack {
	return scanSpanStack{xRange: span.XRange, first: span.Items}
}

// AddSpan inserts span into the plan, splitting and merging existing stacks
// so spans remain ordered and non-overlapping left to right, monotonically
// increasing in x. Opaque spans replace anything beneath them over their
// range; transparent spans are pushed onto the existing stack.
func (p *ScanlinePlan) AddSpan(span ScanSpan) {
	if span.XRange.Width() <= 0 {
		return
	}

	pos := 0
	for pos < len(p.spans) && p.spans[pos].xRange.End <= span.XRange.Start {
		pos++
	}

	if span.Opaque {
		p.addOpaque(span, pos)
	} else {
		p.addTransparent(span, pos)
	}
}

func (p *ScanlinePlan) addOpaque(span ScanSpan, pos int) {
	for {
		if pos >= len(p.spans) {
			p.spans = append(p.spans, stackOf(span))
			return
		}

		if p.spans[pos].xRange.Start > span.XRange.Start {
			// span starts before the next existing stack: carve off and
			// insert the non-overlapping left part as its own opaque stack.
			lhs := ScanSpan{XRange: XRange{Start: span.XRange.Start, End: min(span.XRange.End, p.spans[pos].xRange.Start)}, Items: span.Items, Opaque: true}
			p.insert(pos, stackOf(lhs))
			if span.XRange.End <= lhs.XRange.End {
				return
			}
			span.XRange.Start = lhs.XRange.End
			pos++
		}

		// Keep the part of the stack left of span's start as its own stack.
		if rhs, ok := p.spans[pos].split(span.XRange.Start); ok {
			p.insert(pos+1, rhs)
			pos++
		}

		// span now starts at or after spans[pos].Start and overlaps it.
		if span.XRange.End > p.spans[pos].xRange.End {
			// span extends past this stack: fully replace it and continue
			// with the remainder against later stacks.
			cut := p.spans[pos].xRange.End
			p.spans[pos] = stackOf(ScanSpan{XRange: XRange{Start: span.XRange.Start, End: cut}, Items: span.Items, Opaque: true})
			span.XRange.Start = cut
			pos++
			continue
		}

		// span ends at or before this stack's end: replace the covered
		// range and keep whatever (if anything) extends past it.
		end := span.XRange.End
		old := p.spans[pos]
		p.spans[pos] = stackOf(ScanSpan{XRange: XRange{Start: span.XRange.Start, End: end}, Items: span.Items, Opaque: true})
		if old.xRange.End > end {
			leftover := scanSpanStack{xRange: XRange{Start: end, End: old.xRange.End}, first: old.first, others: old.others}
			p.insert(pos+1, leftover)
		}
		return
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (p *ScanlinePlan) addTransparent(span ScanSpan, pos int) {
	for {
		if pos >= len(p.spans) {
			p.spans = append(p.spans, stackOf(span))
			return
		}

		if p.spans[pos].xRange.Start > span.XRange.Start {
			lhs := ScanSpan{XRange: XRange{Start: span.XRange.Start, End: min(span.XRange.End, p.spans[pos].xRange.Start)}, Items: span.Items}
			p.insert(pos, stackOf(lhs))
			if span.XRange.End <= lhs.XRange.End {
				return
			}
			span.XRange.Start = lhs.XRange.End
			pos++
		}

		// Keep the part of the stack left of span's start as its own stack.
		if rhs, ok := p.spans[pos].split(span.XRange.Start); ok {
			p.insert(pos+1, rhs)
			pos++
		}

		// span now starts at or after spans[pos].Start, so it overlaps the
		// current stack. Split span at the stack's end: if span extends
		// past it, push the overlapping left part and continue with the
		// remainder against the next stack.
		if span.XRange.End > p.spans[pos].xRange.End {
			cut := p.spans[pos].xRange.End
			p.spans[pos].others = append(p.spans[pos].others, span.Items)
			span.XRange.Start = cut
			pos++
			continue
		}

		// span fits entirely within (or exactly matches) the current
		// stack's range. If it ends strictly before the stack's end, split
		// the stack so the remainder keeps its own (unmodified) range.
		if rhs, ok := p.spans[pos].split(span.XRange.End); ok {
			p.spans[pos].others = append(p.spans[pos].others, span.Items)
			p.spans = insertStack(p.spans, pos+1, rhs)
			return
		}

		p.spans[pos].others = append(p.spans[pos].others, span.Items)
		return
	}
}

func insertStack(spans []scanSpanStack, pos int, s scanSpanStack) []scanSpanStack {
	spans = append(spans, scanSpanStack{})
	copy(spans[pos+1:], spans[pos:])
	spans[pos] = s
	return spans
}

func (p *ScanlinePlan) insert(pos int, s scanSpanStack) {
	p.spans = insertStack(p.spans, pos, s)
}

// Spans returns the plan's stacks expanded into individual ScanSpans in
// rendering order (bottom of each stack first). The bottom-most span in a
// stack is always reported as opaque, since nothing beneath it is visible.
func (p *ScanlinePlan) Spans() []ScanSpan {
	var out []ScanSpan
	for _, s := range p.spans {
		out = append(out, ScanSpan{XRange: s.xRange, Items: s.first, Opaque: true})
		for _, items := range s.others {
			out = append(out, ScanSpan{XRange: s.xRange, Items: items, Opaque: false})
		}
	}
	return out
}

// IsEmpty reports whether the plan has no spans at all.
func (p *ScanlinePlan) IsEmpty() bool { return len(p.spans) == 0 }
