package scanplan

import (
	"math"

	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
)

// PlanBaseline computes a pixel-precise (non-anti-aliased) scanline plan for
// each y position from an edge plan's intercepts, using a z-ordered
// active-shape sweep: shapes are tracked sorted by (z-index, shape id); only
// shapes at or above the current z-floor (the highest opaque shape's
// z-index) contribute spans, since anything below an opaque shape can never
// be seen.
func PlanBaseline(plan *edgeplan.EdgePlan, ys []float64, xRange XRange) []*ScanlinePlan {
	intercepts := make([][]edgeplan.ShapeIntercept, len(ys))
	plan.InterceptsOnScanlines(ys, intercepts)

	out := make([]*ScanlinePlan, len(ys))
	for row, ics := range intercepts {
		out[row] = planBaselineRow(plan, ics, xRange)
	}
	return out
}

func planBaselineRow(edges *edgeplan.EdgePlan, ics []edgeplan.ShapeIntercept, xRange XRange) *ScanlinePlan {
	result := New()
	if len(ics) == 0 {
		return result
	}

	active := newInterceptState()
	i := 0

	// Trace intercepts before the visible range without emitting spans, so
	// shapes that start off-screen are still tracked as active on entry.
	for i < len(ics) && int(math.Ceil(ics[i].X)) < xRange.Start {
		ic := ics[i]
		desc := edges.ShapeDescriptor(ic.Shape)
		active.addIntercept(ic.Dir, ic.Shape, desc, ic.X)
		i++
	}
	if i >= len(ics) {
		return result
	}

	active.clipStartX(float64(xRange.Start))

	lastX := xRange.Start
	var itemScratch []PlanItem
	zFloor := active.zFloor

	for {
		ic := ics[i]
		nextX := int(math.Ceil(ic.X))
		if nextX > xRange.End {
			nextX = xRange.End
		}

		depth := active.len()
		desc := edges.ShapeDescriptor(ic.Shape)

		zIndex := int64(0)
		if desc != nil {
			zIndex = desc.ZIndex
		}

		// An intercept of a shape below the z-floor changes nothing visible,
		// so the pending span keeps running past it; reaching the end of the
		// range always flushes it.
		visible := zIndex >= zFloor || nextX >= xRange.End
		if visible && nextX != lastX && depth > 0 {
			itemScratch = itemScratch[:0]
			isOpaque := false
			for k := depth - 1; k >= 0; k-- {
				shape := active.get(k)
				sd := edges.ShapeDescriptor(shape.shapeID)
				if sd == nil {
					continue
				}
				for _, pid := range sd.Programs {
					itemScratch = append(itemScratch, RunItem(pid))
				}
				if sd.IsOpaque {
					isOpaque = true
					break
				}
			}
			if len(itemScratch) > 0 {
				result.AddSpan(ScanSpan{
					XRange: XRange{Start: lastX, End: nextX},
					Items:  append([]PlanItem(nil), itemScratch...),
					Opaque: isOpaque,
				})
			}
		}

		active.addIntercept(ic.Dir, ic.Shape, desc, ic.X)
		zFloor = active.zFloor
		if visible {
			lastX = nextX
		}

		if nextX >= xRange.End {
			break
		}
		i++
		if i >= len(ics) {
			break
		}
	}

	return result
}
