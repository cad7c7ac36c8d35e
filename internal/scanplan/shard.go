package scanplan

import (
	"math"

	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
)

// PlanShard computes an anti-aliased scanline plan using edge shards: each
// edge reports a [LowerX,UpperX] transition range per row rather than a
// single crossing, and coverage fades linearly across that range instead of
// snapping to a pixel boundary. Concave or self-intersecting shapes can
// produce more shard starts than finishes on a given row; this
// implementation resolves the mismatch deterministically (leftmost-first)
// inside edgeplan.ShardsOnScanlines, before this planner ever sees the
// result.
func PlanShard(plan *edgeplan.EdgePlan, ys []float64, xRange XRange) []*ScanlinePlan {
	shards := make([][]edgeplan.ShardIntercept, len(ys))
	plan.ShardsOnScanlines(ys, shards)

	out := make([]*ScanlinePlan, len(ys))
	for row, row_shards := range shards {
		out[row] = planShardRow(plan, row_shards, xRange)
	}
	return out
}

// shardEvent is either the start or finish of a shard's fade, derived from
// splitting each ShardIntercept into two boundary events for a left-to-right
// sweep.
type shardEvent struct {
	x        float64
	isFinish bool
	shard    edgeplan.ShardIntercept
}

// fade tracks, per shape currently mid-transition on the sweep, the x-range
// over which its coverage is ramping and in which direction.
type fade struct {
	shape   edgeplan.ShapeId
	startX  float64
	endX    float64
	growing bool // true: 0 -> full coverage; false: full -> 0
}

func isFading(fading []fade, shape edgeplan.ShapeId) bool {
	for _, f := range fading {
		if f.shape == shape {
			return true
		}
	}
	return false
}

func planShardRow(edges *edgeplan.EdgePlan, shards []edgeplan.ShardIntercept, xRange XRange) *ScanlinePlan {
	result := New()
	if len(shards) == 0 {
		return result
	}

	events := make([]shardEvent, 0, len(shards)*2)
	for _, sh := range shards {
		events = append(events, shardEvent{x: sh.LowerX, shard: sh}, shardEvent{x: sh.UpperX, isFinish: true, shard: sh})
	}
	sortShardEvents(events)

	active := newInterceptState()
	var fading []fade

	lastX := float64(xRange.Start)
	var itemScratch []PlanItem

	emit := func(endX float64) {
		if endX <= lastX {
			return
		}
		depth := active.len()
		if depth == 0 && len(fading) == 0 {
			lastX = endX
			return
		}

		itemScratch = itemScratch[:0]
		isOpaque := false
		for k := depth - 1; k >= 0; k-- {
			shape := active.get(k)
			if isFading(fading, shape.shapeID) {
				// This shape's contribution over this sub-range is drawn by
				// the blend-wrap below instead: it is still "active" for
				// z-ordering purposes, but its coverage here is partial, so
				// it must not also render unblended into the solid base.
				continue
			}
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

		span := ScanSpan{
			XRange: XRange{Start: clampPixel(lastX, xRange), End: clampPixel(endX, xRange)},
			Opaque: isOpaque && len(fading) == 0,
		}
		if span.XRange.Width() <= 0 {
			lastX = endX
			return
		}

		if len(fading) == 0 {
			span.Items = append([]PlanItem(nil), itemScratch...)
			result.AddSpan(span)
			lastX = endX
			return
		}

		// At least one shape is fading in/out across this sub-range: wrap
		// the stacked programs in a blend pair so their contribution ramps
		// smoothly instead of snapping on at a pixel boundary.
		base := append([]PlanItem(nil), itemScratch...)
		for _, f := range fading {
			sd := edges.ShapeDescriptor(f.shape)
			if sd == nil {
				continue
			}
			a0, a1 := 0.0, 1.0
			if !f.growing {
				a0, a1 = 1.0, 0.0
			}
			base = append(base, PlanItem{Kind: StartBlend})
			for _, pid := range sd.Programs {
				base = append(base, RunItem(pid))
			}
			base = append(base, LinearBlendItem(a0, a1))
		}
		span.Items = base
		span.Opaque = false
		result.AddSpan(span)
		lastX = endX
	}

	for idx := 0; idx < len(events); idx++ {
		ev := events[idx]
		emit(ev.x)

		if !ev.isFinish {
			// Whether this shard represents the shape becoming visible or
			// leaving depends on whether it is already in the active set,
			// not on the edge's own Direction tag: an even-odd (Toggle)
			// edge reports the same direction on both its entering and
			// leaving crossings, so parity against the current active set
			// is the only reliable signal.
			desc := edges.ShapeDescriptor(ev.shard.Shape)
			_, alreadyActive := active.find(desc.ZIndex, ev.shard.Shape)
			fading = append(fading, fade{shape: ev.shard.Shape, startX: ev.shard.LowerX, endX: ev.shard.UpperX, growing: !alreadyActive})
		} else {
			for i, f := range fading {
				if f.shape == ev.shard.Shape && f.endX == ev.shard.UpperX {
					fading = append(fading[:i], fading[i+1:]...)
					break
				}
			}
			desc := edges.ShapeDescriptor(ev.shard.Shape)
			active.addIntercept(ev.shard.Dir, ev.shard.Shape, desc, ev.x)
		}
	}

	emit(float64(xRange.End))
	return result
}

func clampPixel(x float64, xRange XRange) int {
	v := int(math.Round(x))
	if v < xRange.Start {
		return xRange.Start
	}
	if v > xRange.End {
		return xRange.End
	}
	return v
}

func sortShardEvents(events []shardEvent) {
	// Simple insertion sort: event counts per row are small (a handful of
	// edges crossing a single scanline), and this keeps finish-before-start
	// ties stable at equal x, which a generic sort.Slice comparator would
	// not guarantee without an explicit tiebreaker.
	for i := 1; i < len(events); i++ {
		j := i
		for j > 0 && eventLess(events[j], events[j-1]) {
			events[j], events[j-1] = events[j-1], events[j]
			j--
		}
	}
}

func eventLess(a, b shardEvent) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	if sameShard(a.shard, b.shard) {
		// A single shard degenerating to zero width (a perfectly vertical
		// edge) must process its own start before its own finish, so
		// "growing" is still determined from the state before this shard
		// ever entered the fading set.
		return !a.isFinish && b.isFinish
	}
	// Finishing a different shard before starting a new one at the same x
	// avoids a spurious zero-width double-counted overlap.
	return a.isFinish && !b.isFinish
}

func sameShard(a, b edgeplan.ShardIntercept) bool {
	return a.Shape == b.Shape && a.LowerX == b.LowerX && a.UpperX == b.UpperX
}
