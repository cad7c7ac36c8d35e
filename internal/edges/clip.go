package edges

import (
	"sort"

	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
)

// ClippedShape reports intercepts equal to the boolean intersection of an
// inner shape's covered intervals and a clip region's covered intervals on
// every queried scanline. Both the inner shape and the clip region are
// themselves arbitrary sets of prepared edges, evaluated by even-odd parity
// over their own intercepts; this mirrors polygon-clipping as a boolean set
// operation, simplified here to 1-D interval algebra per scanline rather
// than full 2-D polygon reconstruction.
type ClippedShape struct {
	shape edgeplan.ShapeId
	inner []edgeplan.Edge
	clip  []edgeplan.Edge
	bbox  edgeplan.BoundingBox
}

// NewClippedShape builds a clipped-shape edge reporting shape's identity but
// deriving geometry from the intersection of inner and clip.
func NewClippedShape(shape edgeplan.ShapeId, inner, clip []edgeplan.Edge) *ClippedShape {
	return &ClippedShape{shape: shape, inner: inner, clip: clip}
}

func (c *ClippedShape) Clone() edgeplan.Edge {
	cp := &ClippedShape{shape: c.shape, bbox: c.bbox}
	for _, e := range c.inner {
		cp.inner = append(cp.inner, e.Clone())
	}
	for _, e := range c.clip {
		cp.clip = append(cp.clip, e.Clone())
	}
	return cp
}

func (c *ClippedShape) Shape() edgeplan.ShapeId { return c.shape }

func (c *ClippedShape) PrepareToRender() {
	var bbox edgeplan.BoundingBox
	first := true
	for _, e := range c.inner {
		e.PrepareToRender()
		bbox = unionOrFirst(bbox, e.BoundingBox(), &first)
	}
	for _, e := range c.clip {
		e.PrepareToRender()
	}
	if first {
		bbox = edgeplan.BoundingBox{}
	}
	c.bbox = bbox
}

func unionOrFirst(acc, b edgeplan.BoundingBox, first *bool) edgeplan.BoundingBox {
	if *first {
		*first = false
		return b
	}
	return edgeplan.BoundingBox{
		MinX: min64(acc.MinX, b.MinX), MinY: min64(acc.MinY, b.MinY),
		MaxX: max64(acc.MaxX, b.MaxX), MaxY: max64(acc.MaxY, b.MaxY),
	}
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (c *ClippedShape) BoundingBox() edgeplan.BoundingBox { return c.bbox }

func (c *ClippedShape) Intercepts(ys []float64, out [][]edgeplan.EdgeIntercept) {
	innerScratch := make([][]edgeplan.EdgeIntercept, len(ys))
	clipScratch := make([][]edgeplan.EdgeIntercept, len(ys))

	for i := range out {
		out[i] = out[i][:0]
	}

	// Accumulate every inner/clip edge's x values per row, then resolve
	// even-odd parity to recover covered intervals before intersecting.
	innerXs := make([][]float64, len(ys))
	clipXs := make([][]float64, len(ys))
	for _, e := range c.inner {
		e.Intercepts(ys, innerScratch)
		for i, row := range innerScratch {
			for _, ic := range row {
				innerXs[i] = append(innerXs[i], ic.X)
			}
		}
	}
	for _, e := range c.clip {
		e.Intercepts(ys, clipScratch)
		for i, row := range clipScratch {
			for _, ic := range row {
				clipXs[i] = append(clipXs[i], ic.X)
			}
		}
	}

	for i := range ys {
		sort.Float64s(innerXs[i])
		sort.Float64s(clipXs[i])
		innerSpans := parityIntervals(innerXs[i])
		clipSpans := parityIntervals(clipXs[i])
		for _, x := range intersectBoundaries(innerSpans, clipSpans) {
			out[i] = append(out[i], edgeplan.EdgeIntercept{Dir: edgeplan.Toggle, X: x})
		}
	}
}

type interval struct{ lo, hi float64 }

// parityIntervals turns a sorted list of even-odd crossing x-positions into
// the covered [lo,hi) intervals.
func parityIntervals(xs []float64) []interval {
	var out []interval
	for i := 0; i+1 < len(xs); i += 2 {
		out = append(out, interval{lo: xs[i], hi: xs[i+1]})
	}
	return out
}

// intersectBoundaries computes the boundary x-positions of the intersection
// of two interval sets, suitable for re-expression as Toggle intercepts.
func intersectBoundaries(a, b []interval) []float64 {
	var out []float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := max64(a[i].lo, b[j].lo)
		hi := min64(a[i].hi, b[j].hi)
		if lo < hi {
			out = append(out, lo, hi)
		}
		if a[i].hi < b[j].hi {
			i++
		} else {
			j++
		}
	}
	return out
}
