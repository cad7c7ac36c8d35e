package edgeplan

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// EdgePlan owns a set of edges and the shape descriptors they reference. It
// is immutable for the life of a render once PrepareAll has been called.
type EdgePlan struct {
	edges    []Edge
	shapes   []ShapeDescriptor
	prepared bool
}

// New creates an empty edge plan.
func New() *EdgePlan {
	return &EdgePlan{}
}

// AddShape appends a new shape descriptor and returns its dense ShapeId.
func (p *EdgePlan) AddShape(desc ShapeDescriptor) ShapeId {
	id := ShapeId(len(p.shapes))
	p.shapes = append(p.shapes, desc)
	return id
}

// AddEdge adds an edge to the plan. Edges may be added up until the first
// call to PrepareAll.
func (p *EdgePlan) AddEdge(e Edge) {
	if p.prepared {
		panic("edgeplan: AddEdge after PrepareAll")
	}
	p.edges = append(p.edges, e)
}

// ShapeDescriptor returns the descriptor for id. O(1).
func (p *EdgePlan) ShapeDescriptor(id ShapeId) *ShapeDescriptor {
	return &p.shapes[id]
}

// ShapeZIndex returns the z-index of id. O(1).
func (p *EdgePlan) ShapeZIndex(id ShapeId) int64 {
	return p.shapes[id].ZIndex
}

// NumEdges reports how many edges the plan holds.
func (p *EdgePlan) NumEdges() int { return len(p.edges) }

// PrepareAll prepares every edge, in parallel, bounded by GOMAXPROCS. Safe to
// call multiple times; preparation is idempotent per edge.
func (p *EdgePlan) PrepareAll() {
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, e := range p.edges {
		e := e
		g.Go(func() error {
			e.PrepareToRender()
			return nil
		})
	}
	_ = g.Wait() // PrepareToRender never errors; Wait only blocks for completion.
	p.prepared = true
}

// InterceptsOnScanlines computes, for each y in ys, the ordered
// (shape, direction, x) intercepts across every edge whose bounding box
// overlaps that row. out must have len(ys) elements; each row is reset and
// fully repopulated.
func (p *EdgePlan) InterceptsOnScanlines(ys []float64, out [][]ShapeIntercept) {
	if !p.prepared {
		panic("edgeplan: InterceptsOnScanlines before PrepareAll")
	}
	for i := range out {
		out[i] = out[i][:0]
	}
	if len(ys) == 0 {
		return
	}

	minY, maxY := ys[0], ys[0]
	for _, y := range ys {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	scratch := make([][]EdgeIntercept, len(ys))
	for _, e := range p.edges {
		bb := e.BoundingBox()
		if !bb.OverlapsY(minY, maxY) {
			continue
		}
		e.Intercepts(ys, scratch)
		shape := e.Shape()
		for i, row := range scratch {
			if !bb.OverlapsY(ys[i], ys[i]) {
				continue
			}
			for _, ic := range row {
				out[i] = append(out[i], ShapeIntercept{Shape: shape, Dir: ic.Dir, X: ic.X})
			}
		}
	}

	for i := range out {
		row := out[i]
		sort.Slice(row, func(a, b int) bool {
			if row[a].X != row[b].X {
				return row[a].X < row[b].X
			}
			return row[a].Shape < row[b].Shape
		})
	}
}

// ShardsOnScanlines computes, for each y in ys, the shard intercepts built
// from a pair of samples half a pixel above and below y. out must have
// len(ys) elements.
func (p *EdgePlan) ShardsOnScanlines(ys []float64, out [][]ShardIntercept) {
	if !p.prepared {
		panic("edgeplan: ShardsOnScanlines before PrepareAll")
	}
	for i := range out {
		out[i] = out[i][:0]
	}
	if len(ys) == 0 {
		return
	}

	lowerYs := make([]float64, len(ys))
	upperYs := make([]float64, len(ys))
	minY, maxY := ys[0]-0.5, ys[0]+0.5
	for i, y := range ys {
		lowerYs[i] = y - 0.5
		upperYs[i] = y + 0.5
		if lowerYs[i] < minY {
			minY = lowerYs[i]
		}
		if upperYs[i] > maxY {
			maxY = upperYs[i]
		}
	}

	lowerScratch := make([][]EdgeIntercept, len(ys))
	upperScratch := make([][]EdgeIntercept, len(ys))

	for _, e := range p.edges {
		bb := e.BoundingBox()
		if !bb.OverlapsY(minY, maxY) {
			continue
		}
		e.Intercepts(lowerYs, lowerScratch)
		e.Intercepts(upperYs, upperScratch)
		shape := e.Shape()

		for i := range ys {
			if !bb.OverlapsY(lowerYs[i], upperYs[i]) {
				continue
			}
			shards := pairShards(lowerScratch[i], upperScratch[i])
			for _, sh := range shards {
				out[i] = append(out[i], ShardIntercept{
					Shape: shape, Dir: sh.dir, LowerX: sh.lowerX, UpperX: sh.upperX,
				})
			}
		}
	}

	for i := range out {
		row := out[i]
		sort.Slice(row, func(a, b int) bool {
			if row[a].LowerX != row[b].LowerX {
				return row[a].LowerX < row[b].LowerX
			}
			return row[a].Shape < row[b].Shape
		})
	}
}
