// Package edgeplan implements the edge plan: a spatially indexed bag of
// vector edges with shape metadata and z-ordering.
package edgeplan

import "github.com/arclight-gfx/rasterpipe/internal/program"

// ShapeId is an opaque dense integer identifying a shape. Every edge
// references exactly one ShapeId.
type ShapeId int

// Direction classifies an edge intercept.
type Direction int

const (
	// Toggle implements the even-odd winding rule: each crossing toggles
	// inside/outside.
	Toggle Direction = iota
	// DirectionOut is a non-zero-winding crossing with the normal facing
	// increasing x.
	DirectionOut
	// DirectionIn is a non-zero-winding crossing with the normal facing
	// decreasing x.
	DirectionIn
)

func (d Direction) String() string {
	switch d {
	case Toggle:
		return "Toggle"
	case DirectionOut:
		return "DirectionOut"
	case DirectionIn:
		return "DirectionIn"
	default:
		return "Direction(?)"
	}
}

// ShapeDescriptor carries the per-shape metadata an edge plan stores
// alongside its edges. Descriptors are immutable for the life of a plan.
type ShapeDescriptor struct {
	ZIndex   int64
	IsOpaque bool
	Programs []program.DataID
}

// BoundingBox is an axis-aligned box in the edge plan's coordinate space. It
// need not be tight, but an edge must be entirely contained within the box
// it reports.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// OverlapsY reports whether the horizontal band [y0, y1] intersects the box.
func (b BoundingBox) OverlapsY(y0, y1 float64) bool {
	return y1 >= b.MinY && y0 <= b.MaxY
}

// EdgeIntercept is the (direction, x) pair an Edge reports for one queried
// y-position.
type EdgeIntercept struct {
	Dir Direction
	X   float64
}

// ShapeIntercept is an EdgeIntercept annotated with the shape it belongs to,
// the unit EdgePlan.InterceptsOnScanlines works in.
type ShapeIntercept struct {
	Shape ShapeId
	Dir   Direction
	X     float64
}

// ShardIntercept pairs an edge's intercepts on two adjacent half-pixel
// scanlines into the x-range over which the edge transitions across a row.
type ShardIntercept struct {
	Shape  ShapeId
	Dir    Direction
	LowerX float64
	UpperX float64
}
