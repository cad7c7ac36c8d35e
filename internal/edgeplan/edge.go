package edgeplan

// Edge is the polymorphic capability set every edge variant implements.
// Concrete variants (rectangle, polyline, bezier, stroke, clipped-shape)
// live in package edges and only depend on this interface.
//
// An edge has two lifecycle states: unprepared (constructed) and prepared
// (PrepareToRender invoked at least once). Intercepts must not be queried
// before preparation; EdgePlan enforces this and panics otherwise, since
// querying an unprepared edge is always a caller bug rather than a
// recoverable runtime condition.
type Edge interface {
	// Clone returns an independent copy of this edge, unprepared or
	// carrying the same prepared state as the receiver.
	Clone() Edge

	// PrepareToRender performs any work needed before Intercepts can be
	// called. It is idempotent and independent per edge, so EdgePlan may
	// call it concurrently across many edges.
	PrepareToRender()

	// Shape returns the id of the shape this edge bounds.
	Shape() ShapeId

	// BoundingBox returns a (not necessarily tight) box fully containing
	// this edge.
	BoundingBox() BoundingBox

	// Intercepts computes this edge's intercepts at each position in ys,
	// writing row i's intercepts into out[i]. Implementations must
	// overwrite out[i] entirely (not append to stale contents) and must
	// return intercepts for a given row in strictly increasing x order.
	Intercepts(ys []float64, out [][]EdgeIntercept)
}
