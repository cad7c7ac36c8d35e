// Package edges provides the concrete Edge implementations edge plans are
// built from: axis-aligned rectangles, polylines, flattened and direct
// cubic beziers, stroke outlines, and clipped shapes.
package edges

import "github.com/arclight-gfx/rasterpipe/internal/edgeplan"

// Rectangle is an axis-aligned filled rectangle edge.
type Rectangle struct {
	shape                  edgeplan.ShapeId
	minX, minY, maxX, maxY float64
}

// NewRectangle builds a Rectangle edge for shape, normalizing corners so
// (minX,minY) is the lower bound regardless of argument order.
func NewRectangle(shape edgeplan.ShapeId, x0, y0, x1, y1 float64) *Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return &Rectangle{shape: shape, minX: x0, minY: y0, maxX: x1, maxY: y1}
}

func (r *Rectangle) Clone() edgeplan.Edge { cp := *r; return &cp }
func (r *Rectangle) PrepareToRender()     {}
func (r *Rectangle) Shape() edgeplan.ShapeId { return r.shape }

func (r *Rectangle) BoundingBox() edgeplan.BoundingBox {
	return edgeplan.BoundingBox{MinX: r.minX, MinY: r.minY, MaxX: r.maxX, MaxY: r.maxY}
}

func (r *Rectangle) Intercepts(ys []float64, out [][]edgeplan.EdgeIntercept) {
	for i, y := range ys {
		out[i] = out[i][:0]
		if y < r.minY || y > r.maxY {
			continue
		}
		out[i] = append(out[i],
			edgeplan.EdgeIntercept{Dir: edgeplan.Toggle, X: r.minX},
			edgeplan.EdgeIntercept{Dir: edgeplan.Toggle, X: r.maxX},
		)
	}
}
