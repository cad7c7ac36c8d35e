// Package scanplan turns edge-plan intercepts into per-scanline drawing
// plans: ordered stacks of pixel programs to run across x-ranges, with
// opaque spans eliding anything they fully occlude.
package scanplan

// Transform maps between the edge plan's x coordinate space and pixel
// column coordinates.
type Transform struct {
	offset     float64
	scale      float64
	scaleRecip float64
}

// Identity returns a transform that maps edge-plan x directly to pixels.
func Identity() Transform {
	return Transform{offset: 0, scale: 1, scaleRecip: 1}
}

// ForRegion builds a transform mapping [x0,x1) in the edge plan to
// [0,pixelWidth) in pixel columns.
func ForRegion(x0, x1 float64, pixelWidth int) Transform {
	span := x1 - x0
	return Transform{
		offset:     -x0,
		scale:      float64(pixelWidth) / span,
		scaleRecip: span / float64(pixelWidth),
	}
}

// SourceToPixel converts an edge-plan x coordinate to a pixel-space x.
func (t Transform) SourceToPixel(sourceX float64) float64 {
	return (sourceX + t.offset) * t.scale
}

// PixelToSource converts a pixel column to an edge-plan x coordinate.
func (t Transform) PixelToSource(pixelX int) float64 {
	return float64(pixelX)*t.scaleRecip - t.offset
}

// PixelSize reports the width of one pixel column in edge-plan units.
func (t Transform) PixelSize() float64 { return t.scaleRecip }
