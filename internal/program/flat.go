package program

import "github.com/arclight-gfx/rasterpipe/internal/color"

// FlatColor is the simplest pixel program kind: paints every pixel in the
// span with one constant working-format colour.
type FlatColor struct{}

// FlatColorData is the parameter type bound via Cache.Bind for FlatColor.
type FlatColorData struct {
	Pixel color.PixelF32
}

// Bind implements Kind.
func (FlatColor) Bind(data any) BoundFunc {
	d := data.(FlatColorData)
	return func(dst []color.PixelF32, xRange XRange, y float64) {
		for i := range dst {
			dst[i] = d.Pixel
		}
	}
}
