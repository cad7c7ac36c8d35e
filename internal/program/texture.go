package program

import (
	"github.com/arclight-gfx/rasterpipe/internal/color"
	"github.com/arclight-gfx/rasterpipe/internal/texture"
)

// Affine is a minimal scale + translate + rotate-free affine mapping from
// pixel space to texture space, sufficient for the program kinds in this
// package. A full shear/rotation matrix belongs to a drawing-command
// interpreter layered on top of this core; programs only need to place and
// scale their own sample space.
type Affine struct {
	ScaleX, ScaleY float64
	OffsetX, OffsetY float64
}

// Apply maps a pixel-space coordinate into texture space.
func (a Affine) Apply(x, y float64) (u, v float64) {
	return (x-a.OffsetX)/a.ScaleX, (y-a.OffsetY)/a.ScaleY
}

// Identity returns the identity affine mapping.
func Identity() Affine {
	return Affine{ScaleX: 1, ScaleY: 1}
}

// Texture is a pixel program kind that samples a texture through a Sampler,
// mapping pixel coordinates to texture space with an Affine.
type Texture struct{}

// TextureData is the parameter type bound via Cache.Bind for Texture.
type TextureData struct {
	Sampler   *texture.Sampler
	Transform Affine
}

// Bind implements Kind.
func (Texture) Bind(data any) BoundFunc {
	d := data.(TextureData)
	return func(dst []color.PixelF32, xRange XRange, y float64) {
		for i := range dst {
			px := float64(xRange.Start + i)
			u, v := d.Transform.Apply(px+0.5, y+0.5)
			p16 := d.Sampler.Sample(u, v)
			dst[i] = color.PixelF32{
				R: float32(p16.R) / 65535,
				G: float32(p16.G) / 65535,
				B: float32(p16.B) / 65535,
				A: float32(p16.A) / 65535,
			}
		}
	}
}
