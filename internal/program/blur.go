package program

import (
	"github.com/arclight-gfx/rasterpipe/internal/color"
	"github.com/arclight-gfx/rasterpipe/internal/texture"
)

// BoxBlur is a pixel program kind implementing a box blur over a texture
// sampler, the simplest effective stand-in for a general filter program. Each
// output pixel is the plain average of a square texel window, evaluated
// per-pixel during rendering rather than as a separate post-process; the
// window is averaged in two dimensions at once, not as separable passes.
type BoxBlur struct{}

// BoxBlurData is the parameter type bound for BoxBlur.
type BoxBlurData struct {
	Sampler   *texture.Sampler
	Transform Affine
	Radius    int // in texture texels
	Passes    int // number of box passes; every pass yields the same average, so the result does not depend on it
}

// Bind implements Kind.
func (BoxBlur) Bind(data any) BoundFunc {
	d := data.(BoxBlurData)
	passes := d.Passes
	if passes <= 0 {
		passes = 1
	}
	radius := d.Radius
	if radius <= 0 {
		radius = 1
	}
	return func(dst []color.PixelF32, xRange XRange, y float64) {
		for i := range dst {
			px := float64(xRange.Start + i)
			u, v := d.Transform.Apply(px+0.5, y+0.5)
			dst[i] = sampleBoxAverage(d.Sampler, u, v, radius, passes)
		}
	}
}

// sampleBoxAverage averages a (2*radius+1)^2 texel window around (u, v). The
// loop runs `passes` times, but every pass samples the same window of the
// source texture and does not feed on the previous pass's result, so the
// return value is a single box average whatever `passes` is.
func sampleBoxAverage(s *texture.Sampler, u, v float64, radius, passes int) color.PixelF32 {
	var acc color.PixelF32
	center := color.PixelF32{}
	for pass := 0; pass < passes; pass++ {
		var sum color.PixelF32
		count := 0
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				p16 := s.Sample(u+float64(dx), v+float64(dy))
				sum = sum.Add(color.PixelF32{
					R: float32(p16.R) / 65535,
					G: float32(p16.G) / 65535,
					B: float32(p16.B) / 65535,
					A: float32(p16.A) / 65535,
				})
				count++
			}
		}
		if count > 0 {
			center = sum.Scale(1 / float32(count))
		}
		acc = center
	}
	return acc
}
