package program

import (
	"math"

	"github.com/arclight-gfx/rasterpipe/internal/color"
)

// GradientStop is one colour stop of a gradient LUT, at a position in [0, 1].
type GradientStop struct {
	Pos   float64
	Pixel color.PixelF32
}

// gradientLUT is a precomputed, evenly-spaced colour ramp built once when a
// gradient program instance is bound, grounded on
// internal/span/gradient_lut.go's ColorInterpolator pattern.
type gradientLUT struct {
	entries [256]color.PixelF32
}

func buildGradientLUT(stops []GradientStop) *gradientLUT {
	lut := &gradientLUT{}
	if len(stops) == 0 {
		return lut
	}
	if len(stops) == 1 {
		for i := range lut.entries {
			lut.entries[i] = stops[0].Pixel
		}
		return lut
	}
	for i := range lut.entries {
		t := float64(i) / float64(len(lut.entries)-1)
		lut.entries[i] = sampleStops(stops, t)
	}
	return lut
}

func sampleStops(stops []GradientStop, t float64) color.PixelF32 {
	if t <= stops[0].Pos {
		return stops[0].Pixel
	}
	last := stops[len(stops)-1]
	if t >= last.Pos {
		return last.Pixel
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t >= a.Pos && t <= b.Pos {
			span := b.Pos - a.Pos
			localT := float32(0)
			if span > 0 {
				localT = float32((t - a.Pos) / span)
			}
			return a.Pixel.Scale(1 - localT).Add(b.Pixel.Scale(localT))
		}
	}
	return last.Pixel
}

func (l *gradientLUT) at(t float64) color.PixelF32 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	idx := int(t * float64(len(l.entries)-1))
	return l.entries[idx]
}

// LinearGradient is a pixel program kind painting a linear ramp between two
// points in pixel space.
type LinearGradient struct{}

// LinearGradientData is the parameter type bound for LinearGradient.
type LinearGradientData struct {
	X0, Y0, X1, Y1 float64
	Stops          []GradientStop
}

// Bind implements Kind.
func (LinearGradient) Bind(data any) BoundFunc {
	d := data.(LinearGradientData)
	lut := buildGradientLUT(d.Stops)
	dx, dy := d.X1-d.X0, d.Y1-d.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		lenSq = 1
	}
	return func(dst []color.PixelF32, xRange XRange, y float64) {
		for i := range dst {
			px := float64(xRange.Start+i) + 0.5
			t := ((px-d.X0)*dx + (y+0.5-d.Y0)*dy) / lenSq
			dst[i] = lut.at(t)
		}
	}
}

// RadialGradient is a pixel program kind painting a radial ramp from a
// centre point outward to a given radius.
type RadialGradient struct{}

// RadialGradientData is the parameter type bound for RadialGradient.
type RadialGradientData struct {
	CX, CY, Radius float64
	Stops          []GradientStop
}

// Bind implements Kind.
func (RadialGradient) Bind(data any) BoundFunc {
	d := data.(RadialGradientData)
	lut := buildGradientLUT(d.Stops)
	r := d.Radius
	if r <= 0 {
		r = 1
	}
	return func(dst []color.PixelF32, xRange XRange, y float64) {
		for i := range dst {
			px := float64(xRange.Start+i) + 0.5
			dx, dy := px-d.CX, y+0.5-d.CY
			t := math.Sqrt(dx*dx+dy*dy) / r
			dst[i] = lut.at(t)
		}
	}
}
