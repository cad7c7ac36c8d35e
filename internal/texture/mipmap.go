package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// Pyramid is a mipmap pyramid: level 0 is the full-resolution source, and
// each subsequent level is a 2x box reduction of the previous one, generated
// top-down by repeated averaging.
//
// For non-power-of-two textures the box reduction weights aren't uniquely
// determined by the dimensions alone; this implementation halves each
// dimension by integer division, rounding down, and reduces with
// golang.org/x/image/draw's bilinear scaler, which approximates a box filter
// well for exact 2x downsampling and avoids hand-rolling a resampler
// (NewSource8FromImage uses the same package, for format conversion only).
type Pyramid struct {
	Levels []*Source8
}

// BuildPyramid produces a mipmap pyramid from base, halving each dimension
// (never below 1px) until the last level is 1x1.
func BuildPyramid(base *Source8) *Pyramid {
	p := &Pyramid{Levels: []*Source8{base}}
	cur := base
	for cur.Width > 1 || cur.Height > 1 {
		next := reduceByHalf(cur)
		p.Levels = append(p.Levels, next)
		cur = next
	}
	return p
}

// Level returns the pyramid level closest to the requested level, clamped to
// the available range.
func (p *Pyramid) Level(level int) *Source8 {
	if level < 0 {
		level = 0
	}
	if level >= len(p.Levels) {
		level = len(p.Levels) - 1
	}
	return p.Levels[level]
}

func reduceByHalf(src *Source8) *Source8 {
	w := maxInt(1, src.Width/2)
	h := maxInt(1, src.Height/2)

	srcImg := &image.NRGBA{Pix: src.Pix, Stride: src.Width * 4, Rect: image.Rect(0, 0, src.Width, src.Height)}
	dstImg := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)

	return &Source8{Width: w, Height: h, Pix: dstImg.Pix, Gamma: src.Gamma}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
