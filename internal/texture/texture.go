// Package texture implements the two texture input formats consumed by pixel
// programs: 8-bit RGBA non-premultiplied with an associated gamma, and
// 16-bit linear premultiplied RGBA. It also builds mipmap pyramids by
// successive 2x box reductions.
package texture

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/arclight-gfx/rasterpipe/internal/color"
)

// WrapMode selects how out-of-range texture coordinates are resolved.
type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapRepeat
)

func (w WrapMode) apply(v, size int) int {
	if size <= 0 {
		return 0
	}
	switch w {
	case WrapRepeat:
		v %= size
		if v < 0 {
			v += size
		}
		return v
	default: // WrapClamp
		if v < 0 {
			return 0
		}
		if v >= size {
			return size - 1
		}
		return v
	}
}

// Source8 is an 8-bit RGBA, non-premultiplied texture with an associated
// gamma (default 2.2).
type Source8 struct {
	Width, Height int
	Pix           []uint8 // RGBA8 non-premultiplied, row-major, 4 bytes/pixel
	Gamma         float64
}

// NewSource8FromImage builds a Source8 from a standard library image, using
// the given gamma (2.2 if zero).
func NewSource8FromImage(img image.Image, gamma float64) *Source8 {
	if gamma == 0 {
		gamma = 2.2
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Source8{Width: w, Height: h, Pix: rgba.Pix, Gamma: gamma}
}

// convLUT caches the channel -> linear mapping for one gamma value. As with
// color.GammaLUT this is an explicit per-worker struct rather than real
// thread-local state.
type convLUT struct {
	gamma  float64
	linear [256]float64 // channel -> linear, independent of alpha (straight colour)
}

func newConvLUT(gamma float64) *convLUT {
	l := &convLUT{}
	l.rebuild(gamma)
	return l
}

func (l *convLUT) rebuild(gamma float64) {
	if l.gamma == gamma {
		return
	}
	l.gamma = gamma
	for i := 0; i < 256; i++ {
		v := float64(i) / 255.0
		if gamma != 1 && v > 0 {
			v = math.Pow(v, gamma)
		}
		l.linear[i] = v
	}
}

// texel16 samples texture at integer pixel coordinates (x, y), returning a
// 16-bit linear premultiplied pixel, converted through a shared convLUT.
func (s *Source8) texel16(lut *convLUT, x, y int, wrap WrapMode) color.Pixel16 {
	x = wrap.apply(x, s.Width)
	y = wrap.apply(y, s.Height)
	i := (y*s.Width + x) * 4
	r := lut.linear[s.Pix[i+0]]
	g := lut.linear[s.Pix[i+1]]
	b := lut.linear[s.Pix[i+2]]
	a := float64(s.Pix[i+3]) / 255.0
	return color.PixelFromCanvas16(color.NewCanvas(r, g, b, a), 1.0)
}

// Sampler reads texels from a Source8, applying a wrap mode and either
// nearest or bilinear filtering, producing 16-bit linear premultiplied
// pixels as the common currency for downstream blending.
type Sampler struct {
	src       *Source8
	lut       *convLUT
	wrap      WrapMode
	bilinear  bool
}

// NewSampler builds a sampler over src. One Sampler should be built per
// rendering worker, since it owns a convLUT scratch table that rebuild
// mutates in place as gamma changes.
func NewSampler(src *Source8, wrap WrapMode, bilinear bool) *Sampler {
	return &Sampler{src: src, lut: newConvLUT(src.Gamma), wrap: wrap, bilinear: bilinear}
}

// Sample reads the texture at floating point texture-space coordinates.
func (s *Sampler) Sample(u, v float64) color.Pixel16 {
	s.lut.rebuild(s.src.Gamma)
	if !s.bilinear {
		return s.src.texel16(s.lut, int(u+0.5), int(v+0.5), s.wrap)
	}

	x0, y0 := floor(u), floor(v)
	fx, fy := u-float64(x0), v-float64(y0)

	p00 := s.src.texel16(s.lut, x0, y0, s.wrap)
	p10 := s.src.texel16(s.lut, x0+1, y0, s.wrap)
	p01 := s.src.texel16(s.lut, x0, y0+1, s.wrap)
	p11 := s.src.texel16(s.lut, x0+1, y0+1, s.wrap)

	top := lerp16(p00, p10, fx)
	bot := lerp16(p01, p11, fx)
	return lerp16(top, bot, fy)
}

func floor(v float64) int {
	i := int(v)
	if v < float64(i) {
		i--
	}
	return i
}

func lerp16(a, b color.Pixel16, t float64) color.Pixel16 {
	l := func(x, y uint16) uint16 {
		return uint16(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.Pixel16{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}
