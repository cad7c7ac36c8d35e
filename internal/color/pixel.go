package color

// PixelF32 is the 32-bit-per-channel float working pixel format: linear,
// premultiplied RGBA.
type PixelF32 struct {
	R, G, B, A float32
}

// PixelFromCanvas32 builds a working pixel from a canvas colour and a gamma
// value: raises each channel to gamma, then premultiplies by alpha.
func PixelFromCanvas32(c Canvas, gamma float64) PixelF32 {
	r := applyGamma(clampUnit(c.R), gamma)
	g := applyGamma(clampUnit(c.G), gamma)
	b := applyGamma(clampUnit(c.B), gamma)
	a := clampUnit(c.A)
	return PixelF32{
		R: float32(r * a),
		G: float32(g * a),
		B: float32(b * a),
		A: float32(a),
	}
}

// ToCanvas converts a working pixel back to a straight-alpha canvas colour at
// the given gamma (the inverse of PixelFromCanvas32).
func (p PixelF32) ToCanvas(gamma float64) Canvas {
	a := float64(p.A)
	if a <= 0 {
		return Canvas{}
	}
	r := applyInvGamma(float64(p.R)/a, gamma)
	g := applyInvGamma(float64(p.G)/a, gamma)
	b := applyInvGamma(float64(p.B)/a, gamma)
	return Canvas{R: clampUnit(r), G: clampUnit(g), B: clampUnit(b), A: clampUnit(a)}
}

// Add performs componentwise addition.
func (p PixelF32) Add(o PixelF32) PixelF32 {
	return PixelF32{R: p.R + o.R, G: p.G + o.G, B: p.B + o.B, A: p.A + o.A}
}

// Scale multiplies every channel by a scalar.
func (p PixelF32) Scale(s float32) PixelF32 {
	return PixelF32{R: p.R * s, G: p.G * s, B: p.B * s, A: p.A * s}
}

// Mul multiplies componentwise by another pixel.
func (p PixelF32) Mul(o PixelF32) PixelF32 {
	return PixelF32{R: p.R * o.R, G: p.G * o.G, B: p.B * o.B, A: p.A * o.A}
}

// AlphaBlend composites p (source) over dest using the given operation.
func (p PixelF32) AlphaBlend(dest PixelF32, op AlphaOp) PixelF32 {
	srcFn, dstFn := op.Functions()
	srcA, dstA := float64(p.A), float64(dest.A)
	sf := float32(srcFn.eval(srcA, dstA))
	df := float32(dstFn.eval(srcA, dstA))
	return PixelF32{
		R: p.R*sf + dest.R*df,
		G: p.G*sf + dest.G*df,
		B: p.B*sf + dest.B*df,
		A: p.A*sf + dest.A*df,
	}
}

// Pixel16 is the 16-bit-per-channel unsigned fixed-point working format:
// linear, premultiplied RGBA, values in 0..65535 representing 0..1.
type Pixel16 struct {
	R, G, B, A uint16
}

const maxFixed16 = 65535.0

// PixelFromCanvas16 builds a fixed-point working pixel from a canvas colour.
func PixelFromCanvas16(c Canvas, gamma float64) Pixel16 {
	f := PixelFromCanvas32(c, gamma)
	return Pixel16{
		R: toFixed16(f.R),
		G: toFixed16(f.G),
		B: toFixed16(f.B),
		A: toFixed16(f.A),
	}
}

func toFixed16(v float32) uint16 {
	x := clampUnit(float64(v)) * maxFixed16
	if x < 0 {
		return 0
	}
	if x > maxFixed16 {
		return maxFixed16
	}
	return uint16(x + 0.5)
}

// ToCanvas converts a fixed-point working pixel back to a canvas colour.
func (p Pixel16) ToCanvas(gamma float64) Canvas {
	return PixelF32{
		R: float32(p.R) / maxFixed16,
		G: float32(p.G) / maxFixed16,
		B: float32(p.B) / maxFixed16,
		A: float32(p.A) / maxFixed16,
	}.ToCanvas(gamma)
}

// Add performs componentwise addition with saturation at the fixed-point
// format's maximum representable value.
func (p Pixel16) Add(o Pixel16) Pixel16 {
	return Pixel16{
		R: addSat16(p.R, o.R),
		G: addSat16(p.G, o.G),
		B: addSat16(p.B, o.B),
		A: addSat16(p.A, o.A),
	}
}

func addSat16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > 65535 {
		return 65535
	}
	return uint16(sum)
}

// Scale multiplies every channel by a scalar in [0, 1]; values are clamped.
func (p Pixel16) Scale(s float64) Pixel16 {
	s = clampUnit(s)
	return Pixel16{
		R: uint16(clampUnit(float64(p.R)*s/maxFixed16) * maxFixed16),
		G: uint16(clampUnit(float64(p.G)*s/maxFixed16) * maxFixed16),
		B: uint16(clampUnit(float64(p.B)*s/maxFixed16) * maxFixed16),
		A: uint16(clampUnit(float64(p.A)*s/maxFixed16) * maxFixed16),
	}
}

// Mul multiplies componentwise by another pixel (each channel treated as a
// fraction of maxFixed16).
func (p Pixel16) Mul(o Pixel16) Pixel16 {
	mul := func(a, b uint16) uint16 {
		return uint16((uint32(a) * uint32(b)) / 65535)
	}
	return Pixel16{R: mul(p.R, o.R), G: mul(p.G, o.G), B: mul(p.B, o.B), A: mul(p.A, o.A)}
}

// AlphaBlend composites p (source) over dest using the given operation.
func (p Pixel16) AlphaBlend(dest Pixel16, op AlphaOp) Pixel16 {
	srcFn, dstFn := op.Functions()
	srcA, dstA := float64(p.A)/maxFixed16, float64(dest.A)/maxFixed16
	sf := srcFn.eval(srcA, dstA)
	df := dstFn.eval(srcA, dstA)

	blend := func(s, d uint16) uint16 {
		v := float64(s)*sf + float64(d)*df
		if v < 0 {
			return 0
		}
		if v > maxFixed16 {
			return maxFixed16
		}
		return uint16(v + 0.5)
	}
	return Pixel16{R: blend(p.R, dest.R), G: blend(p.G, dest.G), B: blend(p.B, dest.B), A: blend(p.A, dest.A)}
}
