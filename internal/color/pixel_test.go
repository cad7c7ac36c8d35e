package color

import "testing"

func approxEq(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestPixelF32RoundTrip(t *testing.T) {
	cases := []Canvas{
		NewCanvas(1, 1, 1, 1),
		NewCanvas(0.5, 0.25, 0.75, 0.5),
		NewCanvas(0, 0, 0, 0),
		NewCanvas(1, 0, 0, 0.3),
	}
	for _, c := range cases {
		p := PixelFromCanvas32(c, 2.2)
		back := p.ToCanvas(2.2)
		const eps = 1.0 / 256.0
		if !approxEq(back.R, c.R, eps) || !approxEq(back.G, c.G, eps) ||
			!approxEq(back.B, c.B, eps) || !approxEq(back.A, c.A, eps) {
			t.Errorf("round trip mismatch for %+v: got %+v", c, back)
		}
	}
}

func TestPixelF32Premultiplied(t *testing.T) {
	p := PixelFromCanvas32(NewCanvas(1, 1, 1, 0.5), 1.0)
	if p.R != 0.5 || p.G != 0.5 || p.B != 0.5 || p.A != 0.5 {
		t.Errorf("expected premultiplied 0.5 channels, got %+v", p)
	}
}

func TestPixel16Saturation(t *testing.T) {
	a := Pixel16{R: 60000, A: 60000}
	b := Pixel16{R: 60000, A: 60000}
	sum := a.Add(b)
	if sum.R != 65535 || sum.A != 65535 {
		t.Errorf("expected saturating add to clamp at 65535, got %+v", sum)
	}
}

func TestAlphaOpSourceOver(t *testing.T) {
	src := PixelF32{R: 1, G: 0, B: 0, A: 1}
	dst := PixelF32{R: 0, G: 1, B: 0, A: 1}
	out := src.AlphaBlend(dst, OpSourceOver)
	if !approxEq(float64(out.R), 1, 1e-6) || !approxEq(float64(out.G), 0, 1e-6) {
		t.Errorf("source-over of opaque src should fully occlude dest, got %+v", out)
	}
}

func TestAlphaOpClear(t *testing.T) {
	src := PixelF32{R: 1, G: 1, B: 1, A: 1}
	dst := PixelF32{R: 1, G: 1, B: 1, A: 1}
	out := src.AlphaBlend(dst, OpClear)
	if out != (PixelF32{}) {
		t.Errorf("clear should zero all channels, got %+v", out)
	}
}

func TestGammaLUTEncode(t *testing.T) {
	lut := NewGammaLUT(2.2)
	if lut.Encode8(0) != 0 {
		t.Errorf("expected 0 to encode to 0, got %d", lut.Encode8(0))
	}
	if lut.Encode8(1.0) != 255 {
		t.Errorf("expected 1.0 to encode to 255, got %d", lut.Encode8(1.0))
	}
	// Monotonicity.
	prev := uint8(0)
	for i := 0; i <= 16; i++ {
		v := lut.Encode8(float64(i) / 16.0)
		if v < prev {
			t.Fatalf("gamma LUT not monotonic at step %d: %d < %d", i, v, prev)
		}
		prev = v
	}
}

func TestGammaLUTRebuildOnChange(t *testing.T) {
	lut := NewGammaLUT(1.0)
	v1 := lut.Encode8(0.5)
	lut.Rebuild(2.2)
	v2 := lut.Encode8(0.5)
	if v1 == v2 {
		t.Errorf("expected gamma change to alter encoding of 0.5, got %d both times", v1)
	}
}

func TestMultiplyBlendMode(t *testing.T) {
	src := PixelF32{R: 0.5, G: 0.5, B: 0.5, A: 1}
	dst := PixelF32{R: 1, G: 1, B: 1, A: 1}
	out := Multiply(src, dst)
	if !approxEq(float64(out.R), 0.5, 1e-6) {
		t.Errorf("multiply of 0.5 over white should be 0.5, got %f", out.R)
	}
}
