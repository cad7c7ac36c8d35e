package color

// BlendMode names a driver-level blend mode. The core itself only executes
// AlphaOp Porter-Duff compositing (see AlphaOp); BlendMode exists so a
// driver can name a mode when constructing the PixelProgramPlan for a
// shape, and multiply/screen route through the composite math in
// Multiply/Screen below rather than AlphaOp.
type BlendMode int

const (
	BlendSourceOver BlendMode = iota
	BlendDestinationOver
	BlendSourceIn
	BlendDestinationIn
	BlendSourceOut
	BlendDestinationOut
	BlendSourceAtop
	BlendDestinationAtop
	BlendMultiply
	BlendScreen
	BlendXor
	BlendClear
)

// AlphaOp reports the Porter-Duff operation this mode maps to, for the modes
// that are pure compositing. Multiply and Screen require colour-space-aware
// precomputation and are not representable as a single AlphaOp; ok is false
// for those, and the caller should use Multiply/Screen directly.
func (m BlendMode) AlphaOp() (op AlphaOp, ok bool) {
	switch m {
	case BlendSourceOver:
		return OpSourceOver, true
	case BlendDestinationOver:
		return OpDestOver, true
	case BlendSourceIn:
		return OpSourceIn, true
	case BlendDestinationIn:
		return OpDestIn, true
	case BlendSourceOut:
		return OpSourceHeldOut, true
	case BlendDestinationOut:
		return OpDestHeldOut, true
	case BlendSourceAtop:
		return OpSourceAtop, true
	case BlendDestinationAtop:
		return OpDestAtop, true
	case BlendXor:
		return OpXor, true
	case BlendClear:
		return OpClear, true
	default:
		return OpSourceOver, false
	}
}

// Multiply blends src over dest using the multiply formula:
// Dca' = Sca.Dca + Sca.(1 - Da) + Dca.(1 - Sa), Da' = Da + Sa - Sa.Da.
func Multiply(src, dest PixelF32) PixelF32 {
	s1a, d1a := 1-src.A, 1-dest.A
	return PixelF32{
		R: src.R*dest.R + src.R*d1a + dest.R*s1a,
		G: src.G*dest.G + src.G*d1a + dest.G*s1a,
		B: src.B*dest.B + src.B*d1a + dest.B*s1a,
		A: dest.A + src.A - src.A*dest.A,
	}
}

// Screen blends src over dest using the screen formula:
// Dca' = Sca + Dca - Sca.Dca, Da' = Da + Sa - Sa.Da.
func Screen(src, dest PixelF32) PixelF32 {
	return PixelF32{
		R: dest.R + src.R - src.R*dest.R,
		G: dest.G + src.G - src.G*dest.G,
		B: dest.B + src.B - src.B*dest.B,
		A: dest.A + src.A - src.A*dest.A,
	}
}
