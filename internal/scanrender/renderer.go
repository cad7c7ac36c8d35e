// Package scanrender executes a scanplan.ScanlinePlan against a destination
// row buffer, running pixel programs and compositing their output through a
// blend-buffer stack.
package scanrender

import (
	"fmt"

	"github.com/arclight-gfx/rasterpipe/internal/color"
	"github.com/arclight-gfx/rasterpipe/internal/program"
	"github.com/arclight-gfx/rasterpipe/internal/scanplan"
)

// Renderer executes scanline plans against a working-format row buffer. One
// Renderer (with its own blend-stack scratch) should be used per worker
// goroutine during a parallel frame render — Go has no goroutine-local
// storage, so scratch state is held explicitly per worker instead of
// assumed thread-local.
type Renderer struct {
	cache *program.Cache
	stack [][]color.PixelF32
}

// New creates a Renderer bound to cache, the program registry spans in a
// plan reference.
func New(cache *program.Cache) *Renderer {
	return &Renderer{cache: cache}
}

// RenderSpan executes span's items, writing the final composited pixels
// into dst[span.XRange.Start:span.XRange.End]. dc resolves the program data
// ids a Run item references. Panics if the blend stack is not empty at the
// end of the span — an unbalanced StartBlend/Blend sequence is always a
// caller bug, never a recoverable runtime condition.
func (r *Renderer) RenderSpan(span scanplan.ScanSpan, dc *program.DataCache, dst []color.PixelF32) {
	base := dst[span.XRange.Start:span.XRange.End]
	r.stack = r.stack[:0]

	for _, item := range span.Items {
		switch item.Kind {
		case scanplan.Run:
			target := r.top(base)
			r.cache.Run(item.Program, dc, target, program.XRange{Start: span.XRange.Start, End: span.XRange.End}, 0)

		case scanplan.StartBlend:
			r.stack = append(r.stack, make([]color.PixelF32, len(base)))

		case scanplan.Blend:
			r.popBlend(base, item.Alpha, item.Alpha)

		case scanplan.LinearBlend:
			r.popBlendLinear(base, item.AlphaStart, item.AlphaEnd)
		}
	}

	if len(r.stack) != 0 {
		panic(fmt.Sprintf("scanrender: blend stack not empty at end of span (depth %d)", len(r.stack)))
	}
}

func (r *Renderer) top(base []color.PixelF32) []color.PixelF32 {
	if len(r.stack) == 0 {
		return base
	}
	return r.stack[len(r.stack)-1]
}

func (r *Renderer) popBlend(base []color.PixelF32, alphaStart, alphaEnd float64) {
	if len(r.stack) == 0 {
		panic("scanrender: Blend with nothing on the blend stack")
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	dst := r.top(base)

	n := len(top)
	for i, src := range top {
		a := alphaStart
		if n > 1 {
			a = alphaStart + (alphaEnd-alphaStart)*float64(i)/float64(n-1)
		}
		src.A *= float32(a)
		src.R *= float32(a)
		src.G *= float32(a)
		src.B *= float32(a)
		dst[i] = src.AlphaBlend(dst[i], color.OpSourceOver)
	}
}

func (r *Renderer) popBlendLinear(base []color.PixelF32, alphaStart, alphaEnd float64) {
	r.popBlend(base, alphaStart, alphaEnd)
}
