// Package frame renders a complete image by fanning a FrameRenderer's work
// out across worker goroutines, one scanline-plan sweep and one scanline
// render per row, writing gamma-encoded output into a caller-provided
// buffer.
package frame

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arclight-gfx/rasterpipe/internal/buffer"
	"github.com/arclight-gfx/rasterpipe/internal/color"
	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
	"github.com/arclight-gfx/rasterpipe/internal/order"
	"github.com/arclight-gfx/rasterpipe/internal/program"
	"github.com/arclight-gfx/rasterpipe/internal/raster/rerr"
	"github.com/arclight-gfx/rasterpipe/internal/scanplan"
	"github.com/arclight-gfx/rasterpipe/internal/scanrender"
)

// Size is a frame's pixel dimensions.
type Size struct{ Width, Height int }

// AntiAliasMode selects which scan planner a render uses.
type AntiAliasMode int

const (
	// Baseline produces pixel-precise, non-anti-aliased coverage.
	Baseline AntiAliasMode = iota
	// Shard produces anti-aliased coverage via edge shards.
	Shard
)

// Options configures a FrameRenderer.
type Options struct {
	Size      Size
	AntiAlias AntiAliasMode
	Gamma     float64
	// RowsPerChunk controls how many scanlines each worker processes per
	// dispatched task; larger chunks reduce scheduling overhead at the cost
	// of coarser load balancing.
	RowsPerChunk int
	// Order controls the byte order each output pixel is written in; nil
	// defaults to order.RGBA. A caller targeting a platform surface that
	// wants BGRA (common on many native window backends) or another layout
	// sets this instead of post-processing the output buffer.
	Order order.RGBAOrder
}

const defaultRowsPerChunk = 8

// FrameRenderer renders an EdgePlan into an 8-bit gamma-encoded RGBA buffer.
type FrameRenderer struct {
	opts  Options
	cache *program.Cache
}

// New creates a FrameRenderer. cache provides the bound pixel programs the
// edge plan's shapes reference.
func New(opts Options, cache *program.Cache) *FrameRenderer {
	if opts.RowsPerChunk <= 0 {
		opts.RowsPerChunk = defaultRowsPerChunk
	}
	if opts.Gamma <= 0 {
		opts.Gamma = 1.0
	}
	if opts.Order == nil {
		opts.Order = order.RGBA{}
	}
	return &FrameRenderer{opts: opts, cache: cache}
}

// Render draws plan into dst, an 8-bit RGBA buffer with Width*Height*4
// bytes, dc resolving the program instances plan's shapes reference.
//
// Render panics if dst is undersized — a caller passing a mismatched buffer
// is always a bug, not a recoverable runtime condition — and returns a
// *rerr.BudgetError if the frame's row-scratch allocation would itself
// exceed a sane bound, which a caller can plausibly hit with adversarial
// input and should be able to recover from.
func (f *FrameRenderer) Render(plan *edgeplan.EdgePlan, dc *program.DataCache, dst []uint8) error {
	w, h := f.opts.Size.Width, f.opts.Size.Height
	if w <= 0 || h <= 0 {
		return rerr.NewBudgetError("frame.Render: size", w*h, 0)
	}
	need := w * h * 4
	if len(dst) < need {
		panic("frame: destination buffer too small for frame size")
	}

	const maxDimension = 1 << 16
	if w > maxDimension || h > maxDimension {
		return rerr.NewBudgetError("frame.Render: dimension", max(w, h), maxDimension)
	}

	plan.PrepareAll()

	rb := buffer.NewRenderingBufferU8WithData(dst, w, h, w*4)

	rowsPerChunk := f.opts.RowsPerChunk
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for y0 := 0; y0 < h; y0 += rowsPerChunk {
		y0 := y0
		y1 := y0 + rowsPerChunk
		if y1 > h {
			y1 = h
		}
		g.Go(func() error {
			f.renderRows(plan, dc, rb, y0, y1, w)
			return nil
		})
	}
	return g.Wait()
}

// renderRows renders [y0,y1) using scratch local to this call, so concurrent
// chunks never share mutable state — Go has no thread-local storage, so a
// fresh gamma LUT and row buffer per chunk is the substitute for scratch a
// worker would otherwise own for its lifetime. Each row's destination bytes
// come from rb, a row accessor shared read-only across chunks — every
// goroutine here touches a disjoint set of rows, so handing out row slices
// from the same RenderingBuffer is race-free.
func (f *FrameRenderer) renderRows(plan *edgeplan.EdgePlan, dc *program.DataCache, rb *buffer.RenderingBufferU8, y0, y1, width int) {
	gamma := color.NewGammaLUT(f.opts.Gamma)
	renderer := scanrender.New(f.cache)
	row := make([]color.PixelF32, width)

	ys := make([]float64, y1-y0)
	for i := range ys {
		ys[i] = float64(y0+i) + 0.5
	}

	var plans []*scanplan.ScanlinePlan
	xRange := scanplan.XRange{Start: 0, End: width}
	switch f.opts.AntiAlias {
	case Shard:
		plans = scanplan.PlanShard(plan, ys, xRange)
	default:
		plans = scanplan.PlanBaseline(plan, ys, xRange)
	}

	for i, sp := range plans {
		for j := range row {
			row[j] = color.PixelF32{}
		}
		for _, span := range sp.Spans() {
			renderer.RenderSpan(span, dc, row)
		}
		writeRow(rb.Row(y0+i), row, gamma, f.opts.Order)
	}
}

func writeRow(dst []uint8, row []color.PixelF32, gamma *color.GammaLUT, ord order.RGBAOrder) {
	idxR, idxG, idxB, idxA := ord.IdxR(), ord.IdxG(), ord.IdxB(), ord.IdxA()
	for i, p := range row {
		o := i * 4
		dst[o+idxR] = gamma.Encode8(float64(p.R))
		dst[o+idxG] = gamma.Encode8(float64(p.G))
		dst[o+idxB] = gamma.Encode8(float64(p.B))
		dst[o+idxA] = color.EncodeAlpha8(float64(p.A))
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
