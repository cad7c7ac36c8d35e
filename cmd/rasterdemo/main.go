// Command rasterdemo renders a handful of fixed scenes with the rasterpipe
// pipeline and writes each one out as a PPM file for visual inspection.
package main

import (
	"fmt"
	"os"

	"github.com/arclight-gfx/rasterpipe/internal/color"
	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
	"github.com/arclight-gfx/rasterpipe/internal/edges"
	"github.com/arclight-gfx/rasterpipe/internal/frame"
	"github.com/arclight-gfx/rasterpipe/internal/program"
)

// scene bundles an edge plan with the program machinery it was built
// against, since shape descriptors reference program data ids bound from a
// specific cache and data cache pair.
type scene struct {
	plan  *edgeplan.EdgePlan
	cache *program.Cache
	dc    *program.DataCache
}

func main() {
	scenes := map[string]func() scene{
		"triangle": triangleScene,
		"overlap":  overlapScene,
	}

	for name, build := range scenes {
		sc := build()

		fr := frame.New(frame.Options{
			Size:      frame.Size{Width: 200, Height: 200},
			AntiAlias: frame.Shard,
			Gamma:     2.2,
		}, sc.cache)

		dst := make([]uint8, 200*200*4)
		if err := fr.Render(sc.plan, sc.dc, dst); err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", name, err)
			os.Exit(1)
		}

		if err := writePPM(name+".ppm", 200, 200, dst); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s.ppm\n", name)
	}
}

func triangleScene() scene {
	cache := program.NewCache()
	stored := cache.Register(program.FlatColor{})
	dc := cache.CreateDataCache()
	red := cache.Bind(stored, program.FlatColorData{Pixel: color.PixelF32{R: 1, A: 1}}, dc)

	plan := edgeplan.New()
	shape := plan.AddShape(edgeplan.ShapeDescriptor{ZIndex: 0, IsOpaque: true, Programs: []program.DataID{red}})
	plan.AddEdge(edges.NewPolyline(shape, edges.EvenOdd, [][2]float64{{100, 20}, {20, 180}, {180, 180}}))

	return scene{plan: plan, cache: cache, dc: dc}
}

func overlapScene() scene {
	cache := program.NewCache()
	stored := cache.Register(program.FlatColor{})
	dc := cache.CreateDataCache()
	blue := cache.Bind(stored, program.FlatColorData{Pixel: color.PixelF32{B: 1, A: 1}}, dc)
	green := cache.Bind(stored, program.FlatColorData{Pixel: color.PixelF32{G: 1, A: 0.5}}, dc)

	plan := edgeplan.New()
	back := plan.AddShape(edgeplan.ShapeDescriptor{ZIndex: 0, IsOpaque: true, Programs: []program.DataID{blue}})
	plan.AddEdge(edges.NewRectangle(back, 20, 20, 140, 140))

	front := plan.AddShape(edgeplan.ShapeDescriptor{ZIndex: 1, IsOpaque: false, Programs: []program.DataID{green}})
	plan.AddEdge(edges.NewRectangle(front, 60, 60, 180, 180))

	return scene{plan: plan, cache: cache, dc: dc}
}

func writePPM(path string, width, height int, rgba []uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	buf := make([]byte, 0, width*height*3)
	for i := 0; i < len(rgba); i += 4 {
		buf = append(buf, rgba[i], rgba[i+1], rgba[i+2])
	}
	_, err = f.Write(buf)
	return err
}
