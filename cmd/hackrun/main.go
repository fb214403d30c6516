// hackrun is a demo driver that loads a textual ROM image and runs it
// on the simulator for a fixed number of cycles, optionally blitting
// the memory-mapped screen to an SDL window (spec §1: "the demo
// driver that loads a program and prints state" is an external
// collaborator, out of the simulator's core scope).
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hack-sim/hack/computer"
	"github.com/hack-sim/hack/fabric"
	"github.com/hack-sim/hack/mem"
	"github.com/hack-sim/hack/rom"
)

var (
	romPath = flag.String("rom", "", "Path to a textual Hack ROM image (one 16-char 0/1 line per instruction)")
	cycles  = flag.Int("cycles", 1000, "Number of tick/tock cycles to run")
	debug   = flag.Bool("debug", false, "If true, emit a CPU trace line every cycle via glog at verbosity 1 (shown with -v=1)")
	display = flag.Bool("display", false, "If true, open an SDL window and blit the memory-mapped screen every cycle")
	scale   = flag.Int("scale", 2, "Scale factor for the SDL window when -display is set")
)

// fastImage pokes pixel bytes directly into an SDL surface, the way
// vcs_main.go's fastImage avoids the color.Color conversion overhead
// of Surface.Set on every pixel.
type fastImage struct {
	surface *sdl.Surface
	data    []byte
}

func (f *fastImage) poke(x, y int, c color.NRGBA) {
	i := int32(y)*f.surface.Pitch + int32(x)*int32(f.surface.Format.BytesPerPixel)
	f.data[i+0] = c.R
	f.data[i+1] = c.G
	f.data[i+2] = c.B
	f.data[i+3] = c.A
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if *romPath == "" {
		glog.Exit("-rom is required")
	}
	f, err := os.Open(*romPath)
	if err != nil {
		glog.Exitf("can't open rom %s: %v", *romPath, err)
	}
	prog, err := rom.Parse(f)
	f.Close()
	if err != nil {
		glog.Exitf("can't parse rom %s: %v", *romPath, err)
	}

	fab := fabric.New()
	reset := fabric.All0(fab, 1)
	c := computer.New(fab, reset, computer.Def{CPUDebug: *debug})
	c.Load(prog)
	c.Recompute()

	var fi *fastImage
	var window *sdl.Window
	if *display {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			glog.Exitf("can't init SDL: %v", err)
		}
		defer sdl.Quit()
		w, h := mem.ScreenWidth**scale, mem.ScreenHeight**scale
		window, err = sdl.CreateWindow("hackrun", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
			int32(w), int32(h), sdl.WINDOW_SHOWN)
		if err != nil {
			glog.Exitf("can't create window: %v", err)
		}
		defer window.Destroy()
		surface, err := window.GetSurface()
		if err != nil {
			glog.Exitf("can't get window surface: %v", err)
		}
		fi = &fastImage{surface: surface, data: surface.Pixels()}
	}

	start := time.Now()
	for i := 0; i < *cycles; i++ {
		if err := c.Tick(); err != nil {
			glog.Exitf("cycle %d tick error: %v", i, err)
		}
		if err := c.Tock(); err != nil {
			glog.Exitf("cycle %d tock error: %v", i, err)
		}
		if *debug {
			if d := c.Debug(); d != "" {
				glog.V(1).Info(d)
			}
		}
		if *display {
			blit(fi, c.Memory().Screen(), *scale)
			window.UpdateSurface()
		}
	}
	fmt.Printf("ran %d cycles in %s\n", *cycles, time.Since(start))
}

// blit renders the screen bank to the SDL surface at the configured
// scale, nearest-neighbor.
func blit(fi *fastImage, screen *mem.Screen, scale int) {
	if fi == nil {
		return
	}
	img := screen.Image()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			c := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					fi.poke(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
}
