package mem

import (
	"image"
	"image/color"

	"github.com/hack-sim/hack/fabric"
)

const (
	// ScreenWords is the size of the Hack screen memory bank: 8K words
	// mapped at 0x4000-0x5FFF, 512x256 pixels at 1 bit/pixel, 32 words
	// per scanline (16 pixels/word).
	ScreenWords   = 8192
	ScreenWidth   = 512
	ScreenHeight  = 256
	wordsPerLine  = ScreenWidth / 16
)

// Screen is the memory-mapped 8K word bank backing the Hack display.
// It has the identical two-phase contract as FastRAM16K — it's simply
// a distinct bank at a different place in the memory map (spec §4.5).
type Screen struct {
	words [ScreenWords]uint16
	in    fabric.Bus
	load  fabric.Bus
	addr  fabric.Bus
	out   fabric.Bus

	pendingAddr uint16
	pendingVal  uint16
	pendingSet  bool
}

// NewScreen wires a Screen over a 16-bit in bus, 1-bit load, and
// 13-bit addr bus.
func NewScreen(f *fabric.Fabric, in, load, addr fabric.Bus) *Screen {
	return &Screen{in: in, load: load, addr: addr, out: fabric.All0(f, 16)}
}

func (s *Screen) Out() fabric.Bus { return s.out }

func (s *Screen) Recompute() {
	s.out.SetUint16(s.words[s.addr.ToUint16()&(ScreenWords-1)])
}

func (s *Screen) ClockUp() {
	if s.load.Get(0) {
		s.pendingAddr = s.addr.ToUint16() & (ScreenWords - 1)
		s.pendingVal = s.in.ToUint16()
		s.pendingSet = true
	}
}

func (s *Screen) ClockDown() {
	if s.pendingSet {
		s.words[s.pendingAddr] = s.pendingVal
		s.pendingSet = false
	}
}

// Image renders the screen bank to a 512x256 black/white bitmap, the
// way the teacher's TIA renders its frame buffer to *image.NRGBA in
// its FrameDone callback. This is a display surface, not a simulator
// operation: spec §1 places pixel-level rendering out of core scope,
// but gives the otherwise-inert word array something concrete to feed.
func (s *Screen) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	white := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black := color.NRGBA{A: 0xFF}
	for y := 0; y < ScreenHeight; y++ {
		for wx := 0; wx < wordsPerLine; wx++ {
			w := s.words[y*wordsPerLine+wx]
			for bit := 0; bit < 16; bit++ {
				x := wx*16 + bit
				c := white
				if w&(1<<uint(bit)) != 0 {
					c = black
				}
				img.Set(x, y, c)
			}
		}
	}
	return img
}
