// Package textmode implements a virtual text-mode rendering engine: a grid
// of character cells composited into a caller-owned RGBA framebuffer with
// retro CRT-style emissive glow (separable Gaussian blur over a "shiny"
// layer, optional blue-noise texture and tonemapping), plus a markup
// interpreter, an ANSI/CP437 escape interpreter, and a compressed-grid
// image loader.
//
// Console owns every internal buffer and (re)allocates them lazily on size
// change, mirroring core/buffer.go's Buffer.Resize: geometry changes are
// the only allocation point after construction.
package textmode

import (
	"github.com/lixenwraith/textmode/font"
	"github.com/lixenwraith/textmode/geom"
	"github.com/lixenwraith/textmode/palette"
)

// MaxStackDepth bounds the save/restore state stack (§3 Invariants).
const MaxStackDepth = 32

// MaxFilterWidth bounds the blur's 1-D kernel width (§3 Invariants).
const MaxFilterWidth = 63

// BlendMode selects how the final buffer reaches the caller's framebuffer.
type BlendMode int

const (
	BlendSourceOver BlendMode = iota
	BlendCopy
)

// Align selects edge alignment of the text grid within the output buffer.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Options configures rendering behavior; zero value is not valid, use
// DefaultOptions.
type Options struct {
	BlendMode    BlendMode
	HAlign       Align
	VAlign       Align
	AllowOutCaching bool
	BorderColor  int
	BorderShiny  bool
	BlinkTimeMs  int
	BlurAmount   float64
	BlurScale    float64
	BlurForeground bool
	BlurBackground bool
	NoiseTexture bool
	NoiseAmount  float64
	Tonemapping  bool
	TonemappingRatio float64
}

// DefaultOptions mirrors §6's defaults table.
func DefaultOptions() Options {
	return Options{
		BlendMode:        BlendSourceOver,
		HAlign:           AlignCenter,
		VAlign:           AlignCenter,
		AllowOutCaching:  false,
		BorderColor:      0,
		BorderShiny:      false,
		BlinkTimeMs:      1200,
		BlurAmount:       1.0,
		BlurScale:        1.0,
		BlurForeground:   true,
		BlurBackground:   true,
		NoiseTexture:     true,
		NoiseAmount:      1.0,
		Tonemapping:      false,
		TonemappingRatio: 0.3,
	}
}

// colorF32 is an unpacked float RGBA color used for the final blur plane
// (§3 Buffers by space: "blur (RGBA-f32)").
type colorF32 struct {
	R, G, B, A float64
}

// Console is the virtual text-mode display: a grid of CharData composited
// through the multi-stage render pipeline into a caller-supplied
// framebuffer. Not safe for concurrent use on the same instance (§5).
type Console struct {
	cols, rows int
	grid       []CharData
	cache      []CharData
	charDirty  []bool

	states     [MaxStackDepth]State
	stateCount int

	pal  *palette.Palette
	font *font.Font

	opts Options

	// output framebuffer, borrowed for the duration of each call (§5).
	outBuf    []byte
	outW      int
	outH      int
	outPitch  int

	// back space: unscaled per-cell pixels, size cols*charW * rows*charH.
	back      []palette.RGBA8
	backFlags []byte // bit0 set iff pixel came from the foreground color

	// post space: output-sized planes.
	post  []palette.RGBA8
	emit  []palette.RGBAU16
	emitH []palette.RGBAU16 // transposed: emitH[x*outH+y]
	blur  []colorF32
	final []palette.RGBA8

	scale            int
	marginX, marginY int
	filterWidth      int
	kernel           []float64

	dirtyAllChars   bool
	globalBlurDirty bool
	borderDirty     bool // border region needs a fresh letterbox fill

	changeRectCells geom.Rect // text-space, memoized between frames
	blurRectCells   geom.Rect
	validated       bool // true once this frame's validator result is memoized

	lastUpdateRect geom.Rect // output-space rect returned by getUpdateRect
	hasUpdate      bool

	blinkAccumMs      float64
	blinkOn           bool
	blinkPhaseChanged bool
}

// NewConsole constructs a Console with the given palette and font. Call
// Size and Outbuf before the first Render.
func NewConsole(pal *palette.Palette, fnt *font.Font) *Console {
	c := &Console{
		pal:  pal,
		font: fnt,
		opts: DefaultOptions(),
	}
	c.states[0] = State{Fg: 8, Bg: 0}
	c.stateCount = 1
	return c
}

// SetOptions replaces the render options and forces a full redraw, since
// several options (border, blur tuning) affect every pixel.
func (c *Console) SetOptions(o Options) {
	c.opts = o
	c.dirtyAllChars = true
	c.borderDirty = true
	c.globalBlurDirty = true
	c.validated = false
}

// Options returns the current render options.
func (c *Console) Options() Options { return c.opts }

// Palette returns the active palette, for callers (ansiterm, xp) that need
// to match arbitrary RGB triples against it.
func (c *Console) Palette() *palette.Palette { return c.pal }

// SetPalette replaces the active palette and forces a full redraw.
func (c *Console) SetPalette(pal *palette.Palette) {
	c.pal = pal
	c.dirtyAllChars = true
	c.borderDirty = true
	c.validated = false
}

// SetFont replaces the active font; glyph geometry may have changed so the
// back buffer and every cell are invalidated (§3 Lifecycles).
func (c *Console) SetFont(fnt *font.Font) {
	c.font = fnt
	c.back = nil
	c.backFlags = nil
	c.dirtyAllChars = true
	c.borderDirty = true
	c.globalBlurDirty = true
	c.validated = false
}

// Outbuf attaches the caller-owned output framebuffer: RGBA8 sRGB,
// row-major, pitchBytes between rows. Borrowed for the duration of each
// Render/HasPendingUpdate/GetUpdateRect call (§5).
func (c *Console) Outbuf(buf []byte, width, height, pitchBytes int) {
	if width == c.outW && height == c.outH && pitchBytes == c.outPitch && c.post != nil {
		c.outBuf = buf
		return
	}
	c.outBuf = buf
	c.outW = width
	c.outH = height
	c.outPitch = pitchBytes
	size := width * height
	c.post = make([]palette.RGBA8, size)
	c.emit = make([]palette.RGBAU16, size)
	c.emitH = make([]palette.RGBAU16, size)
	c.blur = make([]colorF32, size)
	c.final = make([]palette.RGBA8, size)
	c.dirtyAllChars = true
	c.borderDirty = true
	c.globalBlurDirty = true
	c.validated = false
}

// Size reallocates the text grid (preconditions: cols, rows >= 1); clears
// the screen and marks everything dirty for a full redraw (§4.4).
func (c *Console) Size(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == c.cols && rows == c.rows && c.grid != nil {
		return
	}
	c.cols, c.rows = cols, rows
	n := cols * rows
	c.grid = make([]CharData, n)
	c.cache = make([]CharData, n)
	c.charDirty = make([]bool, n)
	for i := range c.cache {
		c.cache[i] = CharData{Glyph: ' ', Color: 0x80, Style: 0}
	}
	c.cls()
	c.back = nil
	c.backFlags = nil
	c.dirtyAllChars = true
	c.borderDirty = true
	c.globalBlurDirty = true
	c.validated = false
}

// Columns and Rows report grid dimensions. (Rows is named deliberately;
// the source this spec distills conflated the two accessors, returning
// the column count from rows() — that bug is not reproduced here.)
func (c *Console) Columns() int { return c.cols }
func (c *Console) Rows() int    { return c.rows }
