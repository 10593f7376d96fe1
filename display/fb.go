// Package display renders runtime state into an RGB565 framebuffer and
// presents it in a desktop window. The framebuffer satisfies the tinygo
// Displayer contracts so text and rectangles can be drawn with tinyfont
// and tinyterm.
package display

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

// Framebuffer is a 16bpp (rrrrrggggggbbbbb) pixel buffer.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer allocates a width x height RGB565 buffer.
func NewFramebuffer(width, height int) *Framebuffer {
	stride := width * 2
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *Framebuffer) Width() int       { return f.width }
func (f *Framebuffer) Height() int      { return f.height }
func (f *Framebuffer) StrideBytes() int { return f.stride }

// ClearRGB fills the whole buffer with one color.
func (f *Framebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *Framebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.width), int16(f.height)
}

// SetPixel implements drivers.Displayer.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return
	}
	pixel := rgb565(c.R, c.G, c.B)
	off := iy*f.stride + ix*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

// Display implements drivers.Displayer. The window loop presents the
// buffer on its own cadence, so there is nothing to flush.
func (f *Framebuffer) Display() error { return nil }

// FillRectangle draws a solid rectangle, clipped to the buffer.
func (f *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, f.width)
	y0 := clampInt(int(y), 0, f.height)
	x1 := clampInt(int(x)+int(width), 0, f.width)
	y1 := clampInt(int(y)+int(height), 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for py := y0; py < y1; py++ {
		row := py * f.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
	return nil
}

// SetScroll is a hardware-scroll hook; this buffer has none.
func (f *Framebuffer) SetScroll(line int16) {
	_ = line
}

func (f *Framebuffer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
