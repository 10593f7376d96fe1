package display

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Region restricts drawing to a rectangle of a framebuffer, with its own
// origin, so independent panes can share one buffer.
type Region struct {
	fb   *Framebuffer
	x, y int16
	w, h int16
}

// NewRegion carves a w x h pane at (x, y) out of fb.
func NewRegion(fb *Framebuffer, x, y, w, h int16) *Region {
	return &Region{fb: fb, x: x, y: y, w: w, h: h}
}

func (r *Region) Size() (x, y int16) { return r.w, r.h }

func (r *Region) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	r.fb.SetPixel(r.x+x, r.y+y, c)
}

func (r *Region) Display() error { return r.fb.Display() }

func (r *Region) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, int(r.w))
	y0 := clampInt(int(y), 0, int(r.h))
	x1 := clampInt(int(x)+int(width), 0, int(r.w))
	y1 := clampInt(int(y)+int(height), 0, int(r.h))
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	return r.fb.FillRectangle(r.x+int16(x0), r.y+int16(y0), int16(x1-x0), int16(y1-y0), c)
}

func (r *Region) SetScroll(line int16) {
	_ = line
}

func (r *Region) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
