package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that presents the framebuffer, calling
// update once per frame before drawing. It blocks until the window closes.
func RunWindow(title string, fb *Framebuffer, update func() error) error {
	g := &game{fb: fb, update: update}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(fb.width*2, fb.height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	fb      *Framebuffer
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	update  func() error
}

func (g *game) Update() error {
	if g.update != nil {
		return g.update()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.width, g.fb.height
}
