//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"

	"smartchess/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that shows both LED fixtures and maps the number
// keys to the buttons. It blocks until the window closes or run returns.
func RunWindow(cfg SimConfig, run RunFunc) error {
	h := newHostHAL(cfg.Buttons)
	scene := newSimScene(h, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &hostGame{
		h:     h,
		scene: scene,
		kbd:   newHostKeyboard(h),
		done:  startFirmware(ctx, h, run),
	}
	title := cfg.Title
	if title == "" {
		title = "smartchess"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(scene.fb.width*2, scene.fb.height*2)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return g.runErr
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	scene   *simScene
	kbd     *hostKeyboard
	done    <-chan error
	runErr  error
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		g.runErr = err
		return ebiten.Termination
	default:
	}
	g.kbd.poll()
	g.scene.render()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.scene.fb
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
		r, gg, b := rgb565(uint16(src[i]) | uint16(src[i+1])<<8).expand()
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.fb.width, g.scene.fb.height
}
