//go:build !tinygo

package hal

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"macropad/internal/buildinfo"
)

const (
	cellSize   = 64
	cellGap    = 8
	gridSize   = 4*cellSize + 5*cellGap
	bannerSize = 24
)

// buttonKeys maps the 4x4 pad onto the left of a QWERTY board:
// rows 1234 / QWER / ASDF / ZXCV, column-major like the hardware
// expander (key 0 top-left, key 4 to its right... index = col*4+row).
var buttonKeys = [padKeyCount]ebiten.Key{
	ebiten.Key1, ebiten.KeyQ, ebiten.KeyA, ebiten.KeyZ,
	ebiten.Key2, ebiten.KeyW, ebiten.KeyS, ebiten.KeyX,
	ebiten.Key3, ebiten.KeyE, ebiten.KeyD, ebiten.KeyC,
	ebiten.Key4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

// RunWindow opens the pad simulator window and drives the app step at
// the ticker rate. It blocks until the window closes.
func RunWindow(newApp func(HAL) (func() error, error)) error {
	h := New().(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("macropad (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(gridSize, gridSize+bannerSize)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	step func() error
}

func (g *hostGame) Update() error {
	var state [padKeyCount]bool
	for i, k := range buttonKeys {
		state[i] = ebiten.IsKeyPressed(k)
	}
	g.h.buttons.set(state)

	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	pixels := g.h.pixels.snapshot()
	for i, c := range pixels {
		col := i / 4
		row := i % 4
		x := float32(cellGap + col*(cellSize+cellGap))
		y := float32(cellGap + row*(cellSize+cellGap))
		r, gg, b := c.Channels()
		vector.DrawFilledRect(screen, x, y, cellSize, cellSize,
			color.RGBA{R: r, G: gg, B: b, A: 0xFF}, false)
	}
	ebitenutil.DebugPrintAt(screen, "layout: "+g.h.screen.banner(), cellGap, gridSize)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gridSize, gridSize + bannerSize
}
