//go:build ebiten

package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/lifestyle/controller"
	"github.com/sheikhrachel/lifestyle/model"
)

var hudColor = color.RGBA{0xff, 0x8c, 0x00, 0xff}

// Game adapts a Controller to the ebiten.Game interface
type Game struct {
	ctrl     *controller.Controller
	settings Settings
	reseed   func() *model.Board

	paused   bool
	tickOnce bool
}

// New constructs a Game. reseed builds the board installed when R is pressed.
func New(ctrl *controller.Controller, settings Settings, reseed func() *model.Board) *Game {
	return &Game{ctrl: ctrl, settings: settings, reseed: reseed}
}

// Update handles input and feeds one frame of elapsed time to the controller
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.reseed != nil {
		g.ctrl.Reset(g.reseed())
	}

	switch {
	case g.tickOnce:
		g.ctrl.Step()
		g.tickOnce = false
	case !g.paused:
		g.ctrl.Update(1 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw paints the background and one square per live cell
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.settings.Background)

	board := g.ctrl.Board()
	for _, r := range g.settings.LiveRects(board) {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), g.settings.Live, false)
	}

	status := fmt.Sprintf("gen %d  pop %d", g.ctrl.Generation(), board.Population())
	if g.paused {
		status += "  [paused]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 12, hudColor)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.ctrl.Board()
	return g.settings.ScreenSize(b.Width(), b.Height())
}
