package view

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/sheikhrachel/lifestyle/model"
	"github.com/sheikhrachel/lifestyle/utils"
)

// Settings stores how a board is laid out on screen
type Settings struct {
	// Position of the board's top-left corner
	Position [2]float64
	// CellSize is the side of the square drawn for each cell
	CellSize   float64
	Background color.RGBA
	Live       color.RGBA
}

// Rect is an axis-aligned rectangle in screen coordinates
type Rect struct {
	X, Y, W, H float64
}

// SettingsFromConfig resolves the named colors of cfg
func SettingsFromConfig(cfg utils.ViewConfig) (Settings, error) {
	bg, err := lookupColor(cfg.BackgroundColor)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "[SettingsFromConfig] background")
	}
	live, err := lookupColor(cfg.LiveColor)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "[SettingsFromConfig] live")
	}
	return Settings{
		Position:   [2]float64{cfg.PositionX, cfg.PositionY},
		CellSize:   cfg.CellSize,
		Background: bg,
		Live:       live,
	}, nil
}

func lookupColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, errors.Errorf("unknown color %q", name)
	}
	return c, nil
}

// CellRect returns the square covering the cell at (col, row)
func (s Settings) CellRect(col, row int) Rect {
	return Rect{
		X: s.Position[0] + float64(col)*s.CellSize,
		Y: s.Position[1] + float64(row)*s.CellSize,
		W: s.CellSize,
		H: s.CellSize,
	}
}

// ScreenSize returns the window size needed to show a width x height board
// with the same margin on every side
func (s Settings) ScreenSize(width, height int) (int, int) {
	w := 2*s.Position[0] + float64(width)*s.CellSize
	h := 2*s.Position[1] + float64(height)*s.CellSize
	return int(w + 0.5), int(h + 0.5)
}

// LiveRects returns the rectangles of every live cell on b
func (s Settings) LiveRects(b *model.Board) []Rect {
	var rects []Rect
	for c := range b.Cells() {
		if c.Alive {
			rects = append(rects, s.CellRect(c.Col, c.Row))
		}
	}
	return rects
}
