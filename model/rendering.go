package model

import (
	"io"
	"os"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws boards as text, two columns per cell
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Render returns the board as text, one line per row
func (r *TerminalRenderer) Render(b *Board) string {
	var sb strings.Builder
	sb.Grow((b.Width()*len(gridPosBlock) + 1) * b.Height())
	for c := range b.Cells() {
		if c.Alive {
			sb.WriteString(gridPosBlock)
		} else {
			sb.WriteString(gridPosEmpty)
		}
		if c.Col == b.Width()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Display writes the board to the terminal
func (r *TerminalRenderer) Display(b *Board) error {
	_, err := io.WriteString(r.out(), r.Render(b))
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out(), ansiClearScreen)
	return err
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
