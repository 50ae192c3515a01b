package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	DefaultAliveGlyph = "@"
	DefaultDeadGlyph  = "."
	DefaultBlockSize  = 2

	cellPad     = " "
	cellSpacing = "  "

	clearCmd = "clear"
)

// TextRenderer draws generations as blocks of glyphs
type TextRenderer struct {
	Alive     string
	Dead      string
	BlockSize int
	Out       io.Writer
}

// NewTextRenderer returns a renderer with the default glyphs writing to out
func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{
		Alive:     DefaultAliveGlyph,
		Dead:      DefaultDeadGlyph,
		BlockSize: DefaultBlockSize,
		Out:       out,
	}
}

/*
Render returns the text for g. Each cell is BlockSize columns of " "+glyph and
BlockSize lines tall, cells are separated by two spaces, and a blank line
follows every grid row.
*/
func (r *TextRenderer) Render(g *Generation) string {
	block := max(r.BlockSize, 1)

	var sb strings.Builder
	for row := range g.Rows() {
		for range block {
			for col := range g.Cols() {
				glyph := r.Dead
				if g.Alive(row, col) {
					glyph = r.Alive
				}
				for range block {
					sb.WriteString(cellPad)
					sb.WriteString(glyph)
				}
				sb.WriteString(cellSpacing)
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display writes the rendered grid to the renderer's output
func (r *TextRenderer) Display(g *Generation) {
	fmt.Fprint(r.out(), r.Render(g))
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}

func (r *TextRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
