// Package render turns a completed (or partial) fill into something a
// human can look at: display text for the terminal, or a PNG. Renderers
// never mutate the assignment.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/domino14/crossgen/grid"
	"github.com/domino14/crossgen/solver"
)

const (
	cellSize   = 32
	cellBorder = 2
)

// Letters expands an assignment into a per-cell letter grid. Cells with
// no assigned letter hold zero.
func Letters(p *grid.Puzzle, a solver.Assignment) [][]rune {
	letters := make([][]rune, p.Height)
	for i := range letters {
		letters[i] = make([]rune, p.Width)
	}
	for slot, word := range a {
		for k, cell := range slot.Cells() {
			letters[cell.Row][cell.Col] = rune(word[k])
		}
	}
	return letters
}

// DisplayText renders the grid as text: open cells show their letter, or
// a space when unfilled; blocked cells show a filler block.
func DisplayText(p *grid.Puzzle, a solver.Assignment) string {
	letters := Letters(p, a)
	var sb strings.Builder
	for i := 0; i < p.Height; i++ {
		for j := 0; j < p.Width; j++ {
			switch {
			case !p.Open(i, j):
				sb.WriteRune('█')
			case letters[i][j] != 0:
				sb.WriteRune(letters[i][j])
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// SavePNG rasterizes the filled grid to filename: black canvas, white
// cell interiors, one centered glyph per filled cell.
func SavePNG(p *grid.Puzzle, a solver.Assignment, filename string) error {
	letters := Letters(p, a)
	img := image.NewRGBA(image.Rect(0, 0, p.Width*cellSize, p.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i := 0; i < p.Height; i++ {
		for j := 0; j < p.Width; j++ {
			if !p.Open(i, j) {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder, i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder, (i+1)*cellSize-cellBorder)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)
			if letters[i][j] == 0 {
				continue
			}
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
			}
			glyph := string(letters[i][j])
			w := d.MeasureString(glyph)
			d.Dot = fixed.Point26_6{
				X: fixed.I(j*cellSize+cellSize/2) - w/2,
				Y: fixed.I(i*cellSize + (cellSize+face.Ascent-face.Descent)/2),
			}
			d.DrawString(glyph)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
