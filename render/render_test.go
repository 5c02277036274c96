package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/crossgen/grid"
	"github.com/domino14/crossgen/solver"
)

func plusPuzzle(t *testing.T) (*grid.Puzzle, grid.Slot, grid.Slot) {
	t.Helper()
	p, err := grid.New([]string{
		"#_#",
		"___",
		"#_#",
	}, []string{"cat", "wax"})
	require.NoError(t, err)
	return p, p.Slots[0], p.Slots[1] // down, across
}

func TestDisplayText(t *testing.T) {
	p, down, across := plusPuzzle(t)
	a := solver.Assignment{down: "CAT", across: "WAX"}
	assert.Equal(t, "█C█\nWAX\n█T█\n", DisplayText(p, a))
}

func TestDisplayTextPartial(t *testing.T) {
	p, down, _ := plusPuzzle(t)
	a := solver.Assignment{down: "CAT"}
	assert.Equal(t, "█C█\n A \n█T█\n", DisplayText(p, a))
}

func TestLetters(t *testing.T) {
	p, down, across := plusPuzzle(t)
	letters := Letters(p, solver.Assignment{down: "CAT", across: "WAX"})
	assert.Equal(t, 'A', letters[1][1]) // shared cell, both words agree
	assert.Equal(t, 'W', letters[1][0])
	assert.Equal(t, rune(0), letters[0][0]) // blocked cell
}

func TestSavePNG(t *testing.T) {
	p, down, across := plusPuzzle(t)
	a := solver.Assignment{down: "CAT", across: "WAX"}
	filename := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(p, a, filename))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 96, bounds.Dx())
	assert.Equal(t, 96, bounds.Dy())

	// Blocked corner cell stays black; the interior of an open cell is
	// white away from the glyph.
	r, g, b, _ := img.At(4, 4).RGBA()
	assert.Zero(t, r|g|b)
	r, g, b, _ = img.At(36, 4).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}
