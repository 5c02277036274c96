// Package grid models the crossword puzzle itself: the grid geometry, the
// slots to be filled, and the candidate dictionary. A Puzzle is immutable
// once constructed and safe to share between solver instances.
package grid

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// A Slot is a maximal run of open cells in one direction; it is the
// variable of the fill problem. Slots are plain comparable values so they
// can key maps; two slots are equal iff all four fields match.
type Slot struct {
	Row    int
	Col    int
	Length int
	Dir    Direction
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d) %v x%d", s.Row, s.Col, s.Dir, s.Length)
}

// Less orders slots by (row, col, length, direction). The solver iterates
// slots in this order wherever iteration order could otherwise leak into
// the chosen solution.
func (s Slot) Less(o Slot) bool {
	if s.Row != o.Row {
		return s.Row < o.Row
	}
	if s.Col != o.Col {
		return s.Col < o.Col
	}
	if s.Length != o.Length {
		return s.Length < o.Length
	}
	return s.Dir < o.Dir
}

// A Cell is a single grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Cells returns the coordinates this slot covers, in word order.
func (s Slot) Cells() []Cell {
	cells := make([]Cell, s.Length)
	for k := 0; k < s.Length; k++ {
		if s.Dir == Down {
			cells[k] = Cell{s.Row + k, s.Col}
		} else {
			cells[k] = Cell{s.Row, s.Col + k}
		}
	}
	return cells
}

// An Overlap is the single cell two crossing slots share: letter I of the
// first slot must equal letter J of the second. Overlaps come in symmetric
// pairs; Overlap(x, y) and Overlap(y, x) describe the same cell from each
// slot's own index.
type Overlap struct {
	I int
	J int
}

type slotPair struct {
	x, y Slot
}

// A Puzzle is the full model for one crossword: grid geometry, slots, the
// overlap/neighbor relations between them, and the candidate dictionary.
type Puzzle struct {
	Width  int
	Height int
	// Slots is sorted in canonical order (see Slot.Less).
	Slots []Slot
	// Words is the deduplicated, uppercased, sorted dictionary.
	Words []string

	open      [][]bool
	overlaps  map[slotPair]Overlap
	neighbors map[Slot][]Slot
}

// New builds a Puzzle from a structure (cells marked '_' are open, anything
// else is blocked) and a word list. Slots are maximal open runs of at least
// two cells. Rows may be ragged; cells past the end of a short row are
// blocked.
func New(structure []string, words []string) (*Puzzle, error) {
	if len(structure) == 0 {
		return nil, errors.New("empty structure")
	}
	height := len(structure)
	width := 0
	rows := make([][]rune, height)
	for i, line := range structure {
		rows[i] = []rune(line)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	if width == 0 {
		return nil, errors.New("structure has no columns")
	}

	open := make([][]bool, height)
	for i := range open {
		open[i] = make([]bool, width)
		for j, ch := range rows[i] {
			open[i][j] = ch == '_'
		}
	}

	p := &Puzzle{
		Width:     width,
		Height:    height,
		Words:     normalizeWords(words),
		open:      open,
		overlaps:  map[slotPair]Overlap{},
		neighbors: map[Slot][]Slot{},
	}
	p.findSlots()
	if len(p.Slots) == 0 {
		return nil, errors.New("structure has no slots")
	}
	p.computeOverlaps()
	return p, nil
}

// Open reports whether the cell at (row, col) is fillable. Out-of-range
// coordinates are blocked.
func (p *Puzzle) Open(row, col int) bool {
	if row < 0 || row >= p.Height || col < 0 || col >= p.Width {
		return false
	}
	return p.open[row][col]
}

// Overlap returns the shared-cell index pair for x and y, and whether the
// two slots cross at all.
func (p *Puzzle) Overlap(x, y Slot) (Overlap, bool) {
	ov, ok := p.overlaps[slotPair{x, y}]
	return ov, ok
}

// Neighbors returns every slot crossing x, in canonical order. The caller
// must not modify the returned slice.
func (p *Puzzle) Neighbors(x Slot) []Slot {
	return p.neighbors[x]
}

func (p *Puzzle) findSlots() {
	for i := 0; i < p.Height; i++ {
		for j := 0; j < p.Width; j++ {
			if !p.open[i][j] {
				continue
			}
			if j == 0 || !p.open[i][j-1] {
				length := 1
				for k := j + 1; k < p.Width && p.open[i][k]; k++ {
					length++
				}
				if length > 1 {
					p.Slots = append(p.Slots, Slot{Row: i, Col: j, Length: length, Dir: Across})
				}
			}
			if i == 0 || !p.open[i-1][j] {
				length := 1
				for k := i + 1; k < p.Height && p.open[k][j]; k++ {
					length++
				}
				if length > 1 {
					p.Slots = append(p.Slots, Slot{Row: i, Col: j, Length: length, Dir: Down})
				}
			}
		}
	}
	sort.Slice(p.Slots, func(a, b int) bool { return p.Slots[a].Less(p.Slots[b]) })
}

func (p *Puzzle) computeOverlaps() {
	// Two slots in the same direction never share a cell (each is a
	// maximal run), and crossing slots share at most one.
	cellIndex := make([]map[Cell]int, len(p.Slots))
	for si, slot := range p.Slots {
		cellIndex[si] = make(map[Cell]int, slot.Length)
		for k, cell := range slot.Cells() {
			cellIndex[si][cell] = k
		}
	}
	for a, x := range p.Slots {
		for b, y := range p.Slots {
			if a == b {
				continue
			}
			for i, cell := range x.Cells() {
				j, ok := cellIndex[b][cell]
				if !ok {
					continue
				}
				p.overlaps[slotPair{x, y}] = Overlap{I: i, J: j}
				p.neighbors[x] = append(p.neighbors[x], y)
				break
			}
		}
	}
}

func normalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	dict := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		dict = append(dict, w)
	}
	sort.Strings(dict)
	return dict
}
