package grid

import (
	"testing"

	"github.com/matryer/is"
)

func TestNewSingleRow(t *testing.T) {
	is := is.New(t)
	p, err := New([]string{"___"}, []string{"cat", "dog"})
	is.NoErr(err)
	is.Equal(len(p.Slots), 1)
	is.Equal(p.Slots[0], Slot{Row: 0, Col: 0, Length: 3, Dir: Across})
	is.Equal(len(p.Neighbors(p.Slots[0])), 0)
}

func TestNewCrossing(t *testing.T) {
	is := is.New(t)
	p, err := New([]string{
		"_##",
		"___",
		"_##",
	}, nil)
	is.NoErr(err)

	down := Slot{Row: 0, Col: 0, Length: 3, Dir: Down}
	across := Slot{Row: 1, Col: 0, Length: 3, Dir: Across}
	is.Equal(p.Slots, []Slot{down, across})

	// The shared cell is (1,0): letter 0 of the across word, letter 1 of
	// the down word.
	ov, ok := p.Overlap(across, down)
	is.True(ok)
	is.Equal(ov, Overlap{I: 0, J: 1})
	ov, ok = p.Overlap(down, across)
	is.True(ok)
	is.Equal(ov, Overlap{I: 1, J: 0})

	is.Equal(p.Neighbors(across), []Slot{down})
	is.Equal(p.Neighbors(down), []Slot{across})
}

func TestNewDisjointSlots(t *testing.T) {
	is := is.New(t)
	p, err := New([]string{
		"___",
		"###",
		"___",
	}, nil)
	is.NoErr(err)
	is.Equal(len(p.Slots), 2)
	for _, slot := range p.Slots {
		is.Equal(len(p.Neighbors(slot)), 0)
	}
	_, ok := p.Overlap(p.Slots[0], p.Slots[1])
	is.True(!ok)
}

func TestNewIgnoresSingleCellRuns(t *testing.T) {
	is := is.New(t)
	p, err := New([]string{"__#_"}, nil)
	is.NoErr(err)
	is.Equal(p.Slots, []Slot{{Row: 0, Col: 0, Length: 2, Dir: Across}})

	_, err = New([]string{"_#_"}, nil)
	is.True(err != nil) // no run of length > 1 anywhere
}

func TestNewEmptyStructure(t *testing.T) {
	is := is.New(t)
	_, err := New(nil, nil)
	is.True(err != nil)
}

func TestNewRaggedRows(t *testing.T) {
	is := is.New(t)
	p, err := New([]string{
		"____",
		"__",
	}, nil)
	is.NoErr(err)
	// Cells past the end of the short row are blocked.
	is.Equal(p.Width, 4)
	is.True(!p.Open(1, 2))
	is.Equal(len(p.Slots), 4) // two across, two down
}

func TestSlotCells(t *testing.T) {
	is := is.New(t)
	s := Slot{Row: 2, Col: 1, Length: 3, Dir: Down}
	is.Equal(s.Cells(), []Cell{{2, 1}, {3, 1}, {4, 1}})
	s = Slot{Row: 0, Col: 2, Length: 2, Dir: Across}
	is.Equal(s.Cells(), []Cell{{0, 2}, {0, 3}})
}

func TestWordsNormalized(t *testing.T) {
	is := is.New(t)
	p, err := New([]string{"___"}, []string{"dog", "Cat", "DOG", " wax ", ""})
	is.NoErr(err)
	is.Equal(p.Words, []string{"CAT", "DOG", "WAX"})
}
