// Package solver fills a crossword by treating it as a constraint
// satisfaction problem: node and arc consistency (AC-3) prune the
// per-slot candidate domains, then heuristic backtracking (MRV + degree
// for slot selection, least-constraining value for word order) searches
// for a complete assignment.
package solver

import (
	"errors"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/crossgen/grid"
)

// ErrUnsatisfiable means no complete assignment exists for the puzzle. It
// is a legitimate outcome, not a defect.
var ErrUnsatisfiable = errors.New("no satisfying assignment exists")

// An Assignment maps slots to the words filling them. It is built by
// copy-on-extend during the search, so backtracking never has to undo
// shared state.
type Assignment map[grid.Slot]string

func (a Assignment) extend(slot grid.Slot, word string) Assignment {
	ext := make(Assignment, len(a)+1)
	for k, v := range a {
		ext[k] = v
	}
	ext[slot] = word
	return ext
}

type wordSet map[string]struct{}

// An arc is a directed pair of crossing slots; revising (x, y) narrows
// x's domain against y's.
type arc struct {
	x, y grid.Slot
}

// A Solver owns the mutable domains for one fill of one puzzle. It is
// single-use and not safe for concurrent use; concurrent fills of the
// same puzzle take independently constructed Solvers.
type Solver struct {
	puzzle  *grid.Puzzle
	domains map[grid.Slot]wordSet
	nodes   int
}

func New(p *grid.Puzzle) *Solver {
	domains := make(map[grid.Slot]wordSet, len(p.Slots))
	for _, slot := range p.Slots {
		d := make(wordSet, len(p.Words))
		for _, w := range p.Words {
			d[w] = struct{}{}
		}
		domains[slot] = d
	}
	return &Solver{puzzle: p, domains: domains}
}

// Solve enforces node consistency, propagates arc consistency over the
// whole constraint graph, and then backtracks to a full assignment. The
// first assignment found wins; ErrUnsatisfiable means there is none.
// Given the same puzzle and dictionary the result is deterministic.
func (s *Solver) Solve() (Assignment, error) {
	s.enforceNodeConsistency()
	if !s.propagate(nil) {
		return nil, ErrUnsatisfiable
	}
	solution := s.backtrack(Assignment{})
	log.Debug().Int("nodes", s.nodes).Msg("backtracking-done")
	if solution == nil {
		return nil, ErrUnsatisfiable
	}
	return solution, nil
}

// enforceNodeConsistency drops every candidate whose length does not
// match its slot. The unary constraint never needs re-checking: nothing
// downstream ever adds a word back to a domain.
func (s *Solver) enforceNodeConsistency() {
	removed := 0
	for slot, domain := range s.domains {
		for w := range domain {
			if len(w) != slot.Length {
				delete(domain, w)
				removed++
			}
		}
	}
	log.Debug().Int("removed", removed).Msg("node-consistency")
}

// revise removes from x's domain every candidate with no support in y's
// domain at the overlap cell, and reports whether it removed anything.
// Slots that don't cross impose no binary constraint.
func (s *Solver) revise(x, y grid.Slot) bool {
	ov, ok := s.puzzle.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	for xw := range s.domains[x] {
		supported := false
		for yw := range s.domains[y] {
			if xw[ov.I] == yw[ov.J] {
				supported = true
				break
			}
		}
		if !supported {
			delete(s.domains[x], xw)
			revised = true
		}
	}
	return revised
}

// propagate runs AC-3 over the given arcs, or over every arc of the
// constraint graph when arcs is nil. The queue is FIFO and duplicates
// are allowed; each slot's domain can only shrink a bounded number of
// times, so the loop terminates. Returns false as soon as any domain
// empties, at which point the puzzle is unsatisfiable.
func (s *Solver) propagate(arcs []arc) bool {
	queue := arcs
	if queue == nil {
		for _, x := range s.puzzle.Slots {
			for _, y := range s.puzzle.Neighbors(x) {
				queue = append(queue, arc{x, y})
			}
		}
	}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !s.revise(a.x, a.y) {
			continue
		}
		if len(s.domains[a.x]) == 0 {
			log.Debug().Str("slot", a.x.String()).Msg("domain-emptied")
			return false
		}
		// Narrowing x may have invalidated support its other
		// neighbors were relying on.
		for _, z := range s.puzzle.Neighbors(a.x) {
			if z != a.y {
				queue = append(queue, arc{z, a.x})
			}
		}
	}
	return true
}

// consistent checks a partial assignment: word lengths match their
// slots, no word is used twice anywhere in the puzzle, and assigned
// neighbors agree at their crossing. Unassigned slots constrain nothing.
func (s *Solver) consistent(a Assignment) bool {
	seen := make(map[string]struct{}, len(a))
	for slot, word := range a {
		if len(word) != slot.Length {
			return false
		}
		if _, dup := seen[word]; dup {
			return false
		}
		seen[word] = struct{}{}
		for _, nb := range s.puzzle.Neighbors(slot) {
			nword, ok := a[nb]
			if !ok {
				continue
			}
			ov, _ := s.puzzle.Overlap(slot, nb)
			if word[ov.I] != nword[ov.J] {
				return false
			}
		}
	}
	return true
}

// selectUnassignedSlot picks the unassigned slot with the fewest
// remaining candidates (MRV), ties broken by most neighbors (degree),
// then by canonical slot order so the search is deterministic.
func (s *Solver) selectUnassignedSlot(a Assignment) grid.Slot {
	unassigned := lo.Filter(s.puzzle.Slots, func(slot grid.Slot, _ int) bool {
		_, ok := a[slot]
		return !ok
	})
	best := unassigned[0]
	for _, slot := range unassigned[1:] {
		ds, db := len(s.domains[slot]), len(s.domains[best])
		if ds < db ||
			(ds == db && len(s.puzzle.Neighbors(slot)) > len(s.puzzle.Neighbors(best))) {
			best = slot
		}
	}
	return best
}

// orderDomainValues orders slot's remaining candidates by how many
// options they would eliminate from unassigned neighbors' domains,
// fewest first (LCV). Ties are lexicographic for determinism.
func (s *Solver) orderDomainValues(slot grid.Slot, a Assignment) []string {
	words := make([]string, 0, len(s.domains[slot]))
	for w := range s.domains[slot] {
		words = append(words, w)
	}
	conflicts := make(map[string]int, len(words))
	for _, w := range words {
		for _, nb := range s.puzzle.Neighbors(slot) {
			if _, assigned := a[nb]; assigned {
				continue
			}
			ov, _ := s.puzzle.Overlap(slot, nb)
			for nw := range s.domains[nb] {
				if w[ov.I] != nw[ov.J] {
					conflicts[w]++
				}
			}
		}
	}
	sort.Slice(words, func(i, j int) bool {
		ci, cj := conflicts[words[i]], conflicts[words[j]]
		if ci != cj {
			return ci < cj
		}
		return words[i] < words[j]
	})
	return words
}

// backtrack searches from a partial assignment, returning the first
// complete consistent assignment it finds, or nil when this branch is
// exhausted. No inference runs inside the recursion; the explicit
// consistency check at each extension is the only pruning.
func (s *Solver) backtrack(a Assignment) Assignment {
	s.nodes++
	if len(a) == len(s.puzzle.Slots) {
		return a
	}
	slot := s.selectUnassignedSlot(a)
	for _, word := range s.orderDomainValues(slot, a) {
		ext := a.extend(slot, word)
		if !s.consistent(ext) {
			continue
		}
		if solution := s.backtrack(ext); solution != nil {
			return solution
		}
	}
	return nil
}
