package grid

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a structure file and a word list (one word per line) and
// builds the Puzzle.
func Load(structureFile, wordsFile string) (*Puzzle, error) {
	structure, err := readLines(structureFile)
	if err != nil {
		return nil, fmt.Errorf("reading structure %s: %w", structureFile, err)
	}
	words, err := readLines(wordsFile)
	if err != nil {
		return nil, fmt.Errorf("reading words %s: %w", wordsFile, err)
	}
	p, err := New(structure, words)
	if err != nil {
		return nil, fmt.Errorf("building puzzle from %s: %w", structureFile, err)
	}
	return p, nil
}

func readLines(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}
