package config

import "github.com/namsral/flag"

// Config holds the command-line / environment settings for crossgen.
type Config struct {
	StructurePath string
	WordsPath     string
	OutputPath    string
	Debug         bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("crossgen", flag.ContinueOnError)
	fs.StringVar(&c.StructurePath, "structure", "", "path to the grid structure file ('_' marks open cells)")
	fs.StringVar(&c.WordsPath, "words", "", "path to the word list, one word per line")
	fs.StringVar(&c.OutputPath, "output", "", "optional path for a PNG of the filled grid")
	fs.BoolVar(&c.Debug, "debug", false, "log debug output")
	return fs.Parse(args)
}
