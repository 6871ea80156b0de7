package config

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds which counts are printed for every file
type Config struct {
	ShowBytes bool
	ShowWords bool
	ShowLines bool
}

// New builds the Config from the counting flags that were set on the command line.
// With no counting flag set, all three counts are shown.
func New(bytes, words, lines bool) Config {
	if !bytes && !words && !lines {
		return Config{ShowBytes: true, ShowWords: true, ShowLines: true}
	}
	return Config{
		ShowBytes: bytes,
		ShowWords: words,
		ShowLines: lines,
	}
}

// All reports whether every count is enabled
func (c Config) All() bool {
	return c.ShowBytes && c.ShowWords && c.ShowLines
}

// Isatty reports whether f is attached to a terminal
func Isatty(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
