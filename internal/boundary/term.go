package boundary

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the measured file is not attached to
// a terminal (pipes, CI, redirected output).
var ErrNotTerminal = errors.New("boundary: not a terminal")

// TermMeasurer measures the column width of a terminal.
type TermMeasurer struct {
	f *os.File
}

// NewTermMeasurer measures f, typically os.Stdout.
func NewTermMeasurer(f *os.File) TermMeasurer {
	return TermMeasurer{f: f}
}

// MeasureWidth implements Measurer.
func (m TermMeasurer) MeasureWidth() (float64, error) {
	if m.f == nil {
		return 0, ErrNotTerminal
	}
	fd := m.f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0, ErrNotTerminal
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil {
		return 0, err
	}
	return float64(w), nil
}
