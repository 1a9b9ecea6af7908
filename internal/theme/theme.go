// Package theme holds the color palettes used by the timeline UI.
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is a named palette. Track lanes, the playhead and the boundary
// marker all pull their colors from here so palettes stay swappable.
type Theme struct {
	Name string

	Base     lipgloss.Color // background
	Surface0 lipgloss.Color // raised background
	Surface1 lipgloss.Color // borders, axis ticks
	Overlay  lipgloss.Color // secondary chrome
	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Primary  lipgloss.Color // focus, transport accents

	Playhead lipgloss.Color
	Boundary lipgloss.Color

	// Lane colors by track kind.
	Slides  lipgloss.Color
	Audio   lipgloss.Color
	Video   lipgloss.Color
	Generic lipgloss.Color
}

// Mocha is the default dark palette.
func Mocha() Theme {
	return Theme{
		Name:     "mocha",
		Base:     lipgloss.Color("#1e1e2e"),
		Surface0: lipgloss.Color("#313244"),
		Surface1: lipgloss.Color("#45475a"),
		Overlay:  lipgloss.Color("#6c7086"),
		Text:     lipgloss.Color("#cdd6f4"),
		Subtext:  lipgloss.Color("#a6adc8"),
		Primary:  lipgloss.Color("#cba6f7"),
		Playhead: lipgloss.Color("#f38ba8"),
		Boundary: lipgloss.Color("#fab387"),
		Slides:   lipgloss.Color("#89b4fa"),
		Audio:    lipgloss.Color("#a6e3a1"),
		Video:    lipgloss.Color("#f9e2af"),
		Generic:  lipgloss.Color("#94e2d5"),
	}
}

// Latte is the light palette.
func Latte() Theme {
	return Theme{
		Name:     "latte",
		Base:     lipgloss.Color("#eff1f5"),
		Surface0: lipgloss.Color("#ccd0da"),
		Surface1: lipgloss.Color("#bcc0cc"),
		Overlay:  lipgloss.Color("#9ca0b0"),
		Text:     lipgloss.Color("#4c4f69"),
		Subtext:  lipgloss.Color("#6c6f85"),
		Primary:  lipgloss.Color("#8839ef"),
		Playhead: lipgloss.Color("#d20f39"),
		Boundary: lipgloss.Color("#fe640b"),
		Slides:   lipgloss.Color("#1e66f5"),
		Audio:    lipgloss.Color("#40a02b"),
		Video:    lipgloss.Color("#df8e1d"),
		Generic:  lipgloss.Color("#179299"),
	}
}

var (
	mu      sync.RWMutex
	current = Mocha()
)

// Current returns the active theme.
func Current() Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set makes t the active theme.
func Set(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	current = t
}

// SetByName activates a palette by name. "auto" follows the terminal
// background; unknown names fall back to mocha.
func SetByName(name string) Theme {
	var t Theme
	switch name {
	case "latte":
		t = Latte()
	case "mocha":
		t = Mocha()
	case "auto":
		if termenv.HasDarkBackground() {
			t = Mocha()
		} else {
			t = Latte()
		}
	default:
		t = Mocha()
	}
	Set(t)
	return t
}
