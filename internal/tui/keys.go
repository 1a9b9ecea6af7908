package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the player keybindings.
type KeyMap struct {
	Toggle   key.Binding
	SeekBack key.Binding
	SeekFwd  key.Binding
	Restart  key.Binding
	End      key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

// DefaultKeys is the default transport keymap.
var DefaultKeys = KeyMap{
	Toggle:   key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
	SeekBack: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back 5s")),
	SeekFwd:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "forward 5s")),
	Restart:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "start")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "end")),
	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}
