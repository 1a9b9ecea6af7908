// Package player owns playback state. The timeline requests changes
// through Seek/Play/Pause and reads state back; it never mutates
// playback position itself.
package player

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// State is a snapshot of the playback position.
type State struct {
	CurrentSeconds float64
	Playing        bool
}

// TickMsg advances the playback clock.
type TickMsg time.Time

// Tick returns the command scheduling the next clock tick.
func Tick(rate time.Duration) tea.Cmd {
	return tea.Tick(rate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Player is a wall-clock playback authority over a fixed program
// duration. It is a clock, not a codec.
type Player struct {
	duration float64
	current  float64
	playing  bool
}

// New creates a paused player at position zero.
func New(durationSeconds float64) *Player {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	return &Player{duration: durationSeconds}
}

// Duration returns the program duration in seconds.
func (p *Player) Duration() float64 { return p.duration }

// State returns the current playback snapshot.
func (p *Player) State() State {
	return State{CurrentSeconds: p.current, Playing: p.playing}
}

// SetDuration changes the program duration, keeping the position in
// range. Used when a storyboard reload shortens or extends the program.
func (p *Player) SetDuration(durationSeconds float64) {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	p.duration = durationSeconds
	if p.current > p.duration {
		p.current = p.duration
	}
}

// Seek moves the position, clamped to [0, duration].
func (p *Player) Seek(seconds float64) {
	switch {
	case seconds < 0:
		p.current = 0
	case seconds > p.duration:
		p.current = p.duration
	default:
		p.current = seconds
	}
}

// Play starts playback. Playing from the end restarts at zero.
func (p *Player) Play() {
	if p.duration > 0 && p.current >= p.duration {
		p.current = 0
	}
	p.playing = true
}

// Pause stops playback, keeping the position.
func (p *Player) Pause() { p.playing = false }

// Toggle flips between playing and paused.
func (p *Player) Toggle() {
	if p.playing {
		p.Pause()
	} else {
		p.Play()
	}
}

// Advance moves the clock forward by dt seconds while playing. The
// player pauses itself at the end of the program.
func (p *Player) Advance(dt float64) {
	if !p.playing || dt <= 0 {
		return
	}
	p.current += dt
	if p.current >= p.duration {
		p.current = p.duration
		p.playing = false
	}
}
