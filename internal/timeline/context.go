package timeline

import (
	"github.com/Dicklesworthstone/splice/internal/axis"
)

// Commands are the outbound playback requests. The timeline fires them
// at the external player and never waits for confirmation; the player
// round-trips the result back as updated playback props.
type Commands struct {
	Seek  func(seconds float64)
	Play  func()
	Pause func()
}

// Context is the read-only snapshot a Timeline publishes to its tracks
// on every render: the current axis, playback state and commands. It
// is replaced wholesale each render, never mutated, so every track on
// one render pass sees the same axis.
//
// Only Timeline.Snapshot produces a usable Context. Using a zero-value
// Context is a wiring bug (a track rendered outside a Timeline) and
// fails loudly.
type Context struct {
	axis           axis.Axis
	containerWidth float64
	current        float64
	playing        bool
	playheadCol    int
	boundaryCol    int
	cmds           Commands
	valid          bool
}

func (c Context) require() {
	if !c.valid {
		panic("timeline: Context used outside a Timeline render; tracks must be given the snapshot their Timeline publishes")
	}
}

// Axis returns the time axis for this render pass.
func (c Context) Axis() axis.Axis {
	c.require()
	return c.axis
}

// TimeToPixels converts seconds to a pixel offset within the
// time-bearing range.
func (c Context) TimeToPixels(t float64) float64 {
	c.require()
	return c.axis.TimeToPixels(t)
}

// PixelsToTime converts a pixel offset back to seconds.
func (c Context) PixelsToTime(px float64) float64 {
	c.require()
	return c.axis.PixelsToTime(px)
}

// AvailableWidthPx is the time-bearing width (container minus padding).
func (c Context) AvailableWidthPx() float64 {
	c.require()
	return c.axis.AvailableWidthPx
}

// ContainerWidthPx is the full measured container width.
func (c Context) ContainerWidthPx() float64 {
	c.require()
	return c.containerWidth
}

// Padding returns the left and right axis insets.
func (c Context) Padding() (left, right float64) {
	c.require()
	return c.axis.PaddingLeftPx, c.axis.PaddingRightPx
}

// TotalDuration is the program duration in seconds.
func (c Context) TotalDuration() float64 {
	c.require()
	return c.axis.DurationSeconds
}

// CurrentTime is the playback position in seconds.
func (c Context) CurrentTime() float64 {
	c.require()
	return c.current
}

// IsPlaying reports whether playback is running.
func (c Context) IsPlaying() bool {
	c.require()
	return c.playing
}

// PlayheadColumn is the container column the playhead occupies this
// render, already clamped to the end boundary.
func (c Context) PlayheadColumn() int {
	c.require()
	return c.playheadCol
}

// BoundaryColumn is the container column of the end-boundary marker.
func (c Context) BoundaryColumn() int {
	c.require()
	return c.boundaryCol
}

// FormatTime renders seconds as "M:SS".
func (c Context) FormatTime(seconds float64) string {
	c.require()
	return axis.FormatTime(seconds)
}

// Seek requests a jump to the given time. Fire and forget.
func (c Context) Seek(seconds float64) {
	c.require()
	if c.cmds.Seek != nil {
		c.cmds.Seek(seconds)
	}
}

// Play requests playback start.
func (c Context) Play() {
	c.require()
	if c.cmds.Play != nil {
		c.cmds.Play()
	}
}

// Pause requests playback stop.
func (c Context) Pause() {
	c.require()
	if c.cmds.Pause != nil {
		c.cmds.Pause()
	}
}
