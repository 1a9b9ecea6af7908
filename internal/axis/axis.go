// Package axis maps playback time to horizontal pixel offsets.
//
// An Axis is derived from the program duration, the measured width of
// the hosting container, and the horizontal padding reserved on each
// side. It is a plain value: recompute it whenever any input changes
// rather than mutating it in place.
package axis

import (
	"fmt"
	"math"
)

// FallbackPixelsPerSecond is the scale used before the duration (or a
// usable width) is known. A transient zero during initial mount is
// expected, so the axis degrades to this fixed scale instead of
// producing NaN or Inf.
const FallbackPixelsPerSecond = 50.0

// Axis holds the current time-to-pixel scaling.
type Axis struct {
	DurationSeconds  float64
	AvailableWidthPx float64
	PaddingLeftPx    float64
	PaddingRightPx   float64
}

// New builds an Axis from a container width. The time-bearing width is
// the container width minus both paddings, floored at zero.
func New(durationSeconds, containerWidthPx, paddingLeftPx, paddingRightPx float64) Axis {
	avail := containerWidthPx - paddingLeftPx - paddingRightPx
	if avail < 0 {
		avail = 0
	}
	return Axis{
		DurationSeconds:  durationSeconds,
		AvailableWidthPx: avail,
		PaddingLeftPx:    paddingLeftPx,
		PaddingRightPx:   paddingRightPx,
	}
}

// PixelsPerSecond returns the current scale. Degenerate inputs (zero
// or negative duration, no measured width) fall back to
// FallbackPixelsPerSecond so callers never divide by zero.
func (a Axis) PixelsPerSecond() float64 {
	if a.DurationSeconds <= 0 || a.AvailableWidthPx <= 0 {
		return FallbackPixelsPerSecond
	}
	pps := a.AvailableWidthPx / a.DurationSeconds
	if math.IsNaN(pps) || math.IsInf(pps, 0) || pps <= 0 {
		return FallbackPixelsPerSecond
	}
	return pps
}

// TimeToPixels converts a time offset to a pixel offset within the
// time-bearing range. Output is floored at zero but deliberately not
// capped at AvailableWidthPx: content may extend past the last visible
// pixel during a drag or scroll.
func (a Axis) TimeToPixels(t float64) float64 {
	px := t * a.PixelsPerSecond()
	if px < 0 || math.IsNaN(px) {
		return 0
	}
	return px
}

// PixelsToTime is the inverse of TimeToPixels, unclamped.
func (a Axis) PixelsToTime(px float64) float64 {
	return px / a.PixelsPerSecond()
}

// PlayheadOffsetPx returns the absolute pixel offset of the playhead,
// including left padding. The playhead never passes the end boundary
// even when current momentarily overshoots the duration.
func (a Axis) PlayheadOffsetPx(currentSeconds float64) float64 {
	return a.PaddingLeftPx + math.Min(a.TimeToPixels(currentSeconds), a.TimeToPixels(a.DurationSeconds))
}

// EndBoundaryOffsetPx returns the absolute pixel offset of the end
// boundary marker, including left padding. Depends only on the axis,
// never on playback state.
func (a Axis) EndBoundaryOffsetPx() float64 {
	return a.PaddingLeftPx + a.TimeToPixels(a.DurationSeconds)
}

// FormatTime renders seconds as "M:SS". Minutes are unbounded, seconds
// are zero-padded. Negative input clamps to "0:00".
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
