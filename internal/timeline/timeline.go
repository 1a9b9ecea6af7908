// Package timeline renders a multi-track media timeline against a
// shared time axis.
//
// The Model is the layout authority: it owns the measured container
// width, recomputes the axis whenever width or duration changes, and
// publishes an immutable Context snapshot that every track renders
// from. Playback state is owned by an external player; the timeline
// only reads it and requests changes through Commands.
package timeline

import (
	"math"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/splice/internal/axis"
	"github.com/Dicklesworthstone/splice/internal/boundary"
	"github.com/Dicklesworthstone/splice/internal/theme"
)

// Padding is the horizontal inset reserved on each side of the axis,
// excluded from the time-bearing range.
type Padding struct {
	Left  float64
	Right float64
}

// DefaultPadding mirrors the canvas default of 40px per side. Terminal
// embedders usually override this with something far narrower.
var DefaultPadding = Padding{Left: 40, Right: 40}

// WidthMsg carries a coalesced container width report back into the
// update loop.
type WidthMsg float64

// Model is the timeline orchestrator.
type Model struct {
	width    float64 // containerWidthPx; 0 until the first report
	duration float64
	current  float64
	playing  bool
	padding  Padding
	tracks   []*Track
	cmds     Commands
	th       theme.Theme

	// The embedding app attaches the subscription from its own
	// goroutine while the update loop keeps running, so access to sub
	// is serialized here.
	subMu  sync.Mutex
	sub    *boundary.Subscription
	closed bool
}

// Option configures a Model.
type Option func(*Model)

// WithPadding sets the axis insets.
func WithPadding(p Padding) Option {
	return func(m *Model) {
		if p.Left >= 0 && p.Right >= 0 {
			m.padding = p
		}
	}
}

// WithCommands sets the outbound playback commands.
func WithCommands(c Commands) Option {
	return func(m *Model) { m.cmds = c }
}

// WithTheme overrides the active theme.
func WithTheme(t theme.Theme) Option {
	return func(m *Model) { m.th = t }
}

// WithTracks sets the track list.
func WithTracks(tracks ...*Track) Option {
	return func(m *Model) { m.tracks = tracks }
}

// WithDuration sets the initial program duration.
func WithDuration(seconds float64) Option {
	return func(m *Model) { m.duration = seconds }
}

// New creates a timeline with no measured width yet.
func New(opts ...Option) *Model {
	m := &Model{
		padding: DefaultPadding,
		th:      theme.Current(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Watch attaches a boundary subscription owned by this timeline. The
// initial measurement is delivered synchronously through send; later
// reports arrive coalesced as WidthMsg values. Watch is safe to call
// while the update loop runs, and a no-op after Close.
func (m *Model) Watch(meas boundary.Measurer, send func(tea.Msg), opts ...boundary.Option) {
	m.subMu.Lock()
	if m.closed {
		m.subMu.Unlock()
		return
	}
	m.subMu.Unlock()

	// The initial report fires inside boundary.Watch, so the lock must
	// not be held across it: send may block on the update loop, and the
	// update loop takes the lock in Report.
	sub := boundary.Watch(meas, func(w float64) {
		send(WidthMsg(w))
	}, opts...)

	m.subMu.Lock()
	old := m.sub
	closed := m.closed
	if closed {
		m.sub = nil
	} else {
		m.sub = sub
	}
	m.subMu.Unlock()

	if old != nil {
		old.Stop()
	}
	if closed {
		sub.Stop()
	}
}

// Report feeds a raw width measurement. With an attached subscription
// it goes through frame coalescing; without one it applies directly.
func (m *Model) Report(width float64) {
	m.subMu.Lock()
	sub := m.sub
	m.subMu.Unlock()

	if sub != nil {
		sub.Report(width)
		return
	}
	m.width = width
}

// Close releases the boundary subscription. Pending width reports are
// dropped, never delivered to a closed timeline, and later Watch calls
// are rejected so teardown cannot race an attach into a leaked
// subscription.
func (m *Model) Close() {
	m.subMu.Lock()
	sub := m.sub
	m.sub = nil
	m.closed = true
	m.subMu.Unlock()

	if sub != nil {
		sub.Stop()
	}
}

// SetDuration updates the program duration.
func (m *Model) SetDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	m.duration = seconds
}

// SetPlayback updates the playback props owned by the external player.
func (m *Model) SetPlayback(currentSeconds float64, playing bool) {
	m.current = currentSeconds
	m.playing = playing
}

// SetTracks replaces the track list.
func (m *Model) SetTracks(tracks ...*Track) { m.tracks = tracks }

// Tracks returns the current track list.
func (m *Model) Tracks() []*Track { return m.tracks }

// ContainerWidthPx returns the latest measured width.
func (m *Model) ContainerWidthPx() float64 { return m.width }

// Axis derives the current time axis. Cheap arithmetic, recomputed on
// demand rather than cached.
func (m *Model) Axis() axis.Axis {
	return axis.New(m.duration, m.width, m.padding.Left, m.padding.Right)
}

// Snapshot publishes a fresh context for this render pass.
func (m *Model) Snapshot() Context {
	ax := m.Axis()
	return Context{
		axis:           ax,
		containerWidth: m.width,
		current:        m.current,
		playing:        m.playing,
		playheadCol:    int(math.Round(ax.PlayheadOffsetPx(m.current))),
		boundaryCol:    int(math.Round(ax.EndBoundaryOffsetPx())),
		cmds:           m.cmds,
		valid:          true,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles width reports and pointer input.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WidthMsg:
		m.width = float64(msg)

	case tea.WindowSizeMsg:
		m.Report(float64(msg.Width))

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.SeekAt(float64(msg.X), msg.Y)
		case tea.MouseButtonWheelUp:
			if tr := m.trackAtRow(msg.Y); tr != nil {
				tr.ScrollBy(-1)
			}
		case tea.MouseButtonWheelDown:
			if tr := m.trackAtRow(msg.Y); tr != nil {
				tr.ScrollBy(1)
			}
		}
	}
	return m, nil
}

// SeekAt maps a click at container offset x (pixels) and row to a seek
// request. Clicks landing on an interactive block belong to that block
// and are suppressed; everything else seeks, clamped to the program.
func (m *Model) SeekAt(xPx float64, row int) {
	ax := m.Axis()
	if tr := m.trackAtRow(row); tr != nil {
		if b := tr.BlockAt(xPx, ax); b != nil && b.Interactive {
			return
		}
	}

	t := ax.PixelsToTime(xPx - m.padding.Left)
	if t < 0 {
		t = 0
	}
	if t > m.duration {
		t = m.duration
	}
	if m.cmds.Seek != nil {
		m.cmds.Seek(t)
	}
}

// trackAtRow maps a view row to the track whose content region covers
// it. Row 0 is the marker row; each track occupies a label row plus
// its visible height; the ruler sits below all tracks.
func (m *Model) trackAtRow(row int) *Track {
	acc := 1 // marker row
	for _, tr := range m.tracks {
		top := acc + 1 // skip the label row
		bottom := top + tr.VisibleHeight()
		if row >= top && row < bottom {
			return tr
		}
		acc = bottom
	}
	return nil
}

// ViewHeight is the total number of rows View renders.
func (m *Model) ViewHeight() int {
	h := 1 + 2 // marker row + ruler rows
	for _, tr := range m.tracks {
		h += 1 + tr.VisibleHeight()
	}
	return h
}

// View renders the marker row, every track, and the time ruler from a
// single context snapshot.
func (m *Model) View() string {
	w := int(m.width)
	if w < 1 {
		return lipgloss.NewStyle().Foreground(m.th.Subtext).Render("measuring…")
	}

	ctx := m.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderMarkerRow(ctx, w))
	b.WriteByte('\n')
	for _, tr := range m.tracks {
		b.WriteString(tr.Render(ctx, m.th))
		b.WriteByte('\n')
	}
	b.WriteString(m.renderRuler(ctx, w))
	return b.String()
}

// renderMarkerRow draws the end-boundary and playhead heads. The
// playhead wins when the two coincide.
func (m *Model) renderMarkerRow(ctx Context, w int) string {
	runes := make([]rune, w)
	for i := range runes {
		runes[i] = ' '
	}

	bc, pc := ctx.BoundaryColumn(), ctx.PlayheadColumn()
	boundaryVisible := bc >= 0 && bc < w && bc != pc
	if boundaryVisible {
		runes[bc] = '▼'
	}
	playheadVisible := pc >= 0 && pc < w
	if playheadVisible {
		runes[pc] = '▼'
	}

	row := string(runes)
	switch {
	case playheadVisible && boundaryVisible:
		lo, hi := pc, bc
		loStyle := lipgloss.NewStyle().Foreground(m.th.Playhead)
		hiStyle := lipgloss.NewStyle().Foreground(m.th.Boundary)
		if bc < pc {
			lo, hi = bc, pc
			loStyle, hiStyle = hiStyle, loStyle
		}
		return string(runes[:lo]) +
			loStyle.Render(string(runes[lo:lo+1])) +
			string(runes[lo+1:hi]) +
			hiStyle.Render(string(runes[hi:hi+1])) +
			string(runes[hi+1:])
	case playheadVisible:
		return string(runes[:pc]) +
			lipgloss.NewStyle().Foreground(m.th.Playhead).Render(string(runes[pc:pc+1])) +
			string(runes[pc+1:])
	case boundaryVisible:
		return string(runes[:bc]) +
			lipgloss.NewStyle().Foreground(m.th.Boundary).Render(string(runes[bc:bc+1])) +
			string(runes[bc+1:])
	default:
		return row
	}
}

// renderRuler draws tick marks across the time-bearing range and a row
// of M:SS labels under them.
func (m *Model) renderRuler(ctx Context, w int) string {
	left := int(math.Round(m.padding.Left))
	span := int(math.Round(ctx.AvailableWidthPx()))
	if span < 2 {
		return ""
	}
	right := left + span
	if right > w {
		right = w
	}

	tickCount := span / 12
	if tickCount < 2 {
		tickCount = 2
	}
	if tickCount > 8 {
		tickCount = 8
	}

	ticks := make([]rune, w)
	for i := range ticks {
		ticks[i] = ' '
	}
	duration := ctx.TotalDuration()
	tickCols := make([]int, 0, tickCount+1)
	for i := 0; i <= tickCount; i++ {
		t := duration * float64(i) / float64(tickCount)
		col := left + int(math.Round(ctx.TimeToPixels(t)))
		if col >= w {
			col = w - 1
		}
		tickCols = append(tickCols, col)
	}
	for i := left; i < right; i++ {
		ticks[i] = '─'
	}
	for _, col := range tickCols {
		if col >= 0 && col < w {
			ticks[col] = '┼'
		}
	}

	labels := make([]rune, w)
	for i := range labels {
		labels[i] = ' '
	}
	lastEnd := -1
	for i, col := range tickCols {
		t := duration * float64(i) / float64(tickCount)
		text := []rune(ctx.FormatTime(t))
		start := col
		if start+len(text) > w {
			start = w - len(text)
		}
		if start < 0 {
			break
		}
		if start <= lastEnd {
			continue // keep labels from colliding
		}
		copy(labels[start:], text)
		lastEnd = start + len(text)
	}

	tickStyle := lipgloss.NewStyle().Foreground(m.th.Surface1)
	labelStyle := lipgloss.NewStyle().Foreground(m.th.Overlay)
	return tickStyle.Render(string(ticks)) + "\n" + labelStyle.Render(string(labels))
}
