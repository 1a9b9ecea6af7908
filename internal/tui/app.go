// Package tui wires the storyboard player program: an external
// playback clock, the timeline widget, and a transport bar.
package tui

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Dicklesworthstone/splice/internal/axis"
	"github.com/Dicklesworthstone/splice/internal/boundary"
	"github.com/Dicklesworthstone/splice/internal/config"
	"github.com/Dicklesworthstone/splice/internal/player"
	"github.com/Dicklesworthstone/splice/internal/project"
	"github.com/Dicklesworthstone/splice/internal/theme"
	"github.com/Dicklesworthstone/splice/internal/timeline"
)

// ReloadMsg carries the result of a storyboard reload.
type ReloadMsg struct {
	Project *project.Project
	Err     error
}

const seekStepSeconds = 5.0

// Model is the top-level program model.
type Model struct {
	cfg  config.Config
	th   theme.Theme
	keys KeyMap

	proj *project.Project
	path string
	pl   *player.Player
	tl   *timeline.Model

	watcher  *project.Watcher
	tickRate time.Duration

	width    int
	height   int
	err      error
	quitting bool
}

// New builds the program model for a loaded storyboard.
func New(cfg config.Config, proj *project.Project) *Model {
	th := theme.SetByName(cfg.Theme)
	pl := player.New(proj.Duration)

	m := &Model{
		cfg:      cfg,
		th:       th,
		keys:     DefaultKeys,
		proj:     proj,
		pl:       pl,
		tickRate: time.Duration(cfg.TickRateMS) * time.Millisecond,
	}

	m.tl = timeline.New(
		timeline.WithDuration(proj.Duration),
		timeline.WithPadding(timeline.Padding{Left: cfg.PaddingLeft, Right: cfg.PaddingRight}),
		timeline.WithTheme(th),
		timeline.WithTracks(tracksFromProject(proj)...),
		timeline.WithCommands(timeline.Commands{
			Seek:  pl.Seek,
			Play:  pl.Play,
			Pause: pl.Pause,
		}),
	)
	return m
}

// tracksFromProject maps storyboard tracks onto timeline lanes.
func tracksFromProject(p *project.Project) []*timeline.Track {
	out := make([]*timeline.Track, 0, len(p.Tracks))
	for _, tr := range p.Tracks {
		blocks := make([]timeline.Block, 0, len(tr.Blocks))
		for _, b := range tr.Blocks {
			blocks = append(blocks, timeline.Block{
				Start:       b.Start,
				Duration:    b.Duration,
				Label:       b.Label,
				Interactive: b.Interactive,
			})
		}
		out = append(out, timeline.NewTrack(
			timeline.TrackKind(tr.Kind),
			tr.Label,
			int(math.Round(tr.Height)),
			int(math.Round(tr.MaxHeight)),
			blocks,
		))
	}
	return out
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return player.Tick(m.tickRate)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case player.TickMsg:
		m.pl.Advance(m.tickRate.Seconds())
		m.syncProps()
		return m, player.Tick(m.tickRate)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tl, _ = m.tl.Update(msg)
		return m, nil

	case timeline.WidthMsg:
		m.tl, _ = m.tl.Update(msg)
		return m, nil

	case tea.MouseMsg:
		// Mouse rows are program-relative; the timeline starts below
		// the title row. Input on the surrounding chrome (title,
		// transport, help) belongs to the chrome, never to the widget.
		msg.Y -= chromeRowsAboveTimeline
		if msg.Y < 0 || msg.Y >= m.tl.ViewHeight() {
			return m, nil
		}
		m.tl, _ = m.tl.Update(msg)
		m.syncProps()
		return m, nil

	case ReloadMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("reload failed: %w", msg.Err)
			return m, nil
		}
		m.err = nil
		m.applyProject(msg.Project)
		return m, nil
	}
	return m, nil
}

// chromeRowsAboveTimeline is the title row rendered above the widget.
const chromeRowsAboveTimeline = 1

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.pl.Toggle()

	case key.Matches(msg, m.keys.SeekBack):
		m.pl.Seek(m.pl.State().CurrentSeconds - seekStepSeconds)

	case key.Matches(msg, m.keys.SeekFwd):
		m.pl.Seek(m.pl.State().CurrentSeconds + seekStepSeconds)

	case key.Matches(msg, m.keys.Restart):
		m.pl.Seek(0)

	case key.Matches(msg, m.keys.End):
		m.pl.Seek(m.pl.Duration())

	case key.Matches(msg, m.keys.Reload):
		path := m.path
		if path == "" {
			break
		}
		return m, func() tea.Msg {
			p, err := project.Load(path)
			return ReloadMsg{Project: p, Err: err}
		}
	}
	m.syncProps()
	return m, nil
}

// applyProject swaps in a reloaded storyboard. The duration change
// flows into the next axis snapshot; the playback position is clamped
// by the player.
func (m *Model) applyProject(p *project.Project) {
	m.proj = p
	m.pl.SetDuration(p.Duration)
	m.tl.SetDuration(p.Duration)
	m.tl.SetTracks(tracksFromProject(p)...)
	m.syncProps()
}

// syncProps pushes the player-owned state down into the timeline.
// State flows down; the timeline never wrote it.
func (m *Model) syncProps() {
	st := m.pl.State()
	m.tl.SetDuration(m.pl.Duration())
	m.tl.SetPlayback(st.CurrentSeconds, st.Playing)
}

// attachReloadWatcher starts the storyboard file watcher. A watch
// setup failure disables live reload only; the session keeps running
// with the failure surfaced on the status line.
func (m *Model) attachReloadWatcher(send func(tea.Msg)) {
	w, err := project.WatchFile(m.path, func(proj *project.Project, err error) {
		send(ReloadMsg{Project: proj, Err: err})
	})
	if err != nil {
		m.err = fmt.Errorf("live reload disabled: %w", err)
		return
	}
	m.watcher = w
}

func (m *Model) teardown() {
	m.tl.Close()
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(m.th.Primary).
		Bold(true).
		Render(m.proj.Title)

	st := m.pl.State()
	icon := "⏸"
	if st.Playing {
		icon = "▶"
	}
	clock := fmt.Sprintf("%s %s / %s", icon,
		axis.FormatTime(st.CurrentSeconds), axis.FormatTime(m.pl.Duration()))
	transport := lipgloss.NewStyle().Foreground(m.th.Text).Render(clock)

	help := lipgloss.NewStyle().Foreground(m.th.Overlay).Render(
		"space play/pause · click seek · ←/→ nudge · r reload · q quit")
	if m.width > 0 {
		help = wordwrap.String(help, m.width)
	}

	out := title + "\n" + m.tl.View() + "\n" + transport + "\n" + help
	if m.err != nil {
		errLine := lipgloss.NewStyle().Foreground(m.th.Playhead).
			Render(m.err.Error())
		out += "\n" + errLine
	}
	return out
}

// Run loads the storyboard at path and runs the player program until
// quit. It owns the boundary subscription and the file watcher for the
// life of the program.
func Run(cfg config.Config, path string) error {
	proj, err := project.Load(path)
	if err != nil {
		return err
	}

	m := New(cfg, proj)
	m.path = path

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Watch delivers the first width synchronously through p.Send and
	// so must run off the program goroutine; the timeline serializes
	// the subscription swap against Update and Close internally.
	frame := time.Duration(cfg.FrameIntervalMS) * time.Millisecond
	go m.tl.Watch(boundary.NewTermMeasurer(os.Stdout), func(msg tea.Msg) {
		p.Send(msg)
	}, boundary.WithFrameInterval(frame))

	m.attachReloadWatcher(p.Send)
	defer m.teardown()

	_, err = p.Run()
	return err
}
