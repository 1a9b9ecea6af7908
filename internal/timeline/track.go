package timeline

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/splice/internal/axis"
	"github.com/Dicklesworthstone/splice/internal/theme"
	"github.com/Dicklesworthstone/splice/internal/util"
)

// TrackKind selects the lane styling. Behavior is identical across
// kinds.
type TrackKind string

const (
	KindSlides  TrackKind = "slides"
	KindAudio   TrackKind = "audio"
	KindVideo   TrackKind = "video"
	KindGeneric TrackKind = "generic"
)

// Block is one timed content item on a track. Interactive blocks own
// the pointer input that lands on them; the timeline background must
// not seek on such clicks.
type Block struct {
	Start       float64
	Duration    float64
	Label       string
	Interactive bool
}

// End returns the block end time in seconds.
func (b Block) End() float64 { return b.Start + b.Duration }

// Track renders one semantic lane against the axis its Timeline
// publishes. When Height exceeds MaxHeight the lane gets an inner
// scroll region: the visible height shrinks to MaxHeight while the
// content keeps its full height.
type Track struct {
	Kind      TrackKind
	Label     string
	Height    int // content rows
	MaxHeight int // visible cap; 0 means uncapped
	Blocks    []Block

	vp viewport.Model
}

// NewTrack builds a track. Height is floored at one row.
func NewTrack(kind TrackKind, label string, height, maxHeight int, blocks []Block) *Track {
	if height < 1 {
		height = 1
	}
	return &Track{
		Kind:      kind,
		Label:     label,
		Height:    height,
		MaxHeight: maxHeight,
		Blocks:    blocks,
	}
}

// Scrollable reports whether the lane scrolls internally.
func (t *Track) Scrollable() bool {
	return t.MaxHeight > 0 && t.Height > t.MaxHeight
}

// VisibleHeight is the rendered content height, excluding the label row.
func (t *Track) VisibleHeight() int {
	if t.Scrollable() {
		return t.MaxHeight
	}
	return t.Height
}

// ContentHeight is the full content height, regardless of clipping.
func (t *Track) ContentHeight() int { return t.Height }

// ScrollBy scrolls the inner region by n lines (negative is up). A
// no-op on non-scrollable tracks.
func (t *Track) ScrollBy(n int) {
	if !t.Scrollable() {
		return
	}
	if n > 0 {
		t.vp.LineDown(n)
	} else if n < 0 {
		t.vp.LineUp(-n)
	}
}

// ScrollOffset returns the inner scroll position in lines.
func (t *Track) ScrollOffset() int { return t.vp.YOffset }

// BlockAt returns the block whose pixel span contains the
// container-relative x offset, or nil.
func (t *Track) BlockAt(xPx float64, ax axis.Axis) *Block {
	for i := range t.Blocks {
		b := &t.Blocks[i]
		start := ax.PaddingLeftPx + ax.TimeToPixels(b.Start)
		end := ax.PaddingLeftPx + ax.TimeToPixels(b.End())
		if xPx >= start && xPx < end {
			return b
		}
	}
	return nil
}

// Render draws the lane for one context snapshot: a sticky label row
// pinned above the (possibly scrolling) content region.
func (t *Track) Render(ctx Context, th theme.Theme) string {
	w := int(ctx.ContainerWidthPx())
	if w <= 0 {
		return ""
	}

	label := lipgloss.NewStyle().
		Foreground(t.kindColor(th)).
		Bold(true).
		Render(util.PadLabel(t.Label, w))

	rows := make([]string, t.Height)
	for r := 0; r < t.Height; r++ {
		rows[r] = t.renderRow(ctx, th, w, r)
	}
	content := strings.Join(rows, "\n")

	if t.Scrollable() {
		t.vp.Width = w
		t.vp.Height = t.MaxHeight
		t.vp.SetContent(content)
		return label + "\n" + t.vp.View()
	}
	return label + "\n" + content
}

func (t *Track) kindColor(th theme.Theme) lipgloss.Color {
	switch t.Kind {
	case KindSlides:
		return th.Slides
	case KindAudio:
		return th.Audio
	case KindVideo:
		return th.Video
	default:
		return th.Generic
	}
}

// Cell classes for run-grouped styling.
const (
	cellPad = iota
	cellLane
	cellBlock
	cellBlockLabel
	cellPlayhead
	cellBoundary
	cellSkip // second column of a wide rune
)

func (t *Track) renderRow(ctx Context, th theme.Theme, w, row int) string {
	padL, _ := ctx.Padding()
	left := int(math.Round(padL))
	right := left + int(math.Round(ctx.AvailableWidthPx()))

	runes := make([]rune, w)
	class := make([]int, w)
	for i := 0; i < w; i++ {
		if i >= left && i < right {
			runes[i] = '·'
			class[i] = cellLane
		} else {
			runes[i] = ' '
			class[i] = cellPad
		}
	}

	for _, b := range t.Blocks {
		startCol := left + int(math.Round(ctx.TimeToPixels(b.Start)))
		endCol := left + int(math.Round(ctx.TimeToPixels(b.End())))
		if endCol <= startCol {
			endCol = startCol + 1 // zero-width blocks still get one cell
		}
		for i := startCol; i < endCol && i < w; i++ {
			if i < 0 {
				continue
			}
			runes[i] = '█'
			class[i] = cellBlock
		}
		if row == 0 {
			t.overlayBlockLabel(runes, class, b, startCol, endCol, w)
		}
	}

	// Boundary marker shows through the lane background only; the
	// playhead overrides everything so all lanes stay visually synced.
	if bc := ctx.BoundaryColumn(); bc >= 0 && bc < w && class[bc] != cellBlock && class[bc] != cellBlockLabel && class[bc] != cellSkip {
		runes[bc] = '┆'
		class[bc] = cellBoundary
	}
	if pc := ctx.PlayheadColumn(); pc >= 0 && pc < w {
		if class[pc] == cellSkip {
			// Landing on the trailing column of a wide rune: narrow
			// the wide rune so the row keeps its width.
			runes[pc-1] = '█'
			class[pc-1] = cellBlock
		} else if pc+1 < w && class[pc+1] == cellSkip {
			runes[pc+1] = '█'
			class[pc+1] = cellBlock
		}
		runes[pc] = '│'
		class[pc] = cellPlayhead
	}

	return t.styleRow(runes, class, th)
}

// overlayBlockLabel writes the block label inside its span when there
// is room, tracking rune display width so wide runes keep columns
// aligned.
func (t *Track) overlayBlockLabel(runes []rune, class []int, b Block, startCol, endCol, w int) {
	span := endCol - startCol
	if span < 4 || b.Label == "" {
		return
	}
	text := util.Truncate(b.Label, span-2)
	col := startCol + 1
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 || col+rw > endCol-1 || col+rw > w {
			break
		}
		runes[col] = r
		class[col] = cellBlockLabel
		if rw == 2 {
			class[col+1] = cellSkip
		}
		col += rw
	}
}

// styleRow groups adjacent cells of the same class into one styled
// segment to keep the output compact.
func (t *Track) styleRow(runes []rune, class []int, th theme.Theme) string {
	kind := t.kindColor(th)
	styles := map[int]lipgloss.Style{
		cellPad:        lipgloss.NewStyle(),
		cellLane:       lipgloss.NewStyle().Foreground(th.Surface1),
		cellBlock:      lipgloss.NewStyle().Foreground(kind),
		cellBlockLabel: lipgloss.NewStyle().Foreground(th.Base).Background(kind),
		cellPlayhead:   lipgloss.NewStyle().Foreground(th.Playhead).Bold(true),
		cellBoundary:   lipgloss.NewStyle().Foreground(th.Boundary),
	}

	var out strings.Builder
	var seg strings.Builder
	segClass := -1
	flush := func() {
		if seg.Len() > 0 {
			out.WriteString(styles[segClass].Render(seg.String()))
			seg.Reset()
		}
	}
	for i, r := range runes {
		c := class[i]
		if c == cellSkip {
			continue // covered by the preceding wide rune
		}
		if c != segClass {
			flush()
			segClass = c
		}
		seg.WriteRune(r)
	}
	flush()
	return out.String()
}
