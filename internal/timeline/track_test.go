package timeline

import (
	"strings"
	"testing"

	"github.com/Dicklesworthstone/splice/internal/theme"
)

func testContext(t *testing.T, duration, width float64) Context {
	t.Helper()
	m := New(WithDuration(duration), WithPadding(Padding{Left: 4, Right: 4}))
	m.Report(width)
	return m.Snapshot()
}

func TestTrackScrollRegion(t *testing.T) {
	t.Log("TRACK_TEST: TestTrackScrollRegion | height > maxHeight enables inner scroll")

	tr := NewTrack(KindSlides, "Slides", 200, 100, nil)

	if !tr.Scrollable() {
		t.Fatal("expected track to be scrollable")
	}
	if got := tr.VisibleHeight(); got != 100 {
		t.Errorf("VisibleHeight = %d, want 100", got)
	}
	if got := tr.ContentHeight(); got != 200 {
		t.Errorf("ContentHeight = %d, want 200", got)
	}
}

func TestTrackNotScrollableWithinCap(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		maxHeight  int
		scrollable bool
		visible    int
	}{
		{"no cap", 5, 0, false, 5},
		{"under cap", 3, 5, false, 3},
		{"at cap", 5, 5, false, 5},
		{"over cap", 8, 5, true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrack(KindAudio, "a", tt.height, tt.maxHeight, nil)
			if tr.Scrollable() != tt.scrollable {
				t.Errorf("Scrollable = %v, want %v", tr.Scrollable(), tt.scrollable)
			}
			if got := tr.VisibleHeight(); got != tt.visible {
				t.Errorf("VisibleHeight = %d, want %d", got, tt.visible)
			}
		})
	}
}

func TestTrackScrollKeepsLabelPinned(t *testing.T) {
	t.Log("TRACK_TEST: TestTrackScrollKeepsLabelPinned | Sticky label above the scroll region")

	blocks := []Block{{Start: 0, Duration: 10, Label: "intro"}}
	tr := NewTrack(KindSlides, "Storyboard", 6, 2, blocks)
	ctx := testContext(t, 30, 64)

	before := tr.Render(ctx, theme.Current())
	tr.ScrollBy(3)
	after := tr.Render(ctx, theme.Current())

	for _, view := range []string{before, after} {
		first := strings.SplitN(view, "\n", 2)[0]
		if !strings.Contains(first, "Storyboard") {
			t.Errorf("label not pinned to first row: %q", first)
		}
	}
	if tr.ScrollOffset() == 0 {
		t.Error("expected scroll offset to move")
	}

	// Visible region: label row + MaxHeight content rows.
	if lines := strings.Count(after, "\n") + 1; lines != 3 {
		t.Errorf("rendered %d lines, want 3 (label + 2 visible)", lines)
	}
}

func TestTrackScrollByNoOpWhenNotScrollable(t *testing.T) {
	tr := NewTrack(KindVideo, "v", 2, 0, nil)
	tr.ScrollBy(5)
	if tr.ScrollOffset() != 0 {
		t.Errorf("scroll offset = %d on non-scrollable track", tr.ScrollOffset())
	}
}

func TestBlockAt(t *testing.T) {
	t.Log("TRACK_TEST: TestBlockAt | Pixel hit-testing against block spans")

	blocks := []Block{
		{Start: 0, Duration: 10, Label: "a"},
		{Start: 10, Duration: 5, Label: "b", Interactive: true},
	}
	tr := NewTrack(KindSlides, "s", 1, 0, blocks)
	ctx := testContext(t, 30, 308) // available width 300, pps=10
	ax := ctx.Axis()

	tests := []struct {
		x    float64
		want string // block label, "" for miss
	}{
		{4, "a"},    // left edge of first block (after 4px padding)
		{53, "a"},   // inside first block
		{104, "b"},  // left edge of interactive block
		{140, "b"},  // inside interactive block
		{154, ""},   // just past the interactive block
		{250, ""},   // empty lane
		{0, ""},     // inside left padding
		{-3, ""},    // off-canvas
		{9999, ""},  // far past the end
	}

	for _, tt := range tests {
		got := tr.BlockAt(tt.x, ax)
		switch {
		case tt.want == "" && got != nil:
			t.Errorf("BlockAt(%v) = %q, want miss", tt.x, got.Label)
		case tt.want != "" && got == nil:
			t.Errorf("BlockAt(%v) = miss, want %q", tt.x, tt.want)
		case tt.want != "" && got != nil && got.Label != tt.want:
			t.Errorf("BlockAt(%v) = %q, want %q", tt.x, got.Label, tt.want)
		}
	}
}

func TestTrackRenderShowsBlockLabel(t *testing.T) {
	blocks := []Block{{Start: 0, Duration: 20, Label: "opening"}}
	tr := NewTrack(KindVideo, "Video", 1, 0, blocks)
	ctx := testContext(t, 30, 68)

	view := tr.Render(ctx, theme.Current())
	if !strings.Contains(view, "opening") {
		t.Errorf("block label missing from render:\n%s", view)
	}
}

func TestTrackRenderEmptyWithoutWidth(t *testing.T) {
	tr := NewTrack(KindAudio, "a", 1, 0, nil)
	m := New(WithDuration(10))
	ctx := m.Snapshot() // width still 0

	if got := tr.Render(ctx, theme.Current()); got != "" {
		t.Errorf("expected empty render before measurement, got %q", got)
	}
}
