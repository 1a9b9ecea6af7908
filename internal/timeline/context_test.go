package timeline

import (
	"strings"
	"testing"
)

func TestContextOutsideTimelinePanics(t *testing.T) {
	t.Log("CONTEXT_TEST: TestContextOutsideTimelinePanics | Zero-value context fails loudly")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic from zero-value Context")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "outside a Timeline") {
			t.Errorf("panic message %v should name the wiring bug", r)
		}
	}()

	var ctx Context
	ctx.TimeToPixels(1)
}

func TestSnapshotFields(t *testing.T) {
	m := New(
		WithDuration(30),
		WithPadding(Padding{Left: 40, Right: 40}),
	)
	m.Report(580)
	m.SetPlayback(15, true)

	ctx := m.Snapshot()

	if got := ctx.TotalDuration(); got != 30 {
		t.Errorf("TotalDuration = %v", got)
	}
	if got := ctx.CurrentTime(); got != 15 {
		t.Errorf("CurrentTime = %v", got)
	}
	if !ctx.IsPlaying() {
		t.Error("IsPlaying = false")
	}
	if got := ctx.ContainerWidthPx(); got != 580 {
		t.Errorf("ContainerWidthPx = %v", got)
	}
	if got := ctx.AvailableWidthPx(); got != 500 {
		t.Errorf("AvailableWidthPx = %v", got)
	}
	l, r := ctx.Padding()
	if l != 40 || r != 40 {
		t.Errorf("Padding = %v, %v", l, r)
	}
	if got := ctx.FormatTime(75); got != "1:15" {
		t.Errorf("FormatTime(75) = %q", got)
	}
	// Playhead at 15s of 30s over 500px lands mid-range: 40 + 250.
	if got := ctx.PlayheadColumn(); got != 290 {
		t.Errorf("PlayheadColumn = %d, want 290", got)
	}
	if got := ctx.BoundaryColumn(); got != 540 {
		t.Errorf("BoundaryColumn = %d, want 540", got)
	}
}

func TestSnapshotCommandsRouted(t *testing.T) {
	t.Log("CONTEXT_TEST: TestSnapshotCommandsRouted | Commands flow up through the snapshot")

	var seeked float64 = -1
	var played, paused bool
	m := New(WithDuration(30), WithCommands(Commands{
		Seek:  func(s float64) { seeked = s },
		Play:  func() { played = true },
		Pause: func() { paused = true },
	}))
	m.Report(580)

	ctx := m.Snapshot()
	ctx.Seek(12)
	ctx.Play()
	ctx.Pause()

	if seeked != 12 || !played || !paused {
		t.Errorf("commands not routed: seek=%v play=%v pause=%v", seeked, played, paused)
	}
}

func TestSnapshotNilCommandsAreNoOps(t *testing.T) {
	m := New(WithDuration(30))
	m.Report(100)
	ctx := m.Snapshot()

	// Must not panic with no commands wired.
	ctx.Seek(5)
	ctx.Play()
	ctx.Pause()
}

func TestSnapshotIsImmutablePerRender(t *testing.T) {
	t.Log("CONTEXT_TEST: TestSnapshotIsImmutablePerRender | Old snapshots keep their axis")

	m := New(WithDuration(30), WithPadding(Padding{Left: 40, Right: 40}))
	m.Report(580)

	before := m.Snapshot()

	// Resize: a new snapshot sees the new axis, the old one is untouched.
	m.Report(880)
	after := m.Snapshot()

	if got := before.TimeToPixels(15); got != 250 {
		t.Errorf("old snapshot TimeToPixels(15) = %v, want 250", got)
	}
	if got := after.TimeToPixels(15); got != 400 {
		t.Errorf("new snapshot TimeToPixels(15) = %v, want 400", got)
	}
}
