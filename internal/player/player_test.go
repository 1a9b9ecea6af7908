package player

import "testing"

func TestNewStartsPaused(t *testing.T) {
	p := New(30)
	st := p.State()
	if st.Playing || st.CurrentSeconds != 0 {
		t.Errorf("new player state = %+v, want paused at 0", st)
	}
	if p.Duration() != 30 {
		t.Errorf("Duration = %v", p.Duration())
	}
}

func TestSeekClamps(t *testing.T) {
	t.Log("PLAYER_TEST: TestSeekClamps | Seek bounded to [0, duration]")

	p := New(30)

	tests := []struct {
		seek float64
		want float64
	}{
		{15, 15},
		{-5, 0},
		{31, 30},
		{30, 30},
		{0, 0},
	}
	for _, tt := range tests {
		p.Seek(tt.seek)
		if got := p.State().CurrentSeconds; got != tt.want {
			t.Errorf("Seek(%v) -> %v, want %v", tt.seek, got, tt.want)
		}
	}
}

func TestAdvance(t *testing.T) {
	p := New(10)
	p.Play()

	p.Advance(4)
	if got := p.State().CurrentSeconds; got != 4 {
		t.Errorf("position = %v, want 4", got)
	}

	// Advancing while paused is a no-op.
	p.Pause()
	p.Advance(4)
	if got := p.State().CurrentSeconds; got != 4 {
		t.Errorf("position moved while paused: %v", got)
	}
}

func TestAdvancePausesAtEnd(t *testing.T) {
	t.Log("PLAYER_TEST: TestAdvancePausesAtEnd | Auto-pause at program end")

	p := New(10)
	p.Play()
	p.Advance(12)

	st := p.State()
	if st.CurrentSeconds != 10 {
		t.Errorf("position = %v, want 10", st.CurrentSeconds)
	}
	if st.Playing {
		t.Error("expected auto-pause at end")
	}
}

func TestPlayFromEndRestarts(t *testing.T) {
	p := New(10)
	p.Seek(10)
	p.Play()

	st := p.State()
	if st.CurrentSeconds != 0 || !st.Playing {
		t.Errorf("play from end = %+v, want playing from 0", st)
	}
}

func TestToggle(t *testing.T) {
	p := New(10)
	p.Toggle()
	if !p.State().Playing {
		t.Error("first toggle should play")
	}
	p.Toggle()
	if p.State().Playing {
		t.Error("second toggle should pause")
	}
}

func TestSetDurationClampsPosition(t *testing.T) {
	p := New(30)
	p.Seek(25)
	p.SetDuration(20)
	if got := p.State().CurrentSeconds; got != 20 {
		t.Errorf("position after shrink = %v, want 20", got)
	}

	p.SetDuration(-5)
	if p.Duration() != 0 {
		t.Errorf("negative duration not normalized: %v", p.Duration())
	}
}
