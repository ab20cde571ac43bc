package animation

import (
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

func installStub(t *testing.T) *stubClock {
	t.Helper()
	clk := &stubClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestSegment_Progress(t *testing.T) {
	clk := installStub(t)
	seg := NewSegment(100*time.Millisecond, nil)

	if got := seg.Progress(); got != 0 {
		t.Errorf("progress at start = %v, want 0", got)
	}

	clk.now = clk.now.Add(50 * time.Millisecond)
	if got := seg.Progress(); got != 0.5 {
		t.Errorf("progress halfway = %v, want 0.5", got)
	}

	clk.now = clk.now.Add(200 * time.Millisecond)
	if got := seg.Progress(); got != 1 {
		t.Errorf("progress past the end = %v, want clamp to 1", got)
	}
}

func TestSegment_ZeroDurationIsComplete(t *testing.T) {
	installStub(t)
	seg := NewSegment(0, nil)

	if got := seg.Progress(); got != 1 {
		t.Errorf("zero-duration progress = %v, want 1", got)
	}
	if !seg.Done(0) {
		t.Error("zero-duration segment should be done")
	}
}

func TestSegment_Restart(t *testing.T) {
	clk := installStub(t)
	seg := NewSegment(100*time.Millisecond, nil)

	clk.now = clk.now.Add(time.Second)
	if !seg.Done(0) {
		t.Fatal("segment should have completed")
	}

	seg.Restart(200 * time.Millisecond)
	if got := seg.Progress(); got != 0 {
		t.Errorf("progress after restart = %v, want 0", got)
	}

	clk.now = clk.now.Add(100 * time.Millisecond)
	if got := seg.Progress(); got != 0.5 {
		t.Errorf("progress = %v, want 0.5 of the new duration", got)
	}
}

func TestSegment_DoneTolerance(t *testing.T) {
	clk := installStub(t)
	seg := NewSegment(1000*time.Millisecond, nil)

	clk.now = clk.now.Add(999 * time.Millisecond)
	if seg.Done(0) {
		t.Error("exact comparison should not be done at 0.999")
	}
	if !seg.Done(0.001) {
		t.Error("0.999 should be done within a 0.001 tolerance")
	}
}

func TestSegment_EasedAppliesCurve(t *testing.T) {
	clk := installStub(t)
	seg := NewSegment(100*time.Millisecond, Decelerate)

	clk.now = clk.now.Add(50 * time.Millisecond)
	if got, want := seg.Eased(), 0.75; got != want {
		t.Errorf("eased halfway = %v, want %v", got, want)
	}
}
