package glow

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/go-drift/overscroll/pkg/graphics"
	pkgtesting "github.com/go-drift/overscroll/pkg/testing"
	"github.com/go-drift/overscroll/pkg/theme"
)

func newSizedGlow(t *testing.T, width, height float64) *EdgeGlow {
	t.Helper()
	e := New(theme.DefaultGlow())
	e.SetSize(width, height)
	return e
}

func drawOnce(e *EdgeGlow) (*graphics.DisplayList, bool) {
	list := graphics.NewDisplayList(graphics.Size{Width: 400, Height: 600})
	more := e.Draw(list)
	return list, more
}

func TestEdgeGlow_InitiallyFinished(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	if !e.IsFinished() {
		t.Error("new glow should be finished")
	}
	if _, more := drawOnce(e); more {
		t.Error("drawing an idle glow should not request another frame")
	}
}

func TestEdgeGlow_PullLightsUp(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.1)

	if e.IsFinished() {
		t.Error("glow should be active after a pull")
	}
	list, more := drawOnce(e)
	if !more {
		t.Error("an active pull should request another frame")
	}
	circles := list.OpsNamed("drawCircle")
	if len(circles) != 1 {
		t.Fatalf("expected one drawCircle, got %d ops", len(circles))
	}
	color := graphics.Color(circles[0].Params["color"].(uint32))
	if color.Alpha() == 0 {
		t.Error("pulled glow should be visible")
	}
}

func TestEdgeGlow_PullScale(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.1)

	// distance 0.1 over a 400px surface
	want := math.Max(0, 1-1/math.Sqrt(0.1*400)-0.3) / 0.7
	if math.Abs(e.scale-want) > 1e-9 {
		t.Errorf("pull scale = %v, want %v", e.scale, want)
	}

	// Pull distance accumulates across calls.
	e.Pull(0.1)
	want = math.Max(0, 1-1/math.Sqrt(0.2*400)-0.3) / 0.7
	if math.Abs(e.scale-want) > 1e-9 {
		t.Errorf("accumulated pull scale = %v, want %v", e.scale, want)
	}
}

func TestEdgeGlow_PullAlphaCapped(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	for range 50 {
		e.Pull(0.5)
	}

	if e.alpha > e.tuning.MaxAlpha {
		t.Errorf("alpha %v exceeds cap %v", e.alpha, e.tuning.MaxAlpha)
	}
}

func TestEdgeGlow_OppositePullDims(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.4)
	bright := e.scale
	e.Pull(-0.3)

	if e.scale >= bright {
		t.Errorf("negative delta should shrink the glow: %v -> %v", bright, e.scale)
	}
	// Alpha only ever grows from pulling; the magnitude feeds it.
	if e.alpha == 0 {
		t.Error("alpha should remain lit")
	}
}

func TestEdgeGlow_ZeroSizePullIsSafe(t *testing.T) {
	pkgtesting.Install(t)
	e := New(theme.DefaultGlow())
	e.SetSize(0, 0)

	e.Pull(0.3)

	if e.scale != 0 {
		t.Errorf("scale on a zero-width surface = %v, want 0", e.scale)
	}
	if math.IsNaN(e.alpha) || math.IsNaN(e.scale) {
		t.Error("zero size must not produce NaN")
	}
	if _, more := drawOnce(e); !more {
		t.Error("pull is active even with no geometry")
	}
}

func TestEdgeGlow_ReleaseSettles(t *testing.T) {
	clk := pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.1)
	drawOnce(e)
	e.Release()

	clk.Advance(300 * time.Millisecond)
	if _, more := drawOnce(e); !more {
		t.Error("mid-recede should keep animating")
	}

	clk.Advance(400 * time.Millisecond)
	if _, more := drawOnce(e); more {
		t.Error("recede should settle within its duration")
	}
	if !e.IsFinished() {
		t.Error("glow should be finished after the recede")
	}
}

func TestEdgeGlow_ReleaseOutsidePullIsNoOp(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Release()
	if !e.IsFinished() {
		t.Error("release while idle should stay idle")
	}

	e.Absorb(5000)
	e.Release()
	if e.state != stateAbsorb {
		t.Errorf("release during absorb moved state to %v", e.state)
	}
}

func TestEdgeGlow_RecedeValuesInterpolate(t *testing.T) {
	clk := pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.2)
	drawOnce(e)
	start := e.alpha
	e.Release()

	clk.Advance(300 * time.Millisecond)
	drawOnce(e)

	if e.alpha <= 0 || e.alpha >= start {
		t.Errorf("mid-recede alpha %v should be between 0 and %v", e.alpha, start)
	}
}

func TestEdgeGlow_PullTransitionsToDecay(t *testing.T) {
	clk := pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.1)
	clk.Advance(200 * time.Millisecond)
	drawOnce(e)

	if e.state != statePullDecay {
		t.Fatalf("state after the pull span = %v, want pullDecay", e.state)
	}

	// The decay animates everything back out, recedes, and the same
	// frame that reaches scale zero is the last one painted.
	clk.Advance(2100 * time.Millisecond)
	if _, more := drawOnce(e); !more {
		t.Error("the fully faded state still gets one final paint")
	}
	if !e.IsFinished() {
		t.Error("glow should be idle after the final frame")
	}
	if _, more := drawOnce(e); more {
		t.Error("no more frames after settling")
	}
}

func TestEdgeGlow_RepullDuringDecayIsDebounced(t *testing.T) {
	clk := pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.1)
	clk.Advance(200 * time.Millisecond)
	drawOnce(e)
	if e.state != statePullDecay {
		t.Fatalf("state = %v, want pullDecay", e.state)
	}

	alphaBefore := e.alpha
	e.PullAt(0.5, 0.2)

	if e.state != statePullDecay {
		t.Errorf("re-pull during decay changed state to %v", e.state)
	}
	if e.alpha != alphaBefore {
		t.Errorf("re-pull during decay changed alpha %v -> %v", alphaBefore, e.alpha)
	}
	if e.targetDisplacement != 0.2 {
		t.Errorf("displacement target = %v, want 0.2", e.targetDisplacement)
	}
}

func TestEdgeGlow_PullReleaseScenario(t *testing.T) {
	clk := pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.1)
	for range 5 {
		clk.Advance(16 * time.Millisecond)
		if _, more := drawOnce(e); !more {
			t.Fatal("held pull should keep animating")
		}
	}
	e.Release()

	deadline := 700 * time.Millisecond
	var elapsed time.Duration
	for elapsed < deadline {
		clk.Advance(16 * time.Millisecond)
		elapsed += 16 * time.Millisecond
		if _, more := drawOnce(e); !more {
			break
		}
	}
	if !e.IsFinished() {
		t.Errorf("glow still running %v after release", elapsed)
	}
}

func TestEdgeGlow_AbsorbClampsVelocity(t *testing.T) {
	cases := []struct {
		name   string
		given  int
		actsAs int
	}{
		{"below minimum", 40, 100},
		{"negative magnitude", -40, 100},
		{"above maximum", 25000, 10000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clk := pkgtesting.Install(t)

			a := newSizedGlow(t, 400, 600)
			b := newSizedGlow(t, 400, 600)
			a.Absorb(tc.given)
			b.Absorb(tc.actsAs)

			clk.Advance(2 * time.Millisecond)
			listA, _ := drawOnce(a)
			listB, _ := drawOnce(b)
			opsA := listA.OpsNamed("drawCircle")
			opsB := listB.OpsNamed("drawCircle")
			if !reflect.DeepEqual(opsA, opsB) {
				t.Errorf("Absorb(%d) drew %v, Absorb(%d) drew %v",
					tc.given, opsA, tc.actsAs, opsB)
			}
		})
	}
}

func TestEdgeGlow_AbsorbDuration(t *testing.T) {
	// 0.15 + v*0.02 fractional milliseconds.
	cases := []struct {
		velocity int
		want     time.Duration
	}{
		{100, 2150 * time.Microsecond},
		{10000, 200150 * time.Microsecond},
	}
	for _, tc := range cases {
		got := absorbDuration(tc.velocity)
		if diff := (got - tc.want).Abs(); diff > time.Microsecond {
			t.Errorf("absorbDuration(%d) = %v, want %v", tc.velocity, got, tc.want)
		}
	}
}

func TestEdgeGlow_AbsorbEndpoints(t *testing.T) {
	clk := pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Absorb(10000)
	clk.Advance(absorbDuration(10000))
	drawOnce(e)

	if e.scale > 1 {
		t.Errorf("absorb scale end = %v, must not exceed 1", e.scale)
	}
	if e.alpha > e.tuning.MaxAlpha {
		t.Errorf("absorb alpha end = %v, exceeds cap %v", e.alpha, e.tuning.MaxAlpha)
	}
	if e.state != stateRecede {
		t.Errorf("state after absorb span = %v, want recede", e.state)
	}
}

func TestEdgeGlow_AbsorbMinimumBarelyVisible(t *testing.T) {
	clk := pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Absorb(100)
	clk.Advance(absorbDuration(100))
	drawOnce(e)

	// v=100: scale target 0.025 + 100*1*0.00015/2, alpha floor 0.3.
	if want := 0.0325; math.Abs(e.scale-want) > 1e-9 {
		t.Errorf("absorb scale end = %v, want %v", e.scale, want)
	}
	if want := 0.3; math.Abs(e.alpha-want) > 1e-9 {
		t.Errorf("absorb alpha end = %v, want %v", e.alpha, want)
	}
}

func TestEdgeGlow_AbsorbThenSettles(t *testing.T) {
	clk := pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Absorb(10000)
	clk.Advance(250 * time.Millisecond)
	if _, more := drawOnce(e); !more {
		t.Error("glow should recede after the absorb flash")
	}

	clk.Advance(700 * time.Millisecond)
	if _, more := drawOnce(e); more {
		t.Error("glow should settle after the recede")
	}
	if !e.IsFinished() {
		t.Error("glow should be finished")
	}
}

func TestEdgeGlow_SetSizeKeepsAnimation(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.1)
	alpha, scale := e.alpha, e.scale

	e.SetSize(800, 300)

	if e.state != statePull || e.alpha != alpha || e.scale != scale {
		t.Error("SetSize must not reset animation state")
	}
}

func TestEdgeGlow_SetSizeGeometry(t *testing.T) {
	e := New(theme.DefaultGlow())
	e.SetSize(400, 600)

	wantRadius := 600 * 0.5 / glowSin
	if math.Abs(e.radius-wantRadius) > 1e-9 {
		t.Errorf("radius = %v, want %v", e.radius, wantRadius)
	}
	if e.baseScale <= 0 || e.baseScale > 1 {
		t.Errorf("baseScale = %v, want in (0, 1]", e.baseScale)
	}
	if e.bounds.Width() != 400 {
		t.Errorf("bounds width = %v, want 400", e.bounds.Width())
	}
	if e.bounds.Height() > 600 {
		t.Errorf("bounds height = %v, must not exceed the surface", e.bounds.Height())
	}
}

func TestEdgeGlow_MaxWidth(t *testing.T) {
	e := New(theme.DefaultGlow())
	e.SetSize(200, 50)

	if got := e.MaxWidth(); got != 400 {
		t.Errorf("MaxWidth = %d, want 400", got)
	}
}

func TestEdgeGlow_DrawTransform(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)
	e.Pull(0.1)

	list, _ := drawOnce(e)
	ops := list.Ops()

	// Scale about the pivot decomposes to translate, scale, translate.
	if len(ops) != 4 || ops[0].Op != "translate" || ops[1].Op != "scale" ||
		ops[2].Op != "translate" || ops[3].Op != "drawCircle" {
		t.Fatalf("unexpected op sequence %v", ops)
	}
	if sx := ops[1].Params["sx"].(float64); sx < 0 || sx > 1 {
		t.Errorf("scale factor %v out of range", sx)
	}

	circle := ops[3]
	wantCX := math.Round((400-e.radius)*100) / 100
	if cx := circle.Params["cx"].(float64); cx != wantCX {
		t.Errorf("circle center x = %v, want %v", cx, wantCX)
	}
	if r := circle.Params["radius"].(float64); r != math.Round(e.radius*100)/100 {
		t.Errorf("circle radius = %v, want %v", r, e.radius)
	}
}

func TestEdgeGlow_DisplacementFollowsPull(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.PullAt(0.1, 1.0)

	var lastCY float64
	for i := range 6 {
		list, _ := drawOnce(e)
		circles := list.OpsNamed("drawCircle")
		cy := circles[0].Params["cy"].(float64)
		if i > 0 && cy <= lastCY {
			t.Fatalf("frame %d: center y %v did not move toward the contact point (was %v)",
				i, cy, lastCY)
		}
		lastCY = cy
	}
}

func TestEdgeGlow_Finish(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)

	e.Pull(0.3)
	e.Finish()

	if !e.IsFinished() {
		t.Error("Finish should end the animation")
	}
	if _, more := drawOnce(e); more {
		t.Error("finished glow should not request frames")
	}
}

func TestEdgeGlow_SetColor(t *testing.T) {
	pkgtesting.Install(t)
	e := newSizedGlow(t, 400, 600)
	blue := graphics.RGB(0x20, 0x60, 0xFF)
	e.SetColor(blue)

	if e.Color() != blue {
		t.Errorf("Color = %08x, want %08x", uint32(e.Color()), uint32(blue))
	}

	e.Pull(0.5)
	list, _ := drawOnce(e)
	color := graphics.Color(list.OpsNamed("drawCircle")[0].Params["color"].(uint32))
	if color&0x00FFFFFF != blue&0x00FFFFFF {
		t.Errorf("drawn color %08x lost the configured hue", uint32(color))
	}
}
