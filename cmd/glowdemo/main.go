// Command glowdemo is an interactive showcase of the edge glow. It hosts
// a horizontally scrollable row of cards: drag past either end to pull
// the glow, fling into an end to see it absorb the impact. Press D to
// crossfade between the light and dark tunings, Home to animate back to
// the start.
//
// Drop an overscroll.yaml next to the binary to override the glow
// tuning.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/overscroll/pkg/animation"
	"github.com/go-drift/overscroll/pkg/errors"
	"github.com/go-drift/overscroll/pkg/graphics"
	"github.com/go-drift/overscroll/pkg/scroll"
	"github.com/go-drift/overscroll/pkg/theme"
)

const (
	screenWidth  = 640
	screenHeight = 400

	cardCount  = 16
	cardWidth  = 220.0
	cardGap    = 18.0
	cardTop    = 60.0
	cardHeight = screenHeight - 2*cardTop
)

var (
	lightBackground = graphics.RGB(0xFA, 0xFA, 0xFA)
	darkBackground  = graphics.RGB(0x1C, 0x1C, 0x1E)
	lightCard       = graphics.RGB(0xDD, 0xDD, 0xE2)
	darkCard        = graphics.RGB(0x3A, 0x3A, 0x3E)
)

type game struct {
	position *scroll.Position
	edges    *scroll.Edges
	canvas   *ebitenCanvas

	dragging bool
	lastX    float64
	lastMove time.Time
	velocity float64

	homing   bool
	homeSeg  animation.Segment
	homeFrom float64

	dark          bool
	fadeSeg       animation.Segment
	bgTween       *animation.Tween[graphics.Color]
	cardTween     *animation.Tween[graphics.Color]
	background    graphics.Color
	cardColor     graphics.Color
	glowAnimating bool
}

func newGame(tuning theme.Glow) *game {
	g := &game{
		edges:      scroll.NewEdges(tuning),
		background: lightBackground,
		cardColor:  lightCard,
	}
	g.position = scroll.NewPosition(func() { g.glowAnimating = true })
	g.position.SetEdges(g.edges)
	g.position.SetViewport(screenWidth)
	g.position.SetExtents(0, contentExtent()-screenWidth)
	g.edges.SetSize(screenWidth, screenHeight)
	return g
}

func contentExtent() float64 {
	return cardGap + cardCount*(cardWidth+cardGap)
}

func (g *game) Update() error {
	defer errors.Recover("glowdemo.Update")

	scroll.StepBallistics()
	g.handlePointer()
	g.handleKeys()
	g.stepHome()
	g.stepFade()
	return nil
}

func (g *game) handlePointer() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	now := animation.Now()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.homing = false
		g.position.StopBallistic()
		g.lastX = fx
		g.lastMove = now
		g.velocity = 0
		return
	}

	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx := fx - g.lastX
		if dx != 0 {
			displacement := graphics.Clamp(fy/screenHeight, 0, 1)
			g.position.Drag(-dx, displacement)
			if dt := now.Sub(g.lastMove).Seconds(); dt > 0 {
				// Blend so a brief pause before release kills the fling.
				g.velocity = 0.6*g.velocity + 0.4*(dx/dt)
			}
			g.lastX = fx
			g.lastMove = now
		}
		return
	}

	if g.dragging {
		g.dragging = false
		g.position.EndDrag()
		if now.Sub(g.lastMove) < 100*time.Millisecond {
			g.position.Fling(-g.velocity)
		}
	}
}

func (g *game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.toggleDark()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.homing = true
		g.homeFrom = g.position.Offset()
		g.homeSeg = animation.NewSegment(400*time.Millisecond, animation.EaseOut)
		g.position.StopBallistic()
	}
}

func (g *game) toggleDark() {
	g.dark = !g.dark
	bgEnd, cardEnd := lightBackground, lightCard
	tuning := theme.DefaultGlow()
	if g.dark {
		bgEnd, cardEnd = darkBackground, darkCard
		tuning = theme.DarkGlow()
	}
	g.bgTween = animation.TweenColor(g.background, bgEnd)
	g.cardTween = animation.TweenColor(g.cardColor, cardEnd)
	g.fadeSeg = animation.NewSegment(250*time.Millisecond, animation.EaseOut)
	g.edges.SetColor(tuning.Color)
}

func (g *game) stepHome() {
	if !g.homing {
		return
	}
	tween := animation.TweenFloat64(g.homeFrom, 0)
	g.position.SetOffset(tween.Evaluate(g.homeSeg.Eased()))
	if g.homeSeg.Done(0) {
		g.homing = false
	}
}

func (g *game) stepFade() {
	if g.bgTween == nil {
		return
	}
	t := g.fadeSeg.Eased()
	g.background = g.bgTween.Evaluate(t)
	g.cardColor = g.cardTween.Evaluate(t)
	if g.fadeSeg.Done(0) {
		g.bgTween = nil
		g.cardTween = nil
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	defer errors.Recover("glowdemo.Draw")

	if g.canvas == nil {
		g.canvas = newEbitenCanvas(screen)
	} else {
		g.canvas.setTarget(screen)
	}
	canvas := g.canvas

	canvas.Clear(g.background)
	g.drawCards(canvas)

	canvas.Save()
	g.glowAnimating = g.edges.Draw(canvas)
	canvas.Restore()

	mode := "light"
	if g.dark {
		mode = "dark"
	}
	suffix := ""
	if g.glowAnimating {
		suffix = " *"
	}
	ebiten.SetWindowTitle(fmt.Sprintf("overscroll glow (%s) offset=%.0f%s", mode, g.position.Offset(), suffix))
}

func (g *game) drawCards(canvas graphics.Canvas) {
	paint := graphics.DefaultPaint()
	paint.Color = g.cardColor

	offset := g.position.Offset()
	for i := range cardCount {
		left := cardGap + float64(i)*(cardWidth+cardGap) - offset
		if left+cardWidth < 0 || left > screenWidth {
			continue
		}
		canvas.DrawRect(graphics.RectFromLTWH(left, cardTop, cardWidth, cardHeight), paint)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	errors.SetHandler(&errors.LogHandler{Verbose: true})

	tuning, err := theme.LoadOptional(".")
	if err != nil {
		log.Printf("glowdemo: %v (using defaults)", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("overscroll glow")
	if err := ebiten.RunGame(newGame(tuning)); err != nil {
		log.Fatal(err)
	}
}
