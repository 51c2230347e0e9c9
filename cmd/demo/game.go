package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/frameplay/anim"
	"github.com/milk9111/frameplay/render"
	"github.com/milk9111/frameplay/script"
)

const (
	windowWidth  = 640
	windowHeight = 480

	frameSize = 32
	tickDelta = 1.0 / 60

	maxLogLines = 8
)

// Game shows a character driven by the multi-clip animator: held arrow keys
// loop "walk" (requested every tick, relying on the redundant-restart
// guard), space fires an "attack" one-shot that falls back on its own.
type Game struct {
	animator *anim.Animator
	display  *render.SpriteDisplay
	eventLog []string
}

func NewGame(scriptPath string) (*Game, error) {
	display := render.NewSpriteDisplay()

	idle, err := anim.NewClip("idle", tintedFrames(2, colornames.Steelblue, colornames.Lightsteelblue), 4, true)
	if err != nil {
		return nil, err
	}
	walk, err := anim.NewClip("walk", tintedFrames(4, colornames.Seagreen, colornames.Mediumseagreen, colornames.Springgreen, colornames.Mediumseagreen), 8, true)
	if err != nil {
		return nil, err
	}
	attack, err := anim.NewClip("attack", tintedFrames(3, colornames.Firebrick, colornames.Orangered, colornames.Gold), 10, false)
	if err != nil {
		return nil, err
	}

	animator, err := anim.NewAnimator(idle, []*anim.Clip{walk, attack}, anim.AnimatorConfig{PlayOnActivate: true}, display)
	if err != nil {
		return nil, err
	}

	g := &Game{
		animator: animator,
		display:  display,
	}
	for kind, label := range map[anim.EventKind]string{
		anim.EventStarted:         "started",
		anim.EventFinished:        "finished",
		anim.EventOneShotFinished: "one-shot finished",
	} {
		label := label
		animator.Subscribe(kind, func(ev anim.Event) {
			g.logEvent(fmt.Sprintf("%s %s (frame %d)", ev.Clip, label, ev.Frame))
		})
	}

	if scriptPath != "" {
		rt, err := script.Load(scriptPath)
		if err != nil {
			return nil, err
		}
		rt.Attach(animator)
	}

	animator.Activate()
	return g, nil
}

func (g *Game) logEvent(line string) {
	g.eventLog = append(g.eventLog, line)
	if len(g.eventLog) > maxLogLines {
		g.eventLog = g.eventLog[len(g.eventLog)-maxLogLines:]
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.animator.PlayClipOneShot("attack")
	}

	// Requested every tick on purpose; the animator ignores the redundant
	// requests. Don't stomp a one-shot in progress.
	if !g.animator.IsOneShot() {
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			g.animator.PlayClip("walk")
		} else {
			g.animator.PlayClip("idle")
		}
	}

	g.animator.Update(tickDelta)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(4, 4)
	op.GeoM.Translate(windowWidth/2-frameSize*2, windowHeight/2-frameSize*2)
	g.display.Draw(screen, op)

	status := fmt.Sprintf("clip: %s  frame: %d  playing: %v  one-shot: %v\narrows: walk  space: attack",
		g.animator.CurrentClipName(), g.animator.CurrentFrame(), g.animator.IsPlaying(), g.animator.IsOneShot())
	ebitenutil.DebugPrint(screen, status)
	ebitenutil.DebugPrintAt(screen, strings.Join(g.eventLog, "\n"), 8, windowHeight-maxLogLines*16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// tintedFrames builds solid-color placeholder frames so the demo needs no
// image assets.
func tintedFrames(n int, cols ...color.RGBA) []*ebiten.Image {
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		img := ebiten.NewImage(frameSize, frameSize)
		img.Fill(cols[i%len(cols)])
		frames[i] = img
	}
	return frames
}
