package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/frameplay/anim"
	"github.com/milk9111/frameplay/clips"
	"github.com/milk9111/frameplay/render"
)

const (
	windowWidth  = 800
	windowHeight = 600

	tickDelta = 1.0 / 60
)

type Game struct {
	specPath  string
	sheetPath string
	scale     float64

	animator *anim.Animator
	display  *render.SpriteDisplay
	names    []string
	sel      int

	ui       *ebitenui.UI
	watcher  *clips.Watcher
	reloadCh chan string
	paused   bool
	status   string
}

func NewGame(specPath, sheetPath string, scale float64, watch bool) (*Game, error) {
	g := &Game{
		specPath:  specPath,
		sheetPath: sheetPath,
		scale:     scale,
	}
	if err := g.reload(); err != nil {
		return nil, err
	}
	g.ui = buildUI(g)

	if watch {
		// The watcher calls back on its own goroutine; park the path in a
		// single-slot channel and reload from Update.
		g.reloadCh = make(chan string, 1)
		w, err := clips.Watch(filepath.Dir(specPath), func(path string) {
			select {
			case g.reloadCh <- path:
			default:
			}
		})
		if err != nil {
			return nil, fmt.Errorf("preview: watch: %w", err)
		}
		g.watcher = w
	}
	return g, nil
}

// reload reads the library yaml and rebuilds the animator. The previous
// animator keeps running if the new file is broken.
func (g *Game) reload() error {
	spec, err := clips.LoadLibrarySpec(g.specPath)
	if err != nil {
		return err
	}

	sheetPath := g.sheetPath
	if sheetPath == "" {
		sheetPath = filepath.Join(filepath.Dir(g.specPath), spec.Sheet)
	}
	sheet, _, err := ebitenutil.NewImageFromFile(sheetPath)
	if err != nil {
		return fmt.Errorf("preview: load sheet %s: %w", sheetPath, err)
	}

	def, rest, err := clips.Build(spec, sheet)
	if err != nil {
		return err
	}

	display := render.NewSpriteDisplay()
	animator, err := anim.NewAnimator(def, rest, anim.AnimatorConfig{PlayOnActivate: true}, display)
	if err != nil {
		return err
	}
	animator.Subscribe(anim.EventFinished, func(ev anim.Event) {
		g.status = fmt.Sprintf("%s finished", ev.Clip)
	})
	animator.Subscribe(anim.EventOneShotFinished, func(ev anim.Event) {
		g.status = fmt.Sprintf("%s one-shot finished", ev.Clip)
	})

	names := []string{def.Name()}
	for _, c := range rest {
		names = append(names, c.Name())
	}

	g.display = display
	g.animator = animator
	g.names = names
	if g.sel >= len(names) {
		g.sel = 0
	}
	g.status = fmt.Sprintf("loaded %d clips", len(names))
	animator.Activate()
	if g.sel != 0 {
		animator.PlayClip(names[g.sel])
	}
	return nil
}

func (g *Game) selectClip(i int) {
	if len(g.names) == 0 {
		return
	}
	g.sel = ((i % len(g.names)) + len(g.names)) % len(g.names)
	g.animator.PlayClip(g.names[g.sel])
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.reloadCh != nil {
		select {
		case path := <-g.reloadCh:
			if err := g.reload(); err != nil {
				log.Printf("preview: reload after %s: %v", path, err)
				g.status = "reload failed, see log"
			}
		default:
		}
	}

	g.ui.Update()
	if !g.paused {
		g.animator.Update(tickDelta)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate(windowWidth/2, windowHeight/2-100)
	g.display.Draw(screen, op)

	info := fmt.Sprintf("clip: %s  frame: %d  playing: %v  paused: %v\n%s",
		g.animator.CurrentClipName(), g.animator.CurrentFrame(), g.animator.IsPlaying(), g.paused, g.status)
	ebitenutil.DebugPrint(screen, info)

	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
