package render

import (
	"testing"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestSpriteDisplayShowFrame(t *testing.T) {
	d := NewSpriteDisplay()
	if d.Image() != nil {
		t.Fatal("fresh display should hold no image")
	}
	img := ebiten.NewImage(4, 4)
	d.ShowFrame(img, 3)
	if d.Image() != img || d.Index() != 3 {
		t.Fatalf("display holds %v at %d", d.Image(), d.Index())
	}
}

func TestGraphicDisplayShowFrame(t *testing.T) {
	// widget.NewGraphic panics without an initial image option.
	g := widget.NewGraphic(widget.GraphicOpts.Image(ebiten.NewImage(1, 1)))
	d := NewGraphicDisplay(g)
	img := ebiten.NewImage(4, 4)
	d.ShowFrame(img, 1)
	if g.Image != img {
		t.Fatal("graphic widget image was not swapped")
	}
	if d.Index() != 1 {
		t.Fatalf("index = %d, want 1", d.Index())
	}

	// A nil graphic is inert, not a crash.
	NewGraphicDisplay(nil).ShowFrame(img, 0)
}
