package render

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// GraphicDisplay is an anim.Display that animates an ebitenui graphic
// widget, for UI image elements rather than world sprites.
type GraphicDisplay struct {
	graphic *widget.Graphic
	index   int
}

// NewGraphicDisplay wraps a graphic widget. A nil graphic yields an inert
// display.
func NewGraphicDisplay(graphic *widget.Graphic) *GraphicDisplay {
	return &GraphicDisplay{graphic: graphic}
}

// ShowFrame implements anim.Display by swapping the widget's image.
func (d *GraphicDisplay) ShowFrame(img *ebiten.Image, index int) {
	d.index = index
	if d.graphic == nil {
		return
	}
	d.graphic.Image = img
}

// Index returns the index of the currently shown frame.
func (d *GraphicDisplay) Index() int { return d.index }
