package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteDisplay is an anim.Display backed by a 2D sprite. It holds the
// frame the player last showed and draws it on demand.
type SpriteDisplay struct {
	img   *ebiten.Image
	index int
}

// NewSpriteDisplay creates an empty sprite display.
func NewSpriteDisplay() *SpriteDisplay {
	return &SpriteDisplay{}
}

// ShowFrame implements anim.Display.
func (d *SpriteDisplay) ShowFrame(img *ebiten.Image, index int) {
	d.img = img
	d.index = index
}

// Image returns the currently shown frame, or nil before the first
// ShowFrame.
func (d *SpriteDisplay) Image() *ebiten.Image { return d.img }

// Index returns the index of the currently shown frame.
func (d *SpriteDisplay) Index() int { return d.index }

// Draw draws the current frame. If op is nil a zero DrawImageOptions is
// used. The filter is forced to nearest so pixel art stays crisp.
func (d *SpriteDisplay) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	if d.img == nil {
		return
	}
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(d.img, &dop)
}
