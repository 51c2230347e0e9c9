package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Slice cuts a spritesheet into individual frames. Frames are laid out
// left-to-right, top-to-bottom. frameCount <= 0 reads every whole frame the
// sheet holds; counts beyond the sheet are clamped. Returns nil when the
// sheet or frame size is unusable.
func Slice(sheet *ebiten.Image, frameW, frameH, frameCount int) []*ebiten.Image {
	return sliceFrom(sheet, frameW, frameH, 0, frameCount)
}

// SliceRow cuts frames starting at the given row (0-based), reading
// left-to-right and continuing onto subsequent rows if frameCount exceeds
// the row length.
func SliceRow(sheet *ebiten.Image, frameW, frameH, row, frameCount int) []*ebiten.Image {
	if row < 0 {
		row = 0
	}
	if sheet == nil || frameW <= 0 {
		return nil
	}
	start := row * (sheet.Bounds().Dx() / frameW)
	return sliceFrom(sheet, frameW, frameH, start, frameCount)
}

func sliceFrom(sheet *ebiten.Image, frameW, frameH, start, frameCount int) []*ebiten.Image {
	if sheet == nil || frameW <= 0 || frameH <= 0 {
		return nil
	}
	bounds := sheet.Bounds()
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	maxFrames := cols*rows - start
	if maxFrames <= 0 || cols <= 0 {
		return nil
	}
	if frameCount <= 0 || frameCount > maxFrames {
		frameCount = maxFrames
	}
	frames := make([]*ebiten.Image, frameCount)
	for i := 0; i < frameCount; i++ {
		idx := start + i
		col := idx % cols
		row := idx / cols
		sx := bounds.Min.X + col*frameW
		sy := bounds.Min.Y + row*frameH
		r := image.Rect(sx, sy, sx+frameW, sy+frameH)
		frames[i] = ebiten.NewImageFromImage(sheet.SubImage(r))
	}
	return frames
}
