package anim

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// MinFrameRate is the floor applied to clip frame rates so a frame duration
// is always finite.
const MinFrameRate = 0.01

var (
	ErrEmptyClipName = errors.New("anim: clip name is empty")
	ErrNoFrames      = errors.New("anim: clip has no frames")
)

// Clip is a named, reusable definition of an ordered frame sequence with its
// own frame rate and loop flag. Clips are read-only after construction and
// may be shared across any number of players and animators.
type Clip struct {
	name   string
	frames []*ebiten.Image
	fps    float64
	loop   bool
}

// NewClip creates a clip. The name must be non-empty and frames must contain
// at least one image. A frame rate at or below zero is clamped to
// MinFrameRate. The frame slice is copied.
func NewClip(name string, frames []*ebiten.Image, fps float64, loop bool) (*Clip, error) {
	if name == "" {
		return nil, ErrEmptyClipName
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if fps < MinFrameRate {
		fps = MinFrameRate
	}
	return &Clip{
		name:   name,
		frames: append([]*ebiten.Image(nil), frames...),
		fps:    fps,
		loop:   loop,
	}, nil
}

// Name returns the clip's lookup key.
func (c *Clip) Name() string { return c.name }

// Len returns the number of frames.
func (c *Clip) Len() int { return len(c.frames) }

// Frame returns the image at index i, clamped into the valid range.
func (c *Clip) Frame(i int) *ebiten.Image {
	if len(c.frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.frames) {
		i = len(c.frames) - 1
	}
	return c.frames[i]
}

// FPS returns the clip's frame rate.
func (c *Clip) FPS() float64 { return c.fps }

// Loop reports whether the clip wraps at the end.
func (c *Clip) Loop() bool { return c.loop }

// FrameDuration returns the seconds each frame is shown for.
func (c *Clip) FrameDuration() float64 { return 1 / c.fps }
