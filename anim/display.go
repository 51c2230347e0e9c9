package anim

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Display is the external image-display collaborator. The player owns which
// frame is current; the display owns how it is drawn.
type Display interface {
	ShowFrame(img *ebiten.Image, index int)
}

// NopDisplay discards frames. Useful for tests and headless ticking.
type NopDisplay struct{}

func (NopDisplay) ShowFrame(*ebiten.Image, int) {}

// Rand supplies random start frames. Inject a seeded source for
// deterministic tests.
type Rand interface {
	Intn(n int) int
}

type stdRand struct{}

func (stdRand) Intn(n int) int { return rand.Intn(n) }
