package anim

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerConfig configures a single-sequence Player. The zero value plays
// nothing (FPS 0 never advances); set FPS and usually Loop.
type PlayerConfig struct {
	// FPS is the playback rate in frames per second. Positive values below
	// MinFrameRate are clamped up to it; values at or below zero disable
	// advancement entirely.
	FPS float64
	// Loop wraps playback at the sequence boundary instead of stopping.
	Loop bool
	// Speed multiplies elapsed time. Negative values play backward.
	// Zero defaults to 1.
	Speed float64
	// PlayOnActivate restarts playback whenever Activate is called.
	PlayOnActivate bool
	// RandomStartFrame makes Restart pick a uniformly random frame instead
	// of frame 0.
	RandomStartFrame bool
	// UseUnscaledTime ignores the time scale set via SetTimeScale, so the
	// player keeps advancing through a global pause or slow-motion.
	UseUnscaledTime bool
	// PauseWhenHidden suppresses advancement while SetVisible(false) is in
	// effect. Purely a performance gate; timer and index are preserved.
	PauseWhenHidden bool
	// Rand supplies random start frames. Defaults to math/rand.
	Rand Rand
}

// Player plays one fixed sequence of frames at a configurable rate, forward
// or backward, with loop or stop-and-signal-finished semantics. All methods
// must be called from the goroutine that drives Update.
type Player struct {
	frames []*ebiten.Image
	cfg    PlayerConfig

	display Display
	rng     Rand
	events  *Emitter

	index     int
	timer     float64
	speed     float64
	timeScale float64
	playing   bool
	visible   bool
	disabled  bool
}

// NewPlayer creates a player over the given frame sequence. An empty
// sequence disables the player and logs a diagnostic; every operation on a
// disabled player is a no-op. The initial frame (0, or a random one when
// configured) is shown immediately, whether or not playback starts.
func NewPlayer(frames []*ebiten.Image, cfg PlayerConfig, display Display) *Player {
	if display == nil {
		display = NopDisplay{}
	}
	rng := cfg.Rand
	if rng == nil {
		rng = stdRand{}
	}
	speed := cfg.Speed
	if speed == 0 {
		speed = 1
	}
	if cfg.FPS > 0 && cfg.FPS < MinFrameRate {
		cfg.FPS = MinFrameRate
	}
	p := &Player{
		frames:    append([]*ebiten.Image(nil), frames...),
		cfg:       cfg,
		display:   display,
		rng:       rng,
		events:    NewEmitter(),
		speed:     speed,
		timeScale: 1,
		visible:   true,
	}
	if len(p.frames) == 0 {
		log.Printf("anim: player has no frames, disabling")
		p.disabled = true
		return p
	}
	if cfg.RandomStartFrame {
		p.index = rng.Intn(len(p.frames))
	}
	p.show()
	return p
}

// Events returns the player's emitter. A Player only produces EventFinished.
func (p *Player) Events() *Emitter { return p.events }

// Play resumes playback from the current position.
func (p *Player) Play() {
	if p.disabled {
		return
	}
	p.playing = true
}

// Pause halts playback, preserving position and timer. Idempotent.
func (p *Player) Pause() {
	p.playing = false
}

// Stop halts playback and rewinds to frame 0.
func (p *Player) Stop() {
	p.playing = false
	if p.disabled {
		return
	}
	p.index = 0
	p.timer = 0
	p.show()
}

// Restart rewinds to frame 0 (or a random frame when configured), clears the
// timer, and starts playing.
func (p *Player) Restart() {
	if p.disabled {
		return
	}
	p.index = 0
	if p.cfg.RandomStartFrame {
		p.index = p.rng.Intn(len(p.frames))
	}
	p.timer = 0
	p.show()
	p.Play()
}

// SetFrame jumps to the given frame index, clamped into the valid range, and
// shows it immediately regardless of playing state.
func (p *Player) SetFrame(i int) {
	if p.disabled {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.frames) {
		i = len(p.frames) - 1
	}
	p.index = i
	p.timer = 0
	p.show()
}

// Activate is the host's activation hook. With PlayOnActivate set it calls
// Restart.
func (p *Player) Activate() {
	if p.cfg.PlayOnActivate {
		p.Restart()
	}
}

// SetSpeed changes the playback speed multiplier. Negative plays backward,
// zero suspends advancement.
func (p *Player) SetSpeed(speed float64) { p.speed = speed }

// SetTimeScale propagates the host's global time scale. Ignored when
// UseUnscaledTime is configured.
func (p *Player) SetTimeScale(scale float64) { p.timeScale = scale }

// SetVisible tells the player whether its display is on screen. Only
// meaningful with PauseWhenHidden.
func (p *Player) SetVisible(visible bool) { p.visible = visible }

// Frame returns the current frame index.
func (p *Player) Frame() int { return p.index }

// IsPlaying reports whether the player is advancing.
func (p *Player) IsPlaying() bool { return p.playing }

// Disabled reports whether the player was constructed without frames.
func (p *Player) Disabled() bool { return p.disabled }

// Update advances playback by dt seconds. Call once per host tick. At most
// one frame step happens per call; surplus time carries over in the
// accumulator so the long-run rate stays exact.
func (p *Player) Update(dt float64) {
	if p.disabled || !p.playing || p.cfg.FPS <= 0 {
		return
	}
	if p.cfg.PauseWhenHidden && !p.visible {
		return
	}
	scale := p.speed
	if !p.cfg.UseUnscaledTime {
		scale *= p.timeScale
	}
	if scale == 0 {
		return
	}
	p.timer += dt * math.Abs(scale)
	frameDur := 1 / p.cfg.FPS
	if p.timer < frameDur {
		return
	}
	p.timer -= frameDur
	p.step(scale < 0)
}

// step moves one frame forward or backward, handling wrap and terminal
// clamping.
func (p *Player) step(backward bool) {
	last := len(p.frames) - 1
	next := p.index + 1
	if backward {
		next = p.index - 1
	}
	if next >= 0 && next <= last {
		p.index = next
		p.show()
		return
	}
	if p.cfg.Loop {
		if backward {
			p.index = last
		} else {
			p.index = 0
		}
		p.show()
		return
	}
	// Non-looping: clamp at the boundary, stop, and signal finished once.
	if backward {
		p.index = 0
	} else {
		p.index = last
	}
	p.playing = false
	p.show()
	p.events.Emit(Event{Kind: EventFinished, Frame: p.index})
}

func (p *Player) show() {
	p.display.ShowFrame(p.frames[p.index], p.index)
}
