package anim

import (
	"errors"
	"log"
)

var (
	ErrNilDefaultClip = errors.New("anim: default clip is nil")
	ErrNilClip        = errors.New("anim: clip is nil")
)

// AnimatorConfig configures an Animator.
type AnimatorConfig struct {
	// PlayOnActivate starts the default clip looping when Activate runs.
	PlayOnActivate bool
	// PauseWhenHidden suppresses advancement of looping clips while the
	// display is off screen. One-shot clips always keep advancing so
	// hit-reactions and attacks are never silently skipped.
	PauseWhenHidden bool
	// Speed multiplies elapsed time for every clip. Zero defaults to 1.
	Speed float64
}

// Animator owns a library of named clips, switches between them by name, and
// supports transient one-shot playback that automatically falls back to the
// previously playing looping clip when it completes. All mutation must stay
// on the goroutine that drives Update.
type Animator struct {
	registry   map[string]*Clip
	def        *Clip
	current    *Clip
	returnClip *Clip

	display Display
	events  *Emitter
	cfg     AnimatorConfig
	speed   float64

	index   int
	timer   float64
	playing bool
	oneShot bool
	visible bool
}

// NewAnimator builds an animator from a designated default clip plus any
// additional clips. The registry is keyed by clip name; the default clip's
// name is always present. The default clip is shown at frame 0 without
// playing until Activate or an explicit PlayClip.
func NewAnimator(def *Clip, clips []*Clip, cfg AnimatorConfig, display Display) (*Animator, error) {
	if def == nil {
		return nil, ErrNilDefaultClip
	}
	if display == nil {
		display = NopDisplay{}
	}
	speed := cfg.Speed
	if speed == 0 {
		speed = 1
	}
	registry := make(map[string]*Clip, len(clips)+1)
	registry[def.Name()] = def
	for _, c := range clips {
		if c == nil {
			return nil, ErrNilClip
		}
		registry[c.Name()] = c
	}
	a := &Animator{
		registry:   registry,
		def:        def,
		current:    def,
		returnClip: def,
		display:    display,
		events:     NewEmitter(),
		cfg:        cfg,
		speed:      speed,
		visible:    true,
	}
	a.show()
	return a, nil
}

// Events returns the animator's emitter.
func (a *Animator) Events() *Emitter { return a.events }

// Subscribe registers a listener for one event kind.
func (a *Animator) Subscribe(kind EventKind, fn Listener) Subscription {
	return a.events.Subscribe(kind, fn)
}

// Unsubscribe removes a listener registered via Subscribe.
func (a *Animator) Unsubscribe(s Subscription) { a.events.Unsubscribe(s) }

// PlayClip looks up a clip by name and plays it looping per its own loop
// flag. Requesting the clip that is already current is a no-op, so callers
// may invoke PlayClip every tick from input state. Unknown names log and
// leave the state unchanged.
func (a *Animator) PlayClip(name string) {
	a.play(name, false, false)
}

// PlayClipOneShot plays a clip exactly once, overriding its loop flag, then
// automatically returns to the clip most recently played via PlayClip (or
// the default clip if none has). Unlike PlayClip it always restarts, even if
// the same one-shot is already playing.
func (a *Animator) PlayClipOneShot(name string) {
	a.play(name, true, true)
}

func (a *Animator) play(name string, oneShot, restart bool) {
	clip, ok := a.registry[name]
	if !ok {
		log.Printf("anim: unknown clip %q", name)
		return
	}
	// Redundant-restart guard: only while the clip is actually advancing,
	// so a stopped animator can still start its current clip.
	if !restart && a.playing && a.current != nil && a.current.Name() == name {
		return
	}
	a.current = clip
	a.index = 0
	a.timer = 0
	a.oneShot = oneShot
	if !oneShot {
		a.returnClip = clip
	}
	a.playing = true
	a.show()
	a.events.Emit(Event{Kind: EventStarted, Clip: clip.Name()})
	a.events.Emit(Event{Kind: EventFrameStarted, Clip: clip.Name(), Frame: 0})
}

// Stop unconditionally returns to the default clip at frame 0, not playing.
// The default clip is shown but does not advance.
func (a *Animator) Stop() {
	a.current = a.def
	a.returnClip = a.def
	a.oneShot = false
	a.index = 0
	a.timer = 0
	a.playing = false
	a.show()
}

// SetDefaultClip replaces the registry entry under the old default's name
// and changes which clip Stop and Activate use. The currently playing clip
// is unaffected.
func (a *Animator) SetDefaultClip(clip *Clip) {
	if clip == nil {
		log.Printf("anim: SetDefaultClip called with nil clip")
		return
	}
	delete(a.registry, a.def.Name())
	a.registry[clip.Name()] = clip
	if a.returnClip == a.def {
		a.returnClip = clip
	}
	a.def = clip
}

// Activate is the host's activation hook. With PlayOnActivate set it starts
// the default clip looping.
func (a *Animator) Activate() {
	if a.cfg.PlayOnActivate {
		a.play(a.def.Name(), false, true)
	}
}

// Deactivate is the host's deactivation hook. Deactivating mid-one-shot
// fires the finished notifications immediately, as an implicit early
// termination, so listeners never wait for a one-shot that will not resume.
// The return clip is restored at frame 0 but left paused.
func (a *Animator) Deactivate() {
	if a.playing && a.oneShot {
		finished := a.current
		a.playing = false
		a.events.Emit(Event{Kind: EventFinished, Clip: finished.Name(), Frame: a.index})
		a.events.Emit(Event{Kind: EventOneShotFinished, Clip: finished.Name(), Frame: a.index})
		ret := a.returnClip
		if ret == nil {
			ret = a.def
		}
		a.current = ret
		a.oneShot = false
		a.index = 0
		a.timer = 0
		a.show()
		return
	}
	a.playing = false
}

// SetVisible tells the animator whether its display is on screen. Only
// meaningful with PauseWhenHidden; one-shots ignore it.
func (a *Animator) SetVisible(visible bool) { a.visible = visible }

// SetSpeed changes the playback speed multiplier.
func (a *Animator) SetSpeed(speed float64) { a.speed = speed }

// CurrentClipName returns the current clip's name.
func (a *Animator) CurrentClipName() string {
	if a.current == nil {
		return ""
	}
	return a.current.Name()
}

// CurrentFrame returns the current frame index.
func (a *Animator) CurrentFrame() int { return a.index }

// IsPlaying reports whether the animator is advancing.
func (a *Animator) IsPlaying() bool { return a.playing }

// IsOneShot reports whether the current clip is playing as a one-shot.
func (a *Animator) IsOneShot() bool { return a.oneShot }

// Update advances the current clip by dt seconds. At most one frame step
// happens per call; surplus time carries over in the accumulator.
func (a *Animator) Update(dt float64) {
	if !a.playing || a.current == nil {
		return
	}
	if a.cfg.PauseWhenHidden && !a.visible && !a.oneShot {
		return
	}
	a.timer += dt * a.speed
	frameDur := a.current.FrameDuration()
	if a.timer < frameDur {
		return
	}
	a.timer -= frameDur

	last := a.current.Len() - 1
	if a.index < last {
		a.index++
		a.show()
		a.events.Emit(Event{Kind: EventFrameStarted, Clip: a.current.Name(), Frame: a.index})
		return
	}
	if a.current.Loop() && !a.oneShot {
		a.index = 0
		a.show()
		a.events.Emit(Event{Kind: EventFrameStarted, Clip: a.current.Name(), Frame: 0})
		return
	}

	// Terminal advance: clamp at the last frame and stop.
	a.playing = false
	finished := a.current
	a.events.Emit(Event{Kind: EventFinished, Clip: finished.Name(), Frame: a.index})
	if a.oneShot {
		a.events.Emit(Event{Kind: EventOneShotFinished, Clip: finished.Name(), Frame: a.index})
		ret := a.returnClip
		if ret == nil {
			ret = a.def
		}
		a.oneShot = false
		// Fall forward into the loop clip; never linger in a finished
		// one-shot state.
		a.play(ret.Name(), false, true)
	}
}

func (a *Animator) show() {
	a.display.ShowFrame(a.current.Frame(a.index), a.index)
}
