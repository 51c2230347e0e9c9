package script

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/frameplay/anim"
)

const countingScript = `
on_started := func(state, clip) {
	state.last_started = clip
}
on_frame := func(state, clip, frame) {
	if is_undefined(state.frames) {
		state.frames = 0
	}
	state.frames += 1
}
on_finished := func(state, clip) {
	state.last_finished = clip
}
on_one_shot_finished := func(state, clip) {
	if is_undefined(state.one_shots) {
		state.one_shots = 0
	}
	state.one_shots += 1
}
`

func testClip(t *testing.T, name string, frames int, loop bool) *anim.Clip {
	t.Helper()
	imgs := make([]*ebiten.Image, frames)
	for i := range imgs {
		imgs[i] = ebiten.NewImage(2, 2)
	}
	c, err := anim.NewClip(name, imgs, 10, loop)
	if err != nil {
		t.Fatalf("NewClip(%q): %v", name, err)
	}
	return c
}

func TestRuntimeRejectsMissingHandlers(t *testing.T) {
	if _, err := New([]byte(`x := 1`)); err == nil {
		t.Fatal("a script without the handler functions should fail to compile")
	}
}

func TestRuntimeHandlesAnimatorEvents(t *testing.T) {
	rt, err := New([]byte(countingScript))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	idle := testClip(t, "idle", 2, true)
	attack := testClip(t, "attack", 2, true)
	a, err := anim.NewAnimator(idle, []*anim.Clip{attack}, anim.AnimatorConfig{}, nil)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	rt.Attach(a)

	a.PlayClip("idle")
	a.PlayClipOneShot("attack")
	a.Update(0.1) // attack frame 1
	a.Update(0.1) // terminal advance, fall back to idle

	state := rt.Get("__state").Map()
	if state["last_started"] != "idle" {
		t.Fatalf("last_started = %v, want idle (fallback restart)", state["last_started"])
	}
	if state["last_finished"] != "attack" {
		t.Fatalf("last_finished = %v, want attack", state["last_finished"])
	}
	if state["one_shots"] != int64(1) {
		t.Fatalf("one_shots = %v, want 1", state["one_shots"])
	}
	// idle(0), attack(0), attack(1), idle(0) after fallback.
	if state["frames"] != int64(4) {
		t.Fatalf("frames = %v, want 4", state["frames"])
	}
}

func TestDetachStopsDelivery(t *testing.T) {
	rt, err := New([]byte(countingScript))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	idle := testClip(t, "idle", 2, true)
	a, err := anim.NewAnimator(idle, nil, anim.AnimatorConfig{}, nil)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}

	rt.Attach(a)
	a.PlayClip("idle")
	rt.Detach(a)
	a.Update(0.1)

	state := rt.Get("__state").Map()
	if state["frames"] != int64(1) {
		t.Fatalf("frames = %v, want 1 (only the pre-detach frame)", state["frames"])
	}
}
