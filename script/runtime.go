// Package script runs tengo hooks off animator playback events, so clip
// reactions can be authored next to the clip yaml instead of compiled in.
package script

import (
	"fmt"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/frameplay/anim"
)

// Scripts define the four handlers below; each receives a persistent state
// map that survives across events.
const eventDispatchScript = `
if __event == "started" {
	on_started(__state, __clip)
} else if __event == "frame" {
	on_frame(__state, __clip, __frame)
} else if __event == "finished" {
	on_finished(__state, __clip)
} else if __event == "one_shot_finished" {
	on_one_shot_finished(__state, __clip)
}
`

// Runtime is a compiled animation-event script. It subscribes to an
// animator's events and dispatches them into the script's handler
// functions: on_started, on_frame, on_finished, on_one_shot_finished.
// Script errors are logged and never propagated into the tick.
type Runtime struct {
	compiled *tengo.Compiled
	state    *tengo.Map
	subs     []anim.Subscription
}

// New compiles a script. The source must define all four handler functions
// (empty bodies are fine).
func New(src []byte) (*Runtime, error) {
	full := append(append([]byte(nil), src...), []byte("\n"+eventDispatchScript)...)
	s := tengo.NewScript(full)
	globals := []struct {
		name  string
		value any
	}{
		{"__event", ""},
		{"__clip", ""},
		{"__frame", 0},
		{"__state", map[string]any{}},
	}
	for _, g := range globals {
		if err := s.Add(g.name, g.value); err != nil {
			return nil, fmt.Errorf("script: add %s: %w", g.name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	rt := &Runtime{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
	// Prime the globals so handler definitions run once up front.
	if err := rt.dispatch("noop", "", 0); err != nil {
		return nil, fmt.Errorf("script: init: %w", err)
	}
	return rt, nil
}

// Load reads and compiles a script file.
func Load(path string) (*Runtime, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return New(src)
}

// Attach subscribes the runtime to every playback event the animator emits.
func (rt *Runtime) Attach(a *anim.Animator) {
	for _, kind := range []anim.EventKind{
		anim.EventStarted,
		anim.EventFrameStarted,
		anim.EventFinished,
		anim.EventOneShotFinished,
	} {
		rt.subs = append(rt.subs, a.Subscribe(kind, rt.Handle))
	}
}

// Detach removes the subscriptions added by Attach.
func (rt *Runtime) Detach(a *anim.Animator) {
	for _, sub := range rt.subs {
		a.Unsubscribe(sub)
	}
	rt.subs = nil
}

// Handle dispatches one playback event into the script.
func (rt *Runtime) Handle(ev anim.Event) {
	name := ""
	switch ev.Kind {
	case anim.EventStarted:
		name = "started"
	case anim.EventFrameStarted:
		name = "frame"
	case anim.EventFinished:
		name = "finished"
	case anim.EventOneShotFinished:
		name = "one_shot_finished"
	default:
		return
	}
	if err := rt.dispatch(name, ev.Clip, ev.Frame); err != nil {
		log.Printf("script: %s handler: %v", name, err)
	}
}

// Get returns a script global, for hosts that read results back out.
func (rt *Runtime) Get(name string) *tengo.Variable {
	return rt.compiled.Get(name)
}

func (rt *Runtime) dispatch(event, clip string, frame int) error {
	if err := rt.compiled.Set("__event", event); err != nil {
		return err
	}
	if err := rt.compiled.Set("__clip", clip); err != nil {
		return err
	}
	if err := rt.compiled.Set("__frame", frame); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	return rt.compiled.Run()
}
