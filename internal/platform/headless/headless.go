// Package headless plays games on an in-memory screen with scripted input.
// Frames are stepped back to back without sleeping, so a run is as fast as
// the simulation and fully reproducible for a given seed and script.
package headless

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-martians/internal/core"
	"github.com/vovakirdan/tui-martians/internal/registry"
)

// ErrBadScript is returned for malformed key scripts.
var ErrBadScript = errors.New("bad key script")

// Script delivers a key action on chosen frames.
type Script struct {
	keys  map[int]core.Action
	frame int
}

var _ core.KeySource = (*Script)(nil)

// ParseScript reads comma separated "frame:key" pairs such as
// "3:space,10:r". Frames count from 1, key names follow core.ActionForKey.
// An empty string yields an empty script.
func ParseScript(s string) (*Script, error) {
	sc := &Script{keys: make(map[int]core.Action)}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		frameText, key, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q has no frame", ErrBadScript, part)
		}
		frame, err := strconv.Atoi(strings.TrimSpace(frameText))
		if err != nil || frame < 1 {
			return nil, fmt.Errorf("%w: %q has invalid frame", ErrBadScript, part)
		}
		a := core.ActionForKey(key)
		if a == core.ActionNone {
			return nil, fmt.Errorf("%w: unknown key %q", ErrBadScript, key)
		}
		if _, dup := sc.keys[frame]; dup {
			return nil, fmt.Errorf("%w: frame %d scripted twice", ErrBadScript, frame)
		}
		sc.keys[frame] = a
	}
	return sc, nil
}

// PollKey advances the script by one frame and returns that frame's key.
func (s *Script) PollKey() (core.Action, bool) {
	s.frame++
	a, ok := s.keys[s.frame]
	return a, ok
}

// Result is the state of a finished headless run. The screen holds the
// frame rendered before the stopping step, as an interactive driver shows it.
type Result struct {
	Screen  *core.Screen   // Last rendered frame
	State   core.GameState // Game state after the last step
	Frames  int            // Steps taken
	Stopped bool           // Whether the game asked to stop
}

// Run resets g for rt and steps it up to frames times, rendering after
// each step. A nil keys source sends no input. It returns early when the
// game stops or ctx is cancelled.
func Run(ctx context.Context, g registry.Game, rt core.RuntimeConfig, frames int, keys core.KeySource) (Result, error) {
	if frames < 0 {
		return Result{}, fmt.Errorf("headless: negative frame count %d", frames)
	}
	if err := g.Reset(rt); err != nil {
		return Result{}, err
	}
	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	res := Result{Screen: screen}
	if err := g.Render(screen); err != nil {
		return res, err
	}

	for res.Frames < frames {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var action core.Action
		if keys != nil {
			action, _ = keys.PollKey()
		}
		step, err := g.Step(core.NewInputFrame(action))
		res.Frames++
		if err != nil {
			return res, err
		}
		if step.Stop {
			res.Stopped = true
			break
		}
		if err := g.Render(screen); err != nil {
			return res, err
		}
	}
	res.State = g.State()
	return res, nil
}
