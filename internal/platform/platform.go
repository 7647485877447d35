// Package platform reads raylib's per-frame input state and turns it into input events.
package platform

import (
	"meadow/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// wheelPixelsPerNotch converts raylib wheel notches to browser-style DeltaY.
const wheelPixelsPerNotch = 100

// keyBinding maps one tracked key to the raylib keys that report it (either side for modifiers).
type keyBinding struct {
	name string
	keys []int32
}

var trackedKeys = []keyBinding{
	{input.KeyW, []int32{rl.KeyW}},
	{input.KeyA, []int32{rl.KeyA}},
	{input.KeyS, []int32{rl.KeyS}},
	{input.KeyD, []int32{rl.KeyD}},
	{input.KeyArrowUp, []int32{rl.KeyUp}},
	{input.KeyArrowDown, []int32{rl.KeyDown}},
	{input.KeyArrowLeft, []int32{rl.KeyLeft}},
	{input.KeyArrowRight, []int32{rl.KeyRight}},
	{input.KeyShift, []int32{rl.KeyLeftShift, rl.KeyRightShift}},
	{input.KeyControl, []int32{rl.KeyLeftControl, rl.KeyRightControl}},
}

// buttons pairs DOM button numbers with raylib's.
var buttons = []struct {
	dom int
	rl  rl.MouseButton
}{
	{input.ButtonPrimary, rl.MouseButtonLeft},
	{input.ButtonMiddle, rl.MouseButtonMiddle},
	{input.ButtonSecondary, rl.MouseButtonRight},
}

// Source is the raylib input.Source. Key events are edges: one event when a key's state changes.
type Source struct {
	down          map[string]bool
	width, height int
	unfocused     bool
}

// NewSource must be called after the window is open so the initial size is known.
func NewSource() *Source {
	return &Source{
		down:   make(map[string]bool, len(trackedKeys)),
		width:  rl.GetScreenWidth(),
		height: rl.GetScreenHeight(),
	}
}

// Size is the window size last reported to the handler.
func (s *Source) Size() (width, height int) {
	return s.width, s.height
}

// Poll delivers this frame's events: resize, focus, keys, pointer presses, movement, releases, wheel.
func (s *Source) Poll(h input.Handler) {
	if rl.IsWindowResized() {
		w, ht := rl.GetScreenWidth(), rl.GetScreenHeight()
		if w != s.width || ht != s.height {
			s.width, s.height = w, ht
			h.HandleResize(input.ResizeEvent{Width: w, Height: ht})
		}
	}

	if focused := rl.IsWindowFocused(); focused == s.unfocused {
		s.unfocused = !focused
		h.HandleFocus(input.FocusEvent{Focused: focused})
		if !focused {
			// The handler has released everything; report fresh presses after refocus.
			clear(s.down)
			return
		}
	}
	if s.unfocused {
		return
	}

	for _, b := range trackedKeys {
		isDown := anyDown(b.keys)
		if isDown != s.down[b.name] {
			s.down[b.name] = isDown
			h.HandleKey(input.KeyEvent{Key: b.name, Down: isDown})
		}
	}

	modifier := s.down[input.KeyShift] || s.down[input.KeyControl]
	for _, b := range buttons {
		if rl.IsMouseButtonPressed(b.rl) {
			h.HandlePointer(input.PointerEvent{Action: input.PointerDown, Button: b.dom, Modifier: modifier})
		}
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		h.HandlePointer(input.PointerEvent{Action: input.PointerMove, DX: d.X, DY: d.Y, Modifier: modifier})
	}
	for _, b := range buttons {
		if rl.IsMouseButtonReleased(b.rl) {
			h.HandlePointer(input.PointerEvent{Action: input.PointerUp, Button: b.dom, Modifier: modifier})
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		h.HandleWheel(input.WheelEvent{DeltaY: -wheel * wheelPixelsPerNotch})
	}
}

func anyDown(keys []int32) bool {
	for _, k := range keys {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}
