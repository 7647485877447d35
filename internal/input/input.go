// Package input defines the event port between the host window and the simulation.
// Event sources (the raylib platform adapter, or a Replay in tests) push events into a Handler;
// nothing here depends on a window, so the camera rig and motion controller run headless.
package input

// Key identifiers are lower-cased, matching what the host reports.
const (
	KeyW          = "w"
	KeyA          = "a"
	KeyS          = "s"
	KeyD          = "d"
	KeyArrowUp    = "arrowup"
	KeyArrowDown  = "arrowdown"
	KeyArrowLeft  = "arrowleft"
	KeyArrowRight = "arrowright"
	KeyShift      = "shift"
	KeyControl    = "control"
)

// Pointer buttons use DOM numbering.
const (
	ButtonPrimary   = 0
	ButtonMiddle    = 1
	ButtonSecondary = 2
)

// PointerAction is the phase of a pointer event.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
)

// Event is one of KeyEvent, PointerEvent, WheelEvent, ResizeEvent or FocusEvent.
type Event interface {
	dispatch(h Handler)
}

type KeyEvent struct {
	Key  string
	Down bool
}

// PointerEvent carries the movement since the previous pointer event in pixels.
// Modifier is true while shift or control is held.
type PointerEvent struct {
	Action   PointerAction
	Button   int
	DX, DY   float32
	Modifier bool
}

// WheelEvent uses browser sign convention: positive DeltaY scrolls down (zooms out).
type WheelEvent struct {
	DeltaY float32
}

type ResizeEvent struct {
	Width, Height int
}

// FocusEvent reports the window gaining or losing input focus. Key releases that happen
// while unfocused are never seen, so losing focus releases everything.
type FocusEvent struct {
	Focused bool
}

func (e KeyEvent) dispatch(h Handler)     { h.HandleKey(e) }
func (e PointerEvent) dispatch(h Handler) { h.HandlePointer(e) }
func (e WheelEvent) dispatch(h Handler)   { h.HandleWheel(e) }
func (e ResizeEvent) dispatch(h Handler)  { h.HandleResize(e) }
func (e FocusEvent) dispatch(h Handler)   { h.HandleFocus(e) }

// Handler receives events one at a time, between frames.
type Handler interface {
	HandleKey(KeyEvent)
	HandlePointer(PointerEvent)
	HandleWheel(WheelEvent)
	HandleResize(ResizeEvent)
	HandleFocus(FocusEvent)
}

// Source delivers pending events to h. It is called once at the top of every frame.
type Source interface {
	Poll(h Handler)
}

// Dispatch routes e to the matching Handler method.
func Dispatch(h Handler, e Event) {
	if e == nil {
		return
	}
	e.dispatch(h)
}

// Replay is a scripted Source: each Poll delivers the next frame's events.
type Replay struct {
	Frames [][]Event
	next   int
}

// Poll delivers the next batch of events. Once exhausted it delivers nothing.
func (r *Replay) Poll(h Handler) {
	if r.next >= len(r.Frames) {
		return
	}
	for _, e := range r.Frames[r.next] {
		Dispatch(h, e)
	}
	r.next++
}

// Done reports whether every scripted frame has been delivered.
func (r *Replay) Done() bool {
	return r.next >= len(r.Frames)
}
