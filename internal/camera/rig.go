// Package camera implements the orthographic orbit rig: right-drag pans across the ground,
// middle-drag (or modifier + left-drag) orbits around the target, the wheel zooms.
package camera

import (
	"meadow/internal/config"
	"meadow/internal/geom"
	"meadow/internal/input"

	"github.com/chewxy/math32"
)

// polarMargin keeps the camera this many radians away from straight up or straight down.
const polarMargin = 0.1

// Mode is the gesture in progress. Only one gesture runs at a time.
type Mode int

const (
	Idle Mode = iota
	Panning
	Rotating
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	case Rotating:
		return "rotating"
	}
	return "unknown"
}

// Projection is the orthographic view volume in view space, already divided by zoom.
type Projection struct {
	Left, Right, Top, Bottom float32
}

// Width is the visible horizontal extent in world units.
func (p Projection) Width() float32 { return p.Right - p.Left }

// Height is the visible vertical extent in world units.
func (p Projection) Height() float32 { return p.Top - p.Bottom }

// Rig owns the camera position, look-at target and zoom.
type Rig struct {
	Position geom.Vec3
	Target   geom.Vec3

	cfg        config.Camera
	zoom       float32
	mode       Mode
	right      geom.Vec3
	viewW      int
	viewH      int
	projection Projection
}

// NewRig returns a rig at the configured position, aimed at the configured target,
// for a viewport of viewW×viewH pixels.
func NewRig(cfg config.Camera, viewW, viewH int) *Rig {
	r := &Rig{
		Position: geom.FromArray(cfg.Position),
		Target:   geom.FromArray(cfg.Target),
		cfg:      cfg,
		zoom:     geom.Clamp(1, cfg.MinZoom, cfg.MaxZoom),
		right:    geom.V(1, 0, 0),
	}
	r.aim()
	r.Resize(viewW, viewH)
	return r
}

func (r *Rig) Mode() Mode             { return r.mode }
func (r *Rig) Zoom() float32          { return r.zoom }
func (r *Rig) Projection() Projection { return r.projection }
func (r *Rig) Right() geom.Vec3       { return r.right }

// Viewport is the viewport size in pixels.
func (r *Rig) Viewport() (w, h int) { return r.viewW, r.viewH }

// ViewHeight is the visible vertical extent at the current zoom (raylib's orthographic fovy).
func (r *Rig) ViewHeight() float32 { return r.projection.Height() }

// Distance from the camera to its target.
func (r *Rig) Distance() float32 { return r.offset().Length() }

func (r *Rig) offset() geom.Vec3 { return r.Position.Sub(r.Target) }

// Polar is the angle between the world up axis and the target-to-camera vector.
func (r *Rig) Polar() float32 {
	return r.offset().AngleTo(geom.Up)
}

// Azimuth is the angle of the target-to-camera vector around Y, measured from +Z towards +X.
func (r *Rig) Azimuth() float32 {
	o := r.offset()
	return math32.Atan2(o.X, o.Z)
}

// PointerDown starts a gesture if none is running.
// Secondary pans; middle, or primary with a modifier held, orbits.
func (r *Rig) PointerDown(button int, modifier bool) {
	if r.mode != Idle {
		return
	}
	switch {
	case button == input.ButtonSecondary:
		r.mode = Panning
	case button == input.ButtonMiddle:
		r.mode = Rotating
	case button == input.ButtonPrimary && modifier:
		r.mode = Rotating
	}
}

// PointerMove applies the drag delta (pixels) to the running gesture.
func (r *Rig) PointerMove(dx, dy float32) {
	switch r.mode {
	case Panning:
		r.pan(dx, dy)
	case Rotating:
		r.rotate(dx, dy)
	}
}

// PointerUp ends any gesture.
func (r *Rig) PointerUp() {
	r.mode = Idle
}

// Wheel scales zoom by (1 − deltaY × factor) and clamps it to [MinZoom, MaxZoom].
func (r *Rig) Wheel(deltaY float32) {
	r.zoom = geom.Clamp(r.zoom*(1-deltaY*r.cfg.WheelZoomFactor), r.cfg.MinZoom, r.cfg.MaxZoom)
	r.updateProjection()
}

// Resize recomputes the projection for a new viewport, keeping the current zoom.
func (r *Rig) Resize(viewW, viewH int) {
	r.viewW = max(viewW, 1)
	r.viewH = max(viewH, 1)
	r.updateProjection()
}

// Frame runs once per tick: re-aim at the target unless an orbit is in progress
// (rotate already aims after every step).
func (r *Rig) Frame() {
	if r.mode != Rotating {
		r.aim()
	}
}

func (r *Rig) updateProjection() {
	aspect := float32(r.viewW) / float32(r.viewH)
	halfH := r.cfg.FrustumSize / (2 * r.zoom)
	halfW := halfH * aspect
	r.projection = Projection{Left: -halfW, Right: halfW, Top: halfH, Bottom: -halfH}
}

// aim refreshes the right axis from the current look direction.
// Looking straight along Y leaves the previous right axis in place.
func (r *Rig) aim() {
	forward := r.Target.Sub(r.Position).Normalize()
	right := forward.Cross(geom.Up)
	if right.Length() < 1e-6 {
		return
	}
	r.right = right.Normalize()
}

// pan moves position and target together along the ground so the view slides with the pointer.
// One pixel of drag moves the view by one pixel's worth of world units at the current zoom.
func (r *Rig) pan(dx, dy float32) {
	groundUp := r.right.Cross(geom.Up).Normalize()
	perPixelX := r.projection.Width() / float32(r.viewW)
	perPixelY := r.projection.Height() / float32(r.viewH)

	offset := r.right.Scale(-dx * perPixelX).Add(groundUp.Scale(-dy * perPixelY))
	r.Position = r.Position.Add(offset)
	r.Target = r.Target.Add(offset)
}

// rotate orbits the camera around the target. Azimuth is free; a polar step that would
// leave (polarMargin, π − polarMargin) is dropped.
func (r *Rig) rotate(dx, dy float32) {
	azimuth := -dx * r.cfg.RotateSpeed
	polar := -dy * r.cfg.RotateSpeed

	offset := r.offset().RotateAxis(geom.Up, azimuth)
	right := r.right.RotateAxis(geom.Up, azimuth)

	candidate := offset.AngleTo(geom.Up) + polar
	if candidate > polarMargin && candidate < math32.Pi-polarMargin {
		offset = offset.RotateAxis(right, polar)
	}

	r.Position = r.Target.Add(offset)
	r.right = right
	r.aim()
}
