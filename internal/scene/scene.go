package scene

import (
	"image/color"

	"meadow/internal/app"
	"meadow/internal/config"
	"meadow/internal/geom"
	"meadow/internal/palette"
	"meadow/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	// pathLift keeps the path above the ground plane so the two don't z-fight.
	pathLift = 0.01
)

// sunPosition is where the directional light shines from; it points at the origin.
var sunPosition = geom.V(10, 20, 5)

// Scene draws one app.Frame with an orthographic camera. The camera pose is copied
// from the frame every Draw; Scene never moves it on its own.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	registry  *primitives.Registry
	ground    color.RGBA
	path      color.RGBA
	worldSize float32
	pathWidth float32
}

// New returns a scene for cfg. Meshes are not created until the first Draw.
func New(cfg config.Config) *Scene {
	s := &Scene{registry: primitives.NewRegistry()}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Projection = rl.CameraOrthographic
	s.Apply(cfg)
	return s
}

// Apply takes colours, world size and debug toggles from a (re)loaded config.
func (s *Scene) Apply(cfg config.Config) {
	s.ground = palette.MustParse(cfg.Colors.Ground)
	s.path = palette.MustParse(cfg.Colors.Path)
	s.worldSize = cfg.World.Size
	s.pathWidth = cfg.World.PathWidth
	s.GridVisible = cfg.Debug.GridVisible
}

// Draw renders the frame in 3D. Call after ClearBackground and before any 2D overlay.
func (s *Scene) Draw(f app.Frame) {
	s.Camera.Position = rl.NewVector3(f.CameraPosition.X, f.CameraPosition.Y, f.CameraPosition.Z)
	s.Camera.Target = rl.NewVector3(f.CameraTarget.X, f.CameraTarget.Y, f.CameraTarget.Z)
	// For an orthographic camera raylib reads Fovy as the view height in world units.
	s.Camera.Fovy = f.ViewHeight

	s.registry.SetSun(sunPosition.Normalize().Array())

	rl.BeginMode3D(s.Camera)
	s.registry.DrawPlane(geom.Vec3{}, s.worldSize, s.worldSize, s.ground)
	s.registry.DrawPlane(geom.V(0, pathLift, 0), s.worldSize, s.pathWidth, s.path)
	if s.GridVisible {
		drawEditorGrid(s.worldSize / 2)
	}
	for _, a := range f.Assets {
		s.registry.DrawAsset(a)
	}
	s.registry.DrawAsset(f.Player)
	rl.EndMode3D()
}

// Unload frees the meshes and shader. Call before the window closes.
func (s *Scene) Unload() {
	s.registry.Unload()
}

// drawEditorGrid draws major/minor lines over the world square plus axis lines through the origin.
// Lines sit just above the path so they stay visible.
func drawEditorGrid(half float32) {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	extent := int(half)
	y := float32(2 * pathLift)
	var start, end rl.Vector3
	for i := -extent; i <= extent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), y, -half
		end.X, end.Y, end.Z = float32(i), y, half
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -half, y, float32(i)
		end.X, end.Y, end.Z = half, y, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-half, y, 0), rl.NewVector3(half, y, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, 0, 0), rl.NewVector3(0, half, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, y, -half), rl.NewVector3(0, y, half), axisZ)
}
