// Package app holds the meadow's whole runtime state and the per-frame update.
// It has no window dependency: events arrive through input.Source and rendering reads Frame().
package app

import (
	"math/rand"
	"time"

	"meadow/internal/assets"
	"meadow/internal/camera"
	"meadow/internal/config"
	"meadow/internal/geom"
	"meadow/internal/input"
	"meadow/internal/logger"
	"meadow/internal/player"
	"meadow/internal/world"
)

// App is the explicit application state shared by event handlers and the frame update.
// Everything is touched from the frame loop's goroutine only.
type App struct {
	Config config.Config
	Log    *logger.Logger
	Assets []assets.Asset
	Stats  world.Stats
	Player *player.Controller
	Camera *camera.Rig
	Keys   *input.Keys

	avatar assets.Asset
	seed   int64
}

// Frame is what the renderer needs for one frame. Assets is shared, not copied; it is never mutated.
type Frame struct {
	Assets         []assets.Asset
	Player         assets.Asset
	CameraPosition geom.Vec3
	CameraTarget   geom.Vec3
	ViewHeight     float32
}

// New builds the world and the player/camera state for a viewW×viewH viewport.
func New(cfg config.Config, log *logger.Logger, viewW, viewH int) *App {
	a := &App{
		Config: cfg,
		Log:    log,
		Player: player.NewController(cfg.Player, cfg.World.Size),
		Camera: camera.NewRig(cfg.Camera, viewW, viewH),
		Keys:   input.NewKeys(),
		avatar: assets.NewPlayer(),
	}
	a.populate()
	return a
}

// Seed is the seed the current world was generated from.
func (a *App) Seed() int64 {
	return a.seed
}

func (a *App) populate() {
	a.seed = a.Config.World.Seed
	if a.seed == 0 {
		a.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(a.seed))
	a.Assets, a.Stats = world.Populate(rng, a.Config.World, a.Log)
	if a.Log != nil {
		a.Log.Logf("World seed %d: %d trees, %d rocks, %d flowers (%d samples on the path)",
			a.seed, a.Stats.Trees, a.Stats.Rocks, a.Stats.Flowers, a.Stats.Rejected)
	}
}

// Rebuild applies a reloaded config: the world is repopulated and movement bounds updated.
// The player keeps its pose and the camera keeps its current view.
func (a *App) Rebuild(cfg config.Config) {
	a.Config = cfg
	a.Player.SetWorldSize(cfg.World.Size)
	a.populate()
}

// Reload re-reads the config file at path and rebuilds from it. On any error the running
// config and world are kept. A non-zero seed replaces the file's world seed.
func (a *App) Reload(path string, seed int64) error {
	cfg, err := config.Reload(path, a.Config)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.World.Seed = seed
	}
	a.Rebuild(cfg)
	return nil
}

// Tick runs one frame: deliver pending events, then move the player from a single key
// snapshot and let the camera re-aim.
func (a *App) Tick(src input.Source, dt float32) {
	if src != nil {
		src.Poll(a)
	}
	a.Update(dt)
}

// Update advances the simulation by dt seconds.
func (a *App) Update(dt float32) {
	keys, err := a.Keys.Snapshot()
	if err != nil && a.Log != nil {
		a.Log.Logf("Input: %v", err)
	}
	a.Player.Update(keys, dt)
	a.Camera.Frame()
}

// Frame returns the renderable view of the current state.
func (a *App) Frame() Frame {
	avatar := a.avatar
	avatar.Position = a.Player.Pose.Position
	avatar.Yaw = a.Player.Pose.Facing
	return Frame{
		Assets:         a.Assets,
		Player:         avatar,
		CameraPosition: a.Camera.Position,
		CameraTarget:   a.Camera.Target,
		ViewHeight:     a.Camera.ViewHeight(),
	}
}

func (a *App) HandleKey(e input.KeyEvent) {
	a.Keys.Set(e.Key, e.Down)
}

func (a *App) HandlePointer(e input.PointerEvent) {
	switch e.Action {
	case input.PointerDown:
		a.Camera.PointerDown(e.Button, e.Modifier)
	case input.PointerMove:
		a.Camera.PointerMove(e.DX, e.DY)
	case input.PointerUp:
		a.Camera.PointerUp()
	}
}

func (a *App) HandleWheel(e input.WheelEvent) {
	a.Camera.Wheel(e.DeltaY)
}

func (a *App) HandleResize(e input.ResizeEvent) {
	a.Camera.Resize(e.Width, e.Height)
}

// HandleFocus releases held keys and ends any drag when the window loses focus.
func (a *App) HandleFocus(e input.FocusEvent) {
	if e.Focused {
		return
	}
	a.Keys.Reset()
	a.Camera.PointerUp()
}
