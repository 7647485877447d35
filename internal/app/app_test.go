package app

import (
	"os"
	"path/filepath"
	"testing"

	"meadow/internal/camera"
	"meadow/internal/config"
	"meadow/internal/geom"
	"meadow/internal/input"
	"meadow/internal/logger"
	"meadow/internal/world"

	"github.com/chewxy/math32"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.World.Size = 40
	cfg.World.Seed = 11
	return cfg
}

func TestNewPopulatesWorld(t *testing.T) {
	log := logger.New("")
	a := New(testConfig(), log, 800, 600)

	if a.Stats.Attempts != world.AssetCount(40, 0.08) {
		t.Fatalf("expected %d attempts, got %d", world.AssetCount(40, 0.08), a.Stats.Attempts)
	}
	if len(a.Assets) != a.Stats.Placed || a.Stats.Placed == 0 {
		t.Fatalf("expected placed assets, got %+v", a.Stats)
	}
	if a.Seed() != 11 {
		t.Fatalf("expected configured seed, got %d", a.Seed())
	}
	if len(log.Lines()) < 2 {
		t.Fatalf("population should be logged")
	}
}

func TestSameSeedSameWorld(t *testing.T) {
	a := New(testConfig(), nil, 800, 600)
	b := New(testConfig(), nil, 800, 600)
	if len(a.Assets) != len(b.Assets) {
		t.Fatalf("same seed should give the same count")
	}
	for i := range a.Assets {
		if a.Assets[i].Position != b.Assets[i].Position || a.Assets[i].Kind != b.Assets[i].Kind {
			t.Fatalf("asset %d differs between runs", i)
		}
	}
}

func TestScriptedSession(t *testing.T) {
	a := New(testConfig(), nil, 800, 600)
	start := a.Player.Pose.Position

	script := &input.Replay{Frames: [][]input.Event{
		{input.KeyEvent{Key: "D", Down: true}, input.KeyEvent{Key: input.KeyW, Down: true}},
		{},
		{input.KeyEvent{Key: "d", Down: false}, input.KeyEvent{Key: input.KeyW, Down: false}},
		{},
	}}
	for !script.Done() {
		a.Tick(script, 0.1)
	}

	// Two frames with d+w held at speed 5, dt 0.1.
	want := start.Add(geom.V(1, 0, -1))
	if !a.Player.Pose.Position.ApproxEqual(want, 1e-4) {
		t.Fatalf("expected player at %v, got %v", want, a.Player.Pose.Position)
	}
	if math32.Abs(a.Player.Pose.Facing-3*math32.Pi/4) > 1e-5 {
		t.Fatalf("expected facing 3π/4, got %v", a.Player.Pose.Facing)
	}

	f := a.Frame()
	if f.Player.Position != a.Player.Pose.Position || f.Player.Yaw != a.Player.Pose.Facing {
		t.Fatalf("frame should carry the posed avatar")
	}
}

func TestScriptedCameraGestures(t *testing.T) {
	a := New(testConfig(), nil, 800, 600)
	target := a.Camera.Target

	script := &input.Replay{Frames: [][]input.Event{
		{input.PointerEvent{Action: input.PointerDown, Button: input.ButtonSecondary}},
		{input.PointerEvent{Action: input.PointerMove, DX: 30, DY: 10}},
		{input.PointerEvent{Action: input.PointerUp, Button: input.ButtonSecondary}},
		{input.WheelEvent{DeltaY: 100}},
		{input.ResizeEvent{Width: 1024, Height: 768}},
		{input.PointerEvent{Action: input.PointerDown, Button: input.ButtonPrimary, Modifier: true}},
	}}
	for !script.Done() {
		a.Tick(script, 1.0/60)
	}

	if a.Camera.Target == target {
		t.Fatalf("pan should move the camera target")
	}
	if math32.Abs(a.Camera.Zoom()-0.9) > 1e-5 {
		t.Fatalf("expected zoom 0.9, got %v", a.Camera.Zoom())
	}
	if a.Camera.Mode() != camera.Rotating {
		t.Fatalf("modifier + primary should start an orbit, got %v", a.Camera.Mode())
	}
	if w, h := a.Camera.Viewport(); w != 1024 || h != 768 {
		t.Fatalf("resize not applied: %dx%d", w, h)
	}
	if math32.Abs(a.Frame().ViewHeight-25/0.9) > 1e-3 {
		t.Fatalf("frame view height should follow zoom, got %v", a.Frame().ViewHeight)
	}
}

func TestRebuildKeepsPlayer(t *testing.T) {
	a := New(testConfig(), nil, 800, 600)
	a.Keys.Set(input.KeyD, true)
	for i := 0; i < 30; i++ {
		a.Update(1)
	}
	if a.Player.Pose.Position.X != 20 {
		t.Fatalf("expected player at the east edge, got %v", a.Player.Pose.Position)
	}

	cfg := testConfig()
	cfg.World.Size = 20
	cfg.World.Seed = 12
	a.Rebuild(cfg)

	if a.Stats.Attempts != world.AssetCount(20, 0.08) {
		t.Fatalf("rebuild should repopulate for the new size")
	}
	if a.Player.Pose.Position.X != 10 {
		t.Fatalf("rebuild should clamp the player to the new bounds, got %v", a.Player.Pose.Position)
	}
	for _, as := range a.Assets {
		if math32.Abs(as.Position.X) > 10 || math32.Abs(as.Position.Z) > 10 {
			t.Fatalf("asset %v outside rebuilt world", as.Position)
		}
	}
}

func TestReloadTypoKeepsWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meadow.yaml")
	cfg := testConfig()
	cfg.World.Seed = 7
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	a := New(cfg, nil, 800, 600)
	before := a.Stats
	first := a.Assets[0].Position

	if err := os.WriteFile(path, []byte("world:\n  size: [oops\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := a.Reload(path, 0); err == nil {
		t.Fatalf("expected the typo to be reported")
	}
	if a.Config != cfg || a.Seed() != 7 {
		t.Fatalf("failed reload replaced the config: size %v seed %d", a.Config.World.Size, a.Seed())
	}
	if a.Stats != before || a.Assets[0].Position != first {
		t.Fatalf("failed reload regenerated the world: %+v -> %+v", before, a.Stats)
	}
}

func TestReloadAppliesFileAndSeedOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meadow.yaml")
	cfg := testConfig()
	a := New(cfg, nil, 800, 600)

	cfg.World.Size = 20
	cfg.World.Seed = 5
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := a.Reload(path, 99); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if a.Config.World.Size != 20 || a.Seed() != 99 {
		t.Fatalf("expected size 20 with seed 99, got size %v seed %d", a.Config.World.Size, a.Seed())
	}
	if a.Stats.Attempts != world.AssetCount(20, 0.08) {
		t.Fatalf("reload should repopulate, got %+v", a.Stats)
	}
}

func TestFocusLossReleasesInput(t *testing.T) {
	a := New(testConfig(), nil, 800, 600)
	script := &input.Replay{Frames: [][]input.Event{
		{input.KeyEvent{Key: input.KeyD, Down: true}, input.PointerEvent{Action: input.PointerDown, Button: input.ButtonSecondary}},
		{input.FocusEvent{Focused: false}},
		{input.FocusEvent{Focused: true}},
	}}

	a.Tick(script, 0.1)
	if a.Camera.Mode() != camera.Panning {
		t.Fatalf("expected a pan in progress, got %v", a.Camera.Mode())
	}
	a.Tick(script, 0.1)
	stopped := a.Player.Pose.Position
	a.Tick(script, 0.1)
	a.Tick(script, 0.1)

	if a.Player.Pose.Position != stopped {
		t.Fatalf("player kept walking after focus loss: %v -> %v", stopped, a.Player.Pose.Position)
	}
	if keys, err := a.Keys.Snapshot(); err != nil || keys.Any(input.KeyD) {
		t.Fatalf("focus loss should release held keys")
	}
	if a.Camera.Mode() != camera.Idle {
		t.Fatalf("focus loss should end the drag, got %v", a.Camera.Mode())
	}
}
