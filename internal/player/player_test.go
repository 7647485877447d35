package player

import (
	"testing"

	"meadow/internal/config"
	"meadow/internal/geom"
	"meadow/internal/input"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func newController(worldSize float32) *Controller {
	cfg := config.Default().Player
	cfg.Start = [3]float32{0, 0.75, 0}
	return NewController(cfg, worldSize)
}

func TestIntent(t *testing.T) {
	cases := []struct {
		name  string
		keys  []string
		wantX float32
		wantZ float32
	}{
		{"none", nil, 0, 0},
		{"w", []string{input.KeyW}, 0, -1},
		{"arrowdown", []string{input.KeyArrowDown}, 0, 1},
		{"w_and_d", []string{input.KeyW, input.KeyD}, 1, -1},
		{"w_and_arrowup_once", []string{input.KeyW, input.KeyArrowUp}, 0, -1},
		{"opposites_cancel", []string{input.KeyA, input.KeyD}, 0, 0},
		{"a_and_s", []string{input.KeyArrowLeft, input.KeyS}, -1, 1},
		{"modifier_ignored", []string{input.KeyShift}, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, z := Intent(input.SnapshotOf(c.keys...))
			if x != c.wantX || z != c.wantZ {
				t.Fatalf("expected (%v, %v), got (%v, %v)", c.wantX, c.wantZ, x, z)
			}
		})
	}
}

func TestUpdateFacingAndStep(t *testing.T) {
	c := newController(150)
	moved := c.Update(input.SnapshotOf(input.KeyW, input.KeyD), 0.1)
	if !moved {
		t.Fatalf("expected movement")
	}
	if math32.Abs(c.Pose.Facing-3*math32.Pi/4) > eps {
		t.Fatalf("expected facing 3π/4, got %v", c.Pose.Facing)
	}
	// speed 5 × dt 0.1 on each axis, unnormalised.
	if !c.Pose.Position.ApproxEqual(geom.V(0.5, 0.75, -0.5), eps) {
		t.Fatalf("unexpected position %v", c.Pose.Position)
	}
}

func TestDiagonalIsFaster(t *testing.T) {
	straight := newController(150)
	diagonal := newController(150)
	straight.Update(input.SnapshotOf(input.KeyD), 1)
	diagonal.Update(input.SnapshotOf(input.KeyD, input.KeyS), 1)

	start := geom.V(0, 0.75, 0)
	if diagonal.Pose.Position.Sub(start).Length() <= straight.Pose.Position.Sub(start).Length() {
		t.Fatalf("diagonal movement should cover more distance")
	}
}

func TestNoIntentKeepsPose(t *testing.T) {
	c := newController(150)
	c.Update(input.SnapshotOf(input.KeyA), 0.5)
	before := c.Pose
	if c.Update(input.SnapshotOf(), 0.5) {
		t.Fatalf("no keys should report no movement")
	}
	if c.Pose != before {
		t.Fatalf("pose changed without intent: %v -> %v", before, c.Pose)
	}
}

func TestClampToWorld(t *testing.T) {
	cases := []struct {
		name string
		keys []string
		want geom.Vec3
	}{
		{"north_west", []string{input.KeyW, input.KeyA}, geom.V(-10, 0.75, -10)},
		{"south_east", []string{input.KeyArrowDown, input.KeyArrowRight}, geom.V(10, 0.75, 10)},
		{"east", []string{input.KeyD}, geom.V(10, 0.75, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctl := newController(20)
			for i := 0; i < 100; i++ {
				ctl.Update(input.SnapshotOf(c.keys...), 0.25)
				p := ctl.Pose.Position
				if p.X < -10 || p.X > 10 || p.Z < -10 || p.Z > 10 {
					t.Fatalf("position %v escaped the world", p)
				}
			}
			if !ctl.Pose.Position.ApproxEqual(c.want, eps) {
				t.Fatalf("expected to rest at %v, got %v", c.want, ctl.Pose.Position)
			}
		})
	}
}

func TestSetWorldSizeReclamps(t *testing.T) {
	c := newController(150)
	for i := 0; i < 20; i++ {
		c.Update(input.SnapshotOf(input.KeyD), 1)
	}
	c.SetWorldSize(40)
	if c.Pose.Position.X != 20 {
		t.Fatalf("expected X clamped to 20, got %v", c.Pose.Position.X)
	}
}
