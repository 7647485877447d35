// Package player turns held movement keys into avatar displacement and facing.
package player

import (
	"meadow/internal/config"
	"meadow/internal/geom"
	"meadow/internal/input"

	"github.com/chewxy/math32"
)

// Pose is where the avatar stands and which way it faces (radians about Y; 0 faces +Z).
type Pose struct {
	Position geom.Vec3
	Facing   float32
}

// Controller moves the avatar. Position stays inside [-half, half] on X and Z.
type Controller struct {
	Pose  Pose
	speed float32
	half  float32
}

// NewController places the avatar at cfg.Start inside a world of side worldSize.
func NewController(cfg config.Player, worldSize float32) *Controller {
	c := &Controller{
		Pose:  Pose{Position: geom.FromArray(cfg.Start)},
		speed: cfg.MoveSpeed,
		half:  worldSize / 2,
	}
	c.clamp()
	return c
}

// Intent sums the held direction keys into an unnormalised (x, z) vector, each axis in {-1, 0, 1}.
// A letter key and its arrow key count once.
func Intent(keys input.Snapshot) (x, z float32) {
	if keys.Any(input.KeyW, input.KeyArrowUp) {
		z--
	}
	if keys.Any(input.KeyS, input.KeyArrowDown) {
		z++
	}
	if keys.Any(input.KeyA, input.KeyArrowLeft) {
		x--
	}
	if keys.Any(input.KeyD, input.KeyArrowRight) {
		x++
	}
	return x, z
}

// Update advances the avatar by dt seconds. With no movement intent nothing changes,
// including facing. Diagonals are not normalised, so they cover more ground.
// Returns true if the avatar was asked to move.
func (c *Controller) Update(keys input.Snapshot, dt float32) bool {
	x, z := Intent(keys)
	if x == 0 && z == 0 {
		return false
	}
	c.Pose.Facing = math32.Atan2(x, z)

	step := c.speed * dt
	c.Pose.Position.X += x * step
	c.Pose.Position.Z += z * step
	c.clamp()
	return true
}

// SetWorldSize changes the movement bounds (after a config reload) and re-clamps.
func (c *Controller) SetWorldSize(worldSize float32) {
	c.half = worldSize / 2
	c.clamp()
}

func (c *Controller) clamp() {
	c.Pose.Position.X = geom.Clamp(c.Pose.Position.X, -c.half, c.half)
	c.Pose.Position.Z = geom.Clamp(c.Pose.Position.Z, -c.half, c.half)
}
