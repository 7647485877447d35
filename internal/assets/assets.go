// Package assets builds the meadow's composite objects (trees, rocks, flowers, the player)
// out of primitive parts. Composites are plain data; the primitives registry draws them.
package assets

import (
	"image/color"

	"meadow/internal/geom"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// Kind identifies what a placed asset is.
type Kind int

const (
	KindTree Kind = iota
	KindRock
	KindFlower
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindRock:
		return "rock"
	case KindFlower:
		return "flower"
	case KindPlayer:
		return "player"
	}
	return "unknown"
}

// Shape is the primitive mesh a part is drawn with.
type Shape int

const (
	ShapeCylinder Shape = iota
	ShapeSphere
	ShapeIcosahedron
	ShapeDodecahedron
	ShapeHemisphere
	ShapeCapsule
)

// Part is one primitive inside a composite, in the composite's local frame.
// Size is the full extent on each axis (diameter for round shapes). Offset is the part centre,
// except for the hemisphere whose Offset is the centre of its flat base.
// Rotation is Euler XYZ in radians, applied before Offset.
type Part struct {
	Shape    Shape
	Size     geom.Vec3
	Offset   geom.Vec3
	Rotation geom.Vec3
	Color    color.RGBA
}

// Asset is a composite placed in the world: parts are scaled uniformly by Scale,
// turned by Yaw about Y, then moved to Position.
type Asset struct {
	Kind     Kind
	Position geom.Vec3
	Yaw      float32
	Scale    float32
	Parts    []Part
}

// Rand is the random source the factory draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// between draws uniformly from [lo, hi).
func between(rng Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// ground drops pos onto the ground plane; placed assets always stand on y=0.
func ground(pos geom.Vec3) geom.Vec3 {
	pos.Y = 0
	return pos
}

// FlowerColors is the palette flower heads are drawn from.
var FlowerColors = []color.RGBA{
	colornames.Tomato,
	colornames.Gold,
	colornames.Violet,
	colornames.Cornflowerblue,
}

const (
	trunkRadius = 0.25

	stemHeight     = 0.3
	stemRadius     = 0.02
	flowerHeadSize = 0.1
)

// NewTree builds a trunk with a low-poly canopy stacked on top.
// Trunk height is in [1.5, 3), canopy radius in [1, 1.8), overall scale in [0.8, 1.2).
func NewTree(rng Rand, pos geom.Vec3) Asset {
	trunkHeight := between(rng, 1.5, 3.0)
	trunk := Part{
		Shape:  ShapeCylinder,
		Size:   geom.V(trunkRadius*2, trunkHeight, trunkRadius*2),
		Offset: geom.V(0, trunkHeight/2, 0),
		Color:  colornames.Saddlebrown,
	}

	canopyRadius := between(rng, 1.0, 1.8)
	canopy := Part{
		Shape:  ShapeIcosahedron,
		Size:   geom.V(canopyRadius*2, canopyRadius*2, canopyRadius*2),
		Offset: geom.V(0, trunkHeight+canopyRadius*0.5, 0),
		Color:  colornames.Forestgreen,
	}
	canopy.Rotation.Y = between(rng, 0, 2*math32.Pi)
	canopy.Rotation.X = between(rng, -0.1, 0.1)
	canopy.Rotation.Z = between(rng, -0.1, 0.1)

	return Asset{
		Kind:     KindTree,
		Position: ground(pos),
		Scale:    between(rng, 0.8, 1.2),
		Parts:    []Part{trunk, canopy},
	}
}

// NewRock builds a single tumbled dodecahedron of size [0.4, 1.2) and scale [0.7, 1.2).
func NewRock(rng Rand, pos geom.Vec3) Asset {
	size := between(rng, 0.4, 1.2)
	rock := Part{
		Shape:  ShapeDodecahedron,
		Size:   geom.V(size*2, size*2, size*2),
		Offset: geom.V(0, size/2.5, 0),
		Color:  colornames.Slategray,
	}
	rock.Rotation.X = between(rng, 0, math32.Pi)
	rock.Rotation.Y = between(rng, 0, math32.Pi)

	return Asset{
		Kind:     KindRock,
		Position: ground(pos),
		Scale:    between(rng, 0.7, 1.2),
		Parts:    []Part{rock},
	}
}

// NewFlower builds a thin stem with a coloured head picked from FlowerColors.
func NewFlower(rng Rand, pos geom.Vec3) Asset {
	stem := Part{
		Shape:  ShapeCylinder,
		Size:   geom.V(stemRadius*2, stemHeight, stemRadius*2),
		Offset: geom.V(0, stemHeight/2, 0),
		Color:  colornames.Limegreen,
	}
	i := min(int(rng.Float32()*float32(len(FlowerColors))), len(FlowerColors)-1)
	head := Part{
		Shape:  ShapeSphere,
		Size:   geom.V(flowerHeadSize*2, flowerHeadSize*2, flowerHeadSize*2),
		Offset: geom.V(0, stemHeight+flowerHeadSize*0.8, 0),
		Color:  FlowerColors[i],
	}
	return Asset{
		Kind:     KindFlower,
		Position: ground(pos),
		Scale:    1,
		Parts:    []Part{stem, head},
	}
}

// NewPlayer builds the avatar at its local origin: capsule body, head, hat and a walking stick.
// The caller sets Position and Yaw.
func NewPlayer() Asset {
	const (
		bodyHeight float32 = 0.8
		bodyRadius float32 = 0.3
		headRadius float32 = 0.25
		headY              = bodyHeight + headRadius*0.8
		hatRadius          = headRadius * 1.1
	)

	return Asset{
		Kind:  KindPlayer,
		Scale: 1,
		Parts: []Part{
			{
				Shape:  ShapeCapsule,
				Size:   geom.V(bodyRadius*2, bodyHeight, bodyRadius*2),
				Offset: geom.V(0, bodyHeight/2, 0),
				Color:  colornames.Steelblue,
			},
			{
				Shape:  ShapeSphere,
				Size:   geom.V(headRadius*2, headRadius*2, headRadius*2),
				Offset: geom.V(0, headY, 0),
				Color:  colornames.Bisque,
			},
			{
				Shape:  ShapeHemisphere,
				Size:   geom.V(hatRadius*2, hatRadius*2*0.8, hatRadius*2),
				Offset: geom.V(0, headY+headRadius*0.1, 0),
				Color:  colornames.Darkorange,
			},
			{
				Shape:    ShapeCylinder,
				Size:     geom.V(0.06, 0.5, 0.06),
				Offset:   geom.V(bodyRadius*0.9, bodyHeight*0.4, bodyRadius*0.5),
				Rotation: geom.V(-math32.Pi/6, 0, math32.Pi/4),
				Color:    colornames.Saddlebrown,
			},
		},
	}
}
