package primitives

import (
	"image/color"

	"meadow/internal/assets"
	"meadow/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// shapePlane is the ground quad; it is not an asset shape so it lives outside the assets enum.
const shapePlane assets.Shape = -1

// cached holds a unit mesh for one shape and the lit material it is drawn with.
// Unit meshes are 1 across on every axis; centre shifts the raw raylib mesh so it is centred
// (raylib cylinders start at y=0).
type cached struct {
	mesh   rl.Mesh
	mtl    rl.Material
	centre [3]float32
}

// Registry maps asset shapes to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache map[assets.Shape]cached
	lit   litShader
	ok    bool // lit shader compiled
	tried bool // lit shader load attempted
}

// NewRegistry returns a registry with no meshes loaded.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[assets.Shape]cached),
	}
}

// SetSun sets the direction towards the light (normalized) for this frame.
// Call once per frame, after the window is open and before drawing.
func (r *Registry) SetSun(dir [3]float32) {
	if r.litShader() {
		r.lit.setSun(dir)
	}
}

// Mesh resolutions. Canopies and rocks are deliberately coarse for the faceted look.
const (
	sphereRings        = 12
	sphereSlices       = 16
	icosahedronRings   = 3
	icosahedronSlices  = 5
	dodecahedronRings  = 4
	dodecahedronSlices = 6
	hemisphereRings    = 6
	hemisphereSlices   = 8
	cylinderSlices     = 8
)

// ensure creates the mesh and material for shape if not yet cached.
func (r *Registry) ensure(shape assets.Shape) (cached, bool) {
	if c, ok := r.cache[shape]; ok {
		return c, true
	}
	var c cached
	switch shape {
	case assets.ShapeCylinder:
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.centre = [3]float32{0, -0.5, 0}
	case assets.ShapeSphere:
		c.mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case assets.ShapeIcosahedron:
		c.mesh = rl.GenMeshSphere(0.5, icosahedronRings, icosahedronSlices)
	case assets.ShapeDodecahedron:
		c.mesh = rl.GenMeshSphere(0.5, dodecahedronRings, dodecahedronSlices)
	case assets.ShapeHemisphere:
		// Flat side down at y=0; the part offset is the centre of the base.
		c.mesh = rl.GenMeshHemiSphere(0.5, hemisphereRings, hemisphereSlices)
	case shapePlane:
		c.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	c.mtl = rl.LoadMaterialDefault()
	if r.litShader() {
		c.mtl.Shader = r.lit.shader
	}
	r.cache[shape] = c
	return c, true
}

// litShader loads the shared lit shader once. Falls back to raylib's default shader if it fails to compile.
func (r *Registry) litShader() bool {
	if !r.tried {
		r.tried = true
		r.lit, r.ok = loadLitShader()
	}
	return r.ok
}

// DrawAsset draws every part of a composite. Must be called between BeginMode3D and EndMode3D.
// SetSun must be called once per frame before drawing.
func (r *Registry) DrawAsset(a assets.Asset) {
	scale := nonZero(a.Scale)
	// Composite transform: uniform scale, yaw about Y, then move to the asset position.
	world := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(scale, scale, scale), rl.MatrixRotateY(a.Yaw)),
		rl.MatrixTranslate(a.Position.X, a.Position.Y, a.Position.Z),
	)
	for _, p := range a.Parts {
		parent := rl.MatrixMultiply(partTransform(p), world)
		if p.Shape == assets.ShapeCapsule {
			r.drawCapsule(p, parent)
			continue
		}
		r.drawMesh(p.Shape, p.Size, geom.Vec3{}, parent, p.Color)
	}
}

// DrawPlane draws a flat width×depth quad centred at centre, facing up.
func (r *Registry) DrawPlane(centre geom.Vec3, width, depth float32, col color.RGBA) {
	parent := rl.MatrixTranslate(centre.X, centre.Y, centre.Z)
	r.drawMesh(shapePlane, geom.V(width, 1, depth), geom.Vec3{}, parent, col)
}

// partTransform is the part's rotation followed by its offset inside the composite.
func partTransform(p assets.Part) rl.Matrix {
	return rl.MatrixMultiply(
		rl.MatrixRotateXYZ(rl.NewVector3(p.Rotation.X, p.Rotation.Y, p.Rotation.Z)),
		rl.MatrixTranslate(p.Offset.X, p.Offset.Y, p.Offset.Z),
	)
}

// drawCapsule composes a capsule from a cylinder and two spheres so the caps stay round.
// parent already holds the capsule's rotation and offset.
func (r *Registry) drawCapsule(p assets.Part, parent rl.Matrix) {
	radius := p.Size.X / 2
	middle := max(p.Size.Y-2*radius, 0)
	if middle > 0 {
		r.drawMesh(assets.ShapeCylinder, geom.V(p.Size.X, middle, p.Size.Z), geom.Vec3{}, parent, p.Color)
	}
	ball := geom.V(p.Size.X, p.Size.X, p.Size.Z)
	r.drawMesh(assets.ShapeSphere, ball, geom.V(0, -middle/2, 0), parent, p.Color)
	r.drawMesh(assets.ShapeSphere, ball, geom.V(0, middle/2, 0), parent, p.Color)
}

// drawMesh scales the unit mesh to size, shifts it by local, then applies parent.
func (r *Registry) drawMesh(shape assets.Shape, size, local geom.Vec3, parent rl.Matrix, col color.RGBA) {
	c, ok := r.ensure(shape)
	if !ok {
		return
	}
	// Order: centre the mesh, scale, then local shift, then the parent transform.
	m := rl.MatrixMultiply(
		rl.MatrixTranslate(c.centre[0], c.centre[1], c.centre[2]),
		rl.MatrixScale(nonZero(size.X), nonZero(size.Y), nonZero(size.Z)),
	)
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(local.X, local.Y, local.Z))
	m = rl.MatrixMultiply(m, parent)

	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(col.R, col.G, col.B, col.A)
	}
	rl.DrawMesh(c.mesh, c.mtl, m)
}

// Unload frees GPU resources. Call before the window closes.
// Materials share one shader, so it is released once here rather than through UnloadMaterial.
func (r *Registry) Unload() {
	for shape, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, shape)
	}
	if r.ok {
		rl.UnloadShader(r.lit.shader)
	}
	r.ok, r.tried = false, false
}

func nonZero(f float32) float32 {
	if f == 0 {
		return 1
	}
	return f
}
