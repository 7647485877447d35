package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// Matte meadow lighting: one directional sun plus a hemisphere ambient that blends from a
// ground bounce colour below to a sky colour above. Attribute names match raylib's generated meshes.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragNormal;
void main() {
  fragNormal = mat3(transpose(inverse(matModel))) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 sunDir;
uniform vec3 sunColor;
uniform vec3 skyAmbient;
uniform vec3 groundAmbient;
out vec4 finalColor;
void main() {
  vec3 n = normalize(fragNormal);
  float lambert = max(dot(n, normalize(sunDir)), 0.0);
  vec3 ambient = mix(groundAmbient, skyAmbient, n.y * 0.5 + 0.5);
  vec3 lit = colDiffuse.rgb * (ambient + sunColor * lambert);
  finalColor = vec4(min(lit, vec3(1.0)), colDiffuse.a);
}
`
)

// Ambient averages to a flat 0xaaaaaa grey; the sun adds a little over half again on lit faces.
var (
	skyAmbient    = [3]float32{0.72, 0.74, 0.78}
	groundAmbient = [3]float32{0.62, 0.60, 0.56}
	sunColor      = [3]float32{0.6, 0.6, 0.58}
)

// litShader is the compiled shader with its uniform locations looked up once.
type litShader struct {
	shader rl.Shader
	sunDir int32
}

// loadLitShader compiles the shader and sets the uniforms that never change.
// ok is false when compilation failed; callers fall back to raylib's default shader.
func loadLitShader() (s litShader, ok bool) {
	s.shader = rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(s.shader) {
		return s, false
	}
	s.sunDir = rl.GetShaderLocation(s.shader, "sunDir")
	setVec3(s.shader, rl.GetShaderLocation(s.shader, "sunColor"), sunColor)
	setVec3(s.shader, rl.GetShaderLocation(s.shader, "skyAmbient"), skyAmbient)
	setVec3(s.shader, rl.GetShaderLocation(s.shader, "groundAmbient"), groundAmbient)
	return s, true
}

// setSun points the light. Called once per frame, not per mesh.
func (s litShader) setSun(dir [3]float32) {
	setVec3(s.shader, s.sunDir, dir)
}

func setVec3(shader rl.Shader, loc int32, v [3]float32) {
	if loc < 0 {
		return
	}
	rl.SetShaderValueV(shader, loc, v[:], rl.ShaderUniformVec3, 1)
}
