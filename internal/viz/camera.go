package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits the launch field slowly and projects with a perspective
// whose aspect ratio follows the framebuffer. Resizing the window only
// changes Aspect; simulation state is untouched.
type Camera struct {
	Yaw    float64 // orbit angle around the field, radians
	Dist   float64 // distance from the orbit axis
	Height float64 // eye height
	FocusY float64 // look-at height
	FOV    float64 // vertical field of view, degrees
	Aspect float64
}

func NewCamera() *Camera {
	return &Camera{
		Dist:   120.0,
		Height: 45.0,
		FocusY: 35.0,
		FOV:    55.0,
		Aspect: float64(WindowWidth) / float64(WindowHeight),
	}
}

// SetViewport updates the projection aspect from framebuffer dimensions.
func (c *Camera) SetViewport(fbW, fbH int) {
	if fbW > 0 && fbH > 0 {
		c.Aspect = float64(fbW) / float64(fbH)
	}
}

// Update advances the slow orbit.
func (c *Camera) Update(dt float64) {
	c.Yaw += CameraOrbitRate * dt
	if c.Yaw > 2*math.Pi {
		c.Yaw -= 2 * math.Pi
	}
}

// ViewProjection returns the combined projection*view matrix.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	eye := mgl32.Vec3{
		float32(math.Sin(c.Yaw) * c.Dist),
		float32(c.Height),
		float32(math.Cos(c.Yaw) * c.Dist),
	}
	center := mgl32.Vec3{0, float32(c.FocusY), 0}
	view := mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(float32(c.FOV)), float32(c.Aspect), 0.1, 500.0)
	return proj.Mul4(view)
}

// PointScale converts a world-space sprite size to pixels at w=1 for the
// perspective point-size attenuation in the sprite shaders.
func (c *Camera) PointScale(fbH int) float32 {
	return float32(float64(fbH) / (2.0 * math.Tan(c.FOV*math.Pi/360.0)))
}
