package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles a fixed look-at target, the natural way to inspect a
// garden plot. Yaw/pitch are driven by mouse drag, distance by scroll.
type OrbitCamera struct {
	Target      mgl32.Vec3
	Yaw         float32 // radians around Y
	Pitch       float32 // radians above horizon
	Distance    float32
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewOrbitCamera(width, height int, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Target:      mgl32.Vec3{0, 0, 0},
		Yaw:         0.6,
		Pitch:       0.5,
		Distance:    distance,
		AspectRatio: float32(width) / float32(height),
		FOV:         55.0,
		NearPlane:   0.1,
		FarPlane:    500.0,
	}
}

// Rotate applies a mouse drag delta in screen pixels.
func (c *OrbitCamera) Rotate(dx, dy float32) {
	const sensitivity = 0.005
	c.Yaw += dx * sensitivity
	c.Pitch += dy * sensitivity

	// Keep the camera above the ground plane and off the pole
	if c.Pitch < 0.05 {
		c.Pitch = 0.05
	}
	if c.Pitch > 1.5 {
		c.Pitch = 1.5
	}
}

// Zoom moves the camera along its view ray.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance -= delta
	if c.Distance < 2 {
		c.Distance = 2
	}
	if c.Distance > 120 {
		c.Distance = 120
	}
}

// Position computes the eye point from the orbit parameters.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cy := float32(math.Cos(float64(c.Yaw)))
	sy := float32(math.Sin(float64(c.Yaw)))
	cp := float32(math.Cos(float64(c.Pitch)))
	sp := float32(math.Sin(float64(c.Pitch)))

	offset := mgl32.Vec3{cy * cp, sp, sy * cp}.Mul(c.Distance)
	return c.Target.Add(offset)
}

func (c *OrbitCamera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *OrbitCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}
