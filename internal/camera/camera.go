// Package camera holds first-person view state and the matrices the
// render pass derives from it.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the view state published by the player controller each
// frame. Yaw and pitch are radians; yaw 0 looks down +x.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// Front returns the view direction derived from yaw and pitch.
func (c *Camera) Front() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(c.Yaw))
	sp, cp := math.Sincos(float64(c.Pitch))
	return mgl32.Vec3{
		float32(cy * cp),
		float32(sp),
		float32(sy * cp),
	}.Normalize()
}

// ViewMatrix builds the look-at matrix for the current state.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), mgl32.Vec3{0, 1, 0})
}

// Projection holds the perspective parameters of the render surface.
type Projection struct {
	Fovy   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

func NewProjection(width, height int) Projection {
	p := Projection{Fovy: 45, Near: 0.1, Far: 100}
	p.Resize(width, height)
	return p
}

// Resize updates the aspect ratio after a surface size change.
func (p *Projection) Resize(width, height int) {
	if width > 0 && height > 0 {
		p.Aspect = float32(width) / float32(height)
	}
}

// Matrix builds the perspective projection matrix.
func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.Fovy), p.Aspect, p.Near, p.Far)
}
