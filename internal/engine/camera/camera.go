// Package camera implements the first-person camera that drives the view
// matrix.
package camera

import (
	gomath "math"

	"glcam/pkg/math"
)

// Move is a bitmask of movement directions active during a frame.
type Move uint8

const (
	MoveForward Move = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
)

// Pitch is clamped short of the poles so the front vector never aligns
// with world-up, which would degenerate the strafe cross product.
const (
	maxPitch = 89.0
	minPitch = -89.0
)

// Camera holds a first-person position and orientation. Yaw and pitch are
// in degrees; yaw is unbounded (only its sine and cosine are used).
type Camera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32 // world units per second
	Sensitivity float32 // degrees per mouse count
}

// New creates a camera at pos looking with the given yaw/pitch.
// Yaw -90 looks down -Z.
func New(pos math.Vec3, yaw, pitch, speed, sensitivity float32) *Camera {
	c := &Camera{
		Position:    pos,
		Up:          math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:         yaw,
		Pitch:       pitch,
		Speed:       speed,
		Sensitivity: sensitivity,
	}
	c.updateFront()
	return c
}

// HandleLook accumulates a mouse delta into yaw/pitch and re-derives the
// front vector. Positive dy pitches up.
func (c *Camera) HandleLook(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < minPitch {
		c.Pitch = minPitch
	}

	c.updateFront()
}

// HandleMove displaces the camera for one frame. Movement scales with dt so
// displacement is frame-rate independent. Simultaneous directions combine
// additively: diagonal movement is faster than a single axis, matching the
// original controls.
func (c *Camera) HandleMove(move Move, dt float32) {
	speed := c.Speed * dt

	if move&MoveForward != 0 {
		c.Position = c.Position.Add(c.Front.Scale(speed))
	}
	if move&MoveBackward != 0 {
		c.Position = c.Position.Sub(c.Front.Scale(speed))
	}

	if move&(MoveLeft|MoveRight) != 0 {
		right := c.Front.Cross(c.Up).Normalize()
		if right == (math.Vec3{}) {
			// Front aligned with up; the pitch clamp makes this
			// unreachable, but don't corrupt the position if it
			// ever happens.
			return
		}
		if move&MoveLeft != 0 {
			c.Position = c.Position.Sub(right.Scale(speed))
		}
		if move&MoveRight != 0 {
			c.Position = c.Position.Add(right.Scale(speed))
		}
	}
}

// ViewMatrix returns the view matrix for the current position and
// orientation.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) updateFront() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	c.Front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}
