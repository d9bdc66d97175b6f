// Package scene owns the per-frame transform pipeline: it advances the
// camera from input, keeps frame timing, and derives the model, view and
// projection matrices handed to the renderer.
package scene

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"glcam/internal/engine/camera"
	"glcam/internal/engine/input"
	"glcam/internal/logger"
	"glcam/pkg/math"
)

// ModelMode selects how the model matrix is built each frame.
type ModelMode int

const (
	// ModelStatic places the mesh at a fixed translate(0, 0, -5).
	ModelStatic ModelMode = iota
	// ModelSpin rotates the mesh about Y, driven by elapsed time.
	ModelSpin
)

// ParseModelMode converts a config string to a ModelMode.
func ParseModelMode(s string) (ModelMode, error) {
	switch s {
	case "static", "":
		return ModelStatic, nil
	case "spin":
		return ModelSpin, nil
	default:
		return 0, fmt.Errorf("unknown model mode %q", s)
	}
}

// Config holds the pipeline parameters fixed at startup.
type Config struct {
	Mode     ModelMode
	SpinRate float32 // degrees per second, spin mode only

	FOV    float32 // horizontal field of view, degrees
	Near   float32
	Far    float32
	Aspect float32 // viewport width / height

	CameraSpeed float32
	Sensitivity float32
}

// Scene is the per-frame transform pipeline. All methods must be called
// from the render-loop thread; the scene holds no locks.
type Scene struct {
	cfg Config
	cam *camera.Camera

	// projection is built once at startup and reused every frame.
	projection math.Mat4
	model      math.Mat4
	view       math.Mat4

	last    time.Time
	elapsed float64
	closing bool
}

// New creates the pipeline with the camera at its fixed start pose and the
// projection derived from the configured frustum.
func New(cfg Config) *Scene {
	s := &Scene{
		cfg:        cfg,
		cam:        camera.New(math.Vec3{Z: 3}, -90, 0, cfg.CameraSpeed, cfg.Sensitivity),
		projection: math.Perspective(cfg.FOV, cfg.Aspect, cfg.Near, cfg.Far),
	}
	s.rebuild()

	logger.Debug("scene created",
		zap.Float32("fov", cfg.FOV),
		zap.Float32("near", cfg.Near),
		zap.Float32("far", cfg.Far),
		zap.Float32("aspect", cfg.Aspect),
	)
	return s
}

// Step advances one frame: derives delta time from the wall clock, applies
// the frame's look and move input to the camera, and rebuilds the model and
// view matrices.
func (s *Scene) Step(frame input.Frame, now time.Time) {
	var dt float32
	if !s.last.IsZero() {
		dt = float32(now.Sub(s.last).Seconds())
	}
	s.last = now
	s.elapsed += float64(dt)

	if frame.Quit {
		s.closing = true
	}

	if frame.MouseDX != 0 || frame.MouseDY != 0 {
		s.cam.HandleLook(frame.MouseDX, frame.MouseDY)
	}
	if frame.Move != 0 {
		s.cam.HandleMove(frame.Move, dt)
	}

	s.rebuild()
}

func (s *Scene) rebuild() {
	m := math.Identity()
	switch s.cfg.Mode {
	case ModelSpin:
		// Rotation from identity, so the in-place builder is valid here.
		m.RotateY(s.cfg.SpinRate * float32(s.elapsed))
	default:
		m.Translate(0, 0, -5)
	}
	s.model = m
	s.view = s.cam.ViewMatrix()
}

// ModelMatrix returns the current model matrix.
func (s *Scene) ModelMatrix() math.Mat4 { return s.model }

// ViewMatrix returns the current view matrix.
func (s *Scene) ViewMatrix() math.Mat4 { return s.view }

// ProjectionMatrix returns the projection matrix built at startup.
func (s *Scene) ProjectionMatrix() math.Mat4 { return s.projection }

// Elapsed returns total elapsed time in seconds, for the time uniform.
func (s *Scene) Elapsed() float32 { return float32(s.elapsed) }

// ShouldClose reports whether a close was requested by input.
func (s *Scene) ShouldClose() bool { return s.closing }

// Camera exposes the camera for diagnostics.
func (s *Scene) Camera() *camera.Camera { return s.cam }
