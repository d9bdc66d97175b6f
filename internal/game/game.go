// Package game wires the window, input, scene and renderer into the
// synchronous frame loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"glcam/internal/config"
	"glcam/internal/engine/input"
	"glcam/internal/engine/renderer"
	"glcam/internal/engine/scene"
	"glcam/internal/engine/window"
	"glcam/internal/logger"
)

// Game owns the device boundary and the transform pipeline.
type Game struct {
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
}

// New creates the window, GL renderer and scene from the loaded config.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "glcam",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		Mesh:   cfg.Scene.Mesh,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	mode, err := scene.ParseModelMode(cfg.Scene.ModelMode)
	if err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, err
	}

	g.scene = scene.New(scene.Config{
		Mode:        mode,
		SpinRate:    cfg.Scene.SpinRate,
		FOV:         cfg.Camera.FOV,
		Near:        cfg.Camera.Near,
		Far:         cfg.Camera.Far,
		Aspect:      g.window.AspectRatio(),
		CameraSpeed: cfg.Camera.Speed,
		Sensitivity: cfg.Camera.Sensitivity,
	})
	g.input = input.New()

	return g, nil
}

// Run drives the frame loop until a close is requested.
func (g *Game) Run() error {
	logger.Info("starting frame loop")

	frameCount := 0
	fpsTimer := time.Now()

	for !g.scene.ShouldClose() {
		// 1. Poll input
		frame := g.input.Poll()
		if frame.Resized {
			g.renderer.Resize(frame.Width, frame.Height)
		}

		// 2. Advance camera and matrices
		g.scene.Step(frame, time.Now())

		// 3. Submit uniforms and draw
		g.renderer.Draw(
			g.scene.ModelMatrix(),
			g.scene.ViewMatrix(),
			g.scene.ProjectionMatrix(),
			g.scene.Elapsed(),
		)

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("close requested", zap.Any("camera", g.scene.Camera().Position))
	return nil
}

// Close releases renderer and window resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
