// Package input polls SDL2 events into a per-frame sample for the camera.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"glcam/internal/engine/camera"
)

// Frame is one frame's worth of input: which movement keys are held, the
// accumulated mouse delta, and any window-level events. It is a plain value
// consumed synchronously by the game loop, so camera updates keep strict
// frame ordering.
type Frame struct {
	Move camera.Move

	// Mouse delta in counts since the previous poll. Positive MouseDY
	// means the cursor moved up (SDL reports it inverted).
	MouseDX float32
	MouseDY float32

	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Input tracks held keys across frames.
type Input struct {
	held camera.Move
}

// New creates an input handler.
func New() *Input {
	return &Input{}
}

// Poll drains pending SDL events and returns the frame sample.
func (i *Input) Poll() Frame {
	frame := Frame{}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			frame.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				frame.Resized = true
				frame.Width = int(e.Data1)
				frame.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE && e.Type == sdl.KEYDOWN {
				frame.Quit = true
				continue
			}
			i.held = applyKey(i.held, e.Keysym.Scancode, e.Type == sdl.KEYDOWN)

		case *sdl.MouseMotionEvent:
			frame.MouseDX += float32(e.XRel)
			frame.MouseDY -= float32(e.YRel)
		}
	}

	frame.Move = i.held
	return frame
}

// applyKey sets or clears the movement bit for a WASD/arrow scancode.
func applyKey(held camera.Move, key sdl.Scancode, down bool) camera.Move {
	var bit camera.Move

	switch key {
	case sdl.SCANCODE_W, sdl.SCANCODE_UP:
		bit = camera.MoveForward
	case sdl.SCANCODE_S, sdl.SCANCODE_DOWN:
		bit = camera.MoveBackward
	case sdl.SCANCODE_A, sdl.SCANCODE_LEFT:
		bit = camera.MoveLeft
	case sdl.SCANCODE_D, sdl.SCANCODE_RIGHT:
		bit = camera.MoveRight
	default:
		return held
	}

	if down {
		return held | bit
	}
	return held &^ bit
}
