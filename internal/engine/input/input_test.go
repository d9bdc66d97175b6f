package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"glcam/internal/engine/camera"
)

func TestApplyKeyPressAndRelease(t *testing.T) {
	var held camera.Move

	held = applyKey(held, sdl.SCANCODE_W, true)
	if held != camera.MoveForward {
		t.Errorf("held = %b, want forward", held)
	}

	held = applyKey(held, sdl.SCANCODE_D, true)
	if held != camera.MoveForward|camera.MoveRight {
		t.Errorf("held = %b, want forward|right", held)
	}

	held = applyKey(held, sdl.SCANCODE_W, false)
	if held != camera.MoveRight {
		t.Errorf("held = %b, want right", held)
	}
}

func TestApplyKeyArrowAliases(t *testing.T) {
	tests := []struct {
		key  sdl.Scancode
		want camera.Move
	}{
		{sdl.SCANCODE_UP, camera.MoveForward},
		{sdl.SCANCODE_DOWN, camera.MoveBackward},
		{sdl.SCANCODE_LEFT, camera.MoveLeft},
		{sdl.SCANCODE_RIGHT, camera.MoveRight},
	}

	for _, tt := range tests {
		if got := applyKey(0, tt.key, true); got != tt.want {
			t.Errorf("applyKey(%v) = %b, want %b", tt.key, got, tt.want)
		}
	}
}

func TestApplyKeyIgnoresUnbound(t *testing.T) {
	held := camera.MoveForward
	if got := applyKey(held, sdl.SCANCODE_SPACE, true); got != held {
		t.Errorf("unbound key changed held state: %b", got)
	}
}

func TestApplyKeyReleaseWithoutPress(t *testing.T) {
	// Releasing a key that was never recorded must not disturb other bits.
	held := camera.MoveLeft
	if got := applyKey(held, sdl.SCANCODE_W, false); got != held {
		t.Errorf("held = %b, want %b", got, held)
	}
}
