package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.Speed != 2.5 {
		t.Errorf("expected camera speed 2.5, got %f", cfg.Camera.Speed)
	}
	if cfg.Camera.Sensitivity != 0.1 {
		t.Errorf("expected sensitivity 0.1, got %f", cfg.Camera.Sensitivity)
	}
	if cfg.Camera.FOV != 90 {
		t.Errorf("expected fov 90, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 100 {
		t.Errorf("expected near/far 0.1/100, got %f/%f", cfg.Camera.Near, cfg.Camera.Far)
	}

	if cfg.Scene.ModelMode != "static" {
		t.Errorf("expected model mode 'static', got %s", cfg.Scene.ModelMode)
	}
	if cfg.Scene.Mesh != "pyramid" {
		t.Errorf("expected mesh 'pyramid', got %s", cfg.Scene.Mesh)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  speed: 5.0
  sensitivity: 0.25
  fov: 75
  near: 0.1
  far: 100

scene:
  model_mode: "spin"
  spin_rate: 90
  mesh: "prism"

logging:
  level: "debug"
  log_file: "glcam.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.Speed != 5.0 {
		t.Errorf("expected speed 5.0, got %f", cfg.Camera.Speed)
	}
	if cfg.Camera.FOV != 75 {
		t.Errorf("expected fov 75, got %f", cfg.Camera.FOV)
	}

	if cfg.Scene.ModelMode != "spin" {
		t.Errorf("expected model mode 'spin', got %s", cfg.Scene.ModelMode)
	}
	if cfg.Scene.SpinRate != 90 {
		t.Errorf("expected spin rate 90, got %f", cfg.Scene.SpinRate)
	}
	if cfg.Scene.Mesh != "prism" {
		t.Errorf("expected mesh 'prism', got %s", cfg.Scene.Mesh)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "glcam.log" {
		t.Errorf("expected log file 'glcam.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// Values absent from the file keep their defaults.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 60\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected default width 800, got %d", cfg.Graphics.Width)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		teardown func()
		verify   func(*testing.T, *Config)
	}{
		{
			name:     "debug flag",
			setup:    func() { *flagDebug = true },
			teardown: func() { *flagDebug = false },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:     "fullscreen flag",
			setup:    func() { *flagFullscreen = true },
			teardown: func() { *flagFullscreen = false },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true")
				}
			},
		},
		{
			name: "size flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
		},
		{
			name:     "mesh flag",
			setup:    func() { *flagMesh = "prism" },
			teardown: func() { *flagMesh = "" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Mesh != "prism" {
					t.Errorf("expected mesh 'prism', got %s", cfg.Scene.Mesh)
				}
			},
		},
		{
			name:     "spin flag",
			setup:    func() { *flagSpin = true },
			teardown: func() { *flagSpin = false },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.ModelMode != "spin" {
					t.Errorf("expected model mode 'spin', got %s", cfg.Scene.ModelMode)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file.
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "saved", "config.yaml")

	cfg := Default()
	cfg.Scene.Mesh = "prism"
	cfg.Camera.FOV = 65

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if loaded.Scene.Mesh != "prism" {
		t.Errorf("expected mesh 'prism' after round trip, got %s", loaded.Scene.Mesh)
	}
	if loaded.Camera.FOV != 65 {
		t.Errorf("expected fov 65 after round trip, got %f", loaded.Camera.FOV)
	}
}
