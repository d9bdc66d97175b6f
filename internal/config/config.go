// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds camera movement and frustum settings.
type CameraConfig struct {
	Speed       float32 `yaml:"speed"`       // world units per second
	Sensitivity float32 `yaml:"sensitivity"` // degrees per mouse count
	FOV         float32 `yaml:"fov"`         // horizontal, degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// SceneConfig selects the rendered mesh and how its model matrix is built.
type SceneConfig struct {
	ModelMode string  `yaml:"model_mode"` // "static" or "spin"
	SpinRate  float32 `yaml:"spin_rate"`  // degrees per second, spin mode
	Mesh      string  `yaml:"mesh"`       // "pyramid" or "prism"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Speed:       2.5,
			Sensitivity: 0.1,
			FOV:         90,
			Near:        0.1,
			Far:         100,
		},
		Scene: SceneConfig{
			ModelMode: "static",
			SpinRate:  45,
			Mesh:      "pyramid",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
