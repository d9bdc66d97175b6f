// Command glcam opens an OpenGL window and renders a fixed mesh behind a
// keyboard/mouse-driven first-person camera.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"glcam/internal/config"
	"glcam/internal/game"
	"glcam/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== glcam ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to initialize", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("runtime error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
