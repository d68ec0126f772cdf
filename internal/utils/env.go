package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/kelsos/networth/internal/logger"
)

// LoadEnvironment loads variables from a .env file in the working directory
// and from one next to the executable. Variables already set win.
func LoadEnvironment() {
	for _, path := range envFiles() {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("No .env file loaded from %s: %v", path, err)
			continue
		}
		logger.Info("Loaded environment from %s", path)
	}
}

func envFiles() []string {
	paths := []string{".env"}

	execPath, err := os.Executable()
	if err != nil {
		logger.Debug("Could not determine executable path: %v", err)
		return paths
	}

	appEnv := filepath.Join(filepath.Dir(execPath), ".env")
	if abs, err := filepath.Abs(".env"); err == nil && abs == appEnv {
		return paths
	}
	return append(paths, appEnv)
}
