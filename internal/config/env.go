package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// EnvFiles are the dotenv files consulted, in order, from the working directory.
var EnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads every existing file in EnvFiles. Variables already set in
// the process environment are never overridden.
func LoadEnvFiles() {
	for _, path := range EnvFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load env file", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		slog.Debug("Loaded environment variables", slog.String("path", path))
	}
}
