package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig loads a .env file from the given path (if present) and enables
// viper's automatic environment binding.
func LoadConfig(path string) {
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil {
		logrus.Debug("No .env file found, relying on process environment")
	}

	viper.AutomaticEnv()
}
