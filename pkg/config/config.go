package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Defaults
const (
	DefaultEnvFile   = ".env"
	DefaultPort      = "3000"
	DefaultPublicDir = "public"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Config holds the server settings
type Config struct {
	Port      string
	PublicDir string
	LogLevel  string
	LogFormat string
}

// Load reads the optional .env file in the working directory, then the environment
func Load() (*Config, error) {
	return LoadFile(DefaultEnvFile)
}

// LoadFile is Load with an explicit env file. A missing file is not an error,
// and variables already set in the environment win over the file.
func LoadFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	publicDir, err := filepath.Abs(getEnv("PUBLIC_DIR", DefaultPublicDir))
	if err != nil {
		return nil, fmt.Errorf("resolving PUBLIC_DIR: %w", err)
	}

	return &Config{
		Port:      getEnv("PORT", DefaultPort),
		PublicDir: publicDir,
		LogLevel:  getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat: getEnv("LOG_FORMAT", DefaultLogFormat),
	}, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Logger builds a logrus logger from the level and format settings
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	switch c.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (want json or text)", c.LogFormat)
	}
	return logger, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
