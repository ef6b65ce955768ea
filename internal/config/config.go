package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are tried in order when Load is called without files.
var DefaultEnvFiles = []string{".env"}

// Config holds the configuration for the planner service and CLI.
type Config struct {
	Port        string
	RulesFile   string
	LogLevel    string
	AppEnv      string
	MaxVariants int
}

// Load reads the first env file that exists, then the process environment.
// Values from the file take precedence.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = DefaultEnvFiles
	}

	var file map[string]string
	for _, name := range envFiles {
		vals, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		file = vals
		break
	}

	get := func(key, def string) string {
		if val, ok := file[key]; ok && val != "" {
			return val
		}
		if val := os.Getenv(key); val != "" {
			return val
		}
		return def
	}

	maxVariants, err := strconv.Atoi(get("MAX_VARIANTS", "2"))
	if err != nil || maxVariants < 0 {
		return nil, fmt.Errorf("MAX_VARIANTS must be a non-negative integer, got %q", get("MAX_VARIANTS", ""))
	}

	port := get("PORT", "8080")
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("PORT must be a TCP port number, got %q", port)
	}

	return &Config{
		Port:        port,
		RulesFile:   get("RULES_FILE", ""),
		LogLevel:    strings.ToLower(get("LOG_LEVEL", "info")),
		AppEnv:      get("APP_ENV", "prod"),
		MaxVariants: maxVariants,
	}, nil
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
