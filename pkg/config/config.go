// Package config loads server settings from the environment, reading an
// optional .env file first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

const DefaultServerName = "Go Calculator MCP"

// Config holds the runtime settings of the calculator server.
type Config struct {
	Debug      bool   // MCP_DEBUG
	LogFile    string // CALC_LOG_FILE, empty disables file logging
	ServerName string // CALC_SERVER_NAME
}

// Load reads the given .env files (".env" when none are given) and then the
// process environment. Missing files are ignored; variables already set in
// the environment take precedence over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Debug:      logger.IsTruthy(os.Getenv("MCP_DEBUG")),
		LogFile:    os.Getenv("CALC_LOG_FILE"),
		ServerName: os.Getenv("CALC_SERVER_NAME"),
	}
	if cfg.ServerName == "" {
		cfg.ServerName = DefaultServerName
	}
	return cfg, nil
}
