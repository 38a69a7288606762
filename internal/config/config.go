// Package config reads server settings from command-line flags, falling back
// to CHESS_* environment variables and then to development defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr            string
	AllowOrigins    string
	DataDir         string
	InMemory        bool
	ReadBufferSize  int
	WriteBufferSize int
}

// Origins splits AllowOrigins into the list the websocket upgrader expects.
func (c *Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Load parses args (without the program name).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	fs.StringVar(&cfg.AllowOrigins, "allow-origins", getenv("CHESS_ALLOW_ORIGINS", "http://localhost:5173"), "comma-separated origins allowed for CORS and websockets")
	fs.StringVar(&cfg.DataDir, "data-dir", getenv("CHESS_DATA_DIR", "data"), "directory holding the game database")
	fs.BoolVar(&cfg.InMemory, "in-memory", getenb("CHESS_IN_MEMORY", false), "keep games in memory only")
	fs.IntVar(&cfg.ReadBufferSize, "ws-read-buffer", 1024, "websocket read buffer size")
	fs.IntVar(&cfg.WriteBufferSize, "ws-write-buffer", 1024, "websocket write buffer size")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.InMemory {
		cfg.DataDir = ""
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr must not be empty")
	}
	if len(c.Origins()) == 0 {
		return errors.New("config: at least one allowed origin is required")
	}
	if !c.InMemory && c.DataDir == "" {
		return errors.New("config: data-dir is required unless in-memory is set")
	}
	if c.ReadBufferSize <= 0 || c.WriteBufferSize <= 0 {
		return fmt.Errorf("config: websocket buffer sizes must be positive, got %d/%d", c.ReadBufferSize, c.WriteBufferSize)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
