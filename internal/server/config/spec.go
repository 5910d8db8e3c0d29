// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for lockmap-server.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Map    MapSection    `koanf:"map"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP            HTTPConfig    `koanf:"http"`
	RESP            RESPConfig    `koanf:"resp"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr      string `koanf:"addr"`
	RateLimit int    `koanf:"rate_limit"`
}

// RESPConfig configures the RESP (Redis protocol) server.
type RESPConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	RateLimit    int           `koanf:"rate_limit"`
}

// MapSection configures the map core.
type MapSection struct {
	// Capacity is the fixed bucket count. The table is never resized;
	// choose this for the expected key population.
	Capacity int `koanf:"capacity"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
