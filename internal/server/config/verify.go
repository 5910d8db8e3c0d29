// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"
	"net"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyMap(&cfg.Map); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.HTTP.Addr); err != nil {
		return fmt.Errorf("server.http.addr: %w", err)
	}

	if cfg.RESP.Enabled {
		if cfg.RESP.Addr == "" {
			return errors.New("server.resp.addr is required when resp is enabled")
		}
		if _, _, err := net.SplitHostPort(cfg.RESP.Addr); err != nil {
			return fmt.Errorf("server.resp.addr: %w", err)
		}
	}

	if cfg.HTTP.RateLimit < 0 || cfg.RESP.RateLimit < 0 {
		return errors.New("rate limits must not be negative")
	}
	return nil
}

func verifyMap(cfg *MapSection) error {
	// Mirrors tsmap.New: reject the degenerate capacity before the
	// process gets as far as constructing the map.
	if cfg.Capacity < 1 {
		return errors.New("map.capacity must be at least 1")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	switch cfg.Format {
	case "", "json", "text", "console":
	default:
		return fmt.Errorf("log.format %q is not one of json, text", cfg.Format)
	}
	return nil
}
