// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr = "127.0.0.1:5080"
	DefaultRESPAddr = "127.0.0.1:6399"

	DefaultMapCapacity = 4096

	DefaultHTTPRateLimit = 1000
	DefaultRESPRateLimit = 1000

	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 5 * time.Minute
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:      DefaultHTTPAddr,
				RateLimit: DefaultHTTPRateLimit,
			},
			RESP: RESPConfig{
				Enabled:      false,
				Addr:         DefaultRESPAddr,
				ReadTimeout:  DefaultReadTimeout,
				WriteTimeout: DefaultWriteTimeout,
				IdleTimeout:  DefaultIdleTimeout,
				RateLimit:    DefaultRESPRateLimit,
			},
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Map: MapSection{
			Capacity: DefaultMapCapacity,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
