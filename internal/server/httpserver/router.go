package httpserver

import (
	"net/http"

	"github.com/yndnr/lockmap-go/internal/core/service"
	"github.com/yndnr/lockmap-go/internal/server/httpserver/handler"
	"github.com/yndnr/lockmap-go/internal/telemetry/logger"
	"github.com/yndnr/lockmap-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// MapService handles key/value operations.
	MapService *service.MapService

	// Metrics is the metrics registry; its Handler serves /metrics.
	// May be nil, in which case /metrics is not registered.
	Metrics *metric.Registry

	// Logger for request logging.
	Logger logger.Logger

	// RateLimit is the per-IP request budget per second for the /v1
	// API. Zero disables rate limiting.
	RateLimit int
}

// NewRouter creates and configures the HTTP router with all routes and
// middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	h := handler.New(cfg.MapService, log)

	// Order: Recover -> RequestID -> Logging -> RateLimit -> handler.
	apiMiddlewares := []Middleware{
		Recover(log),
		RequestID(),
		Logging(log, cfg.Metrics),
	}
	if cfg.RateLimit > 0 {
		apiMiddlewares = append(apiMiddlewares, RateLimit(cfg.RateLimit))
	}
	apiHandler := Chain(h, apiMiddlewares...)

	mux := http.NewServeMux()

	// Health endpoint stays outside rate limiting so probes never 429.
	mux.Handle("GET /healthz", Chain(h, Recover(log), RequestID()))

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), Recover(log)))
	}

	mux.Handle("GET /v1/keys/{key}", apiHandler)
	mux.Handle("PUT /v1/keys/{key}", apiHandler)
	mux.Handle("DELETE /v1/keys/{key}", apiHandler)
	mux.Handle("GET /v1/stats", apiHandler)
	mux.Handle("GET /v1/dump", apiHandler)
	mux.Handle("POST /v1/flush", apiHandler)

	return mux
}
