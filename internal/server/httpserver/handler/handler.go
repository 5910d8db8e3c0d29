package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yndnr/lockmap-go/internal/core/domain"
	"github.com/yndnr/lockmap-go/internal/core/service"
	"github.com/yndnr/lockmap-go/internal/telemetry/logger"
)

// Handler is the main HTTP handler that routes requests to the
// appropriate operation handlers.
type Handler struct {
	svc    *service.MapService
	logger logger.Logger
	mux    *http.ServeMux
}

// New creates a new Handler backed by the given service.
func New(svc *service.MapService, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}

	h := &Handler{
		svc:    svc,
		logger: log,
		mux:    http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /healthz", h.handleHealth)

	h.mux.HandleFunc("GET /v1/keys/{key}", h.handleGetKey)
	h.mux.HandleFunc("PUT /v1/keys/{key}", h.handlePutKey)
	h.mux.HandleFunc("DELETE /v1/keys/{key}", h.handleDeleteKey)

	h.mux.HandleFunc("GET /v1/stats", h.handleStats)
	h.mux.HandleFunc("GET /v1/dump", h.handleDump)
	h.mux.HandleFunc("POST /v1/flush", h.handleFlush)
}

// writeJSON writes a JSON response with the standard envelope format.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	requestID := logger.RequestIDFromContext(r.Context())
	response := NewResponse(requestID, data)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response with the standard envelope format.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	requestID := logger.RequestIDFromContext(r.Context())
	response := NewErrorResponse(requestID, code, message, details)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		h.writeError(w, r, statusForCode(de.Code), de.Code, de.Message, de.Details)
		return
	}

	h.logger.Error("unexpected service error", "error", err)
	h.writeError(w, r, http.StatusInternalServerError, domain.CodeInternal, "internal server error", nil)
}

func statusForCode(code string) int {
	switch code {
	case domain.CodeKeyNotFound:
		return http.StatusNotFound
	case domain.CodeBadKey, domain.CodeBadValue:
		return http.StatusBadRequest
	case domain.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
