package handler

import (
	"net/http"
	"time"

	"github.com/yndnr/lockmap-go/internal/infra/buildinfo"
)

// handleHealth handles GET /healthz.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": buildinfo.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
