package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yndnr/lockmap-go/internal/core/domain"
	"github.com/yndnr/lockmap-go/internal/core/service"
)

// handleGetKey handles GET /v1/keys/{key}.
func (h *Handler) handleGetKey(w http.ResponseWriter, r *http.Request) {
	key, err := service.ParseKey(r.PathValue("key"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	value, err := h.svc.Get(r.Context(), key)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, KeyResponse{
		Key:     key,
		Value:   &value,
		Existed: true,
	})
}

// handlePutKey handles PUT /v1/keys/{key}.
func (h *Handler) handlePutKey(w http.ResponseWriter, r *http.Request) {
	key, err := service.ParseKey(r.PathValue("key"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	var req PutKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, domain.CodeBadValue,
			"request body must be JSON with an integer value field", err.Error())
		return
	}

	prev, existed := h.svc.Put(r.Context(), key, req.Value)

	resp := KeyResponse{Key: key, Existed: existed}
	if existed {
		resp.Previous = &prev
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// handleDeleteKey handles DELETE /v1/keys/{key}.
func (h *Handler) handleDeleteKey(w http.ResponseWriter, r *http.Request) {
	key, err := service.ParseKey(r.PathValue("key"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	removed, err := h.svc.Delete(r.Context(), key)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, KeyResponse{
		Key:     key,
		Removed: &removed,
		Existed: true,
	})
}
