package handler

import (
	"net/http"
)

// handleStats handles GET /v1/stats.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Stats(r.Context()))
}

// handleDump handles GET /v1/dump.
//
// The listing is a point-in-time snapshot taken under the map lock;
// entries appear in bucket order, newest first within a bucket.
func (h *Handler) handleDump(w http.ResponseWriter, r *http.Request) {
	raw := h.svc.Dump(r.Context())

	buckets := make([]DumpBucket, 0, len(raw))
	for _, b := range raw {
		entries := make([]DumpPair, 0, len(b.Entries))
		for _, e := range b.Entries {
			entries = append(entries, DumpPair{Key: e.Key, Value: e.Value})
		}
		buckets = append(buckets, DumpBucket{Bucket: b.Bucket, Entries: entries})
	}

	h.writeJSON(w, r, http.StatusOK, DumpResponse{Buckets: buckets})
}

// handleFlush handles POST /v1/flush.
func (h *Handler) handleFlush(w http.ResponseWriter, r *http.Request) {
	h.svc.Flush(r.Context())
	h.writeJSON(w, r, http.StatusOK, h.svc.Stats(r.Context()))
}
