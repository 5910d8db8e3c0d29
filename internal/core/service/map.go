// Package service implements the business logic layer for LockMap.
package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/yndnr/lockmap-go/internal/core/domain"
	"github.com/yndnr/lockmap-go/internal/telemetry/metric"
	"github.com/yndnr/lockmap-go/pkg/tsmap"
)

// MapService mediates all access to the shared map.
type MapService struct {
	m       *tsmap.Map
	logger  *slog.Logger
	metrics *metric.Registry
}

// NewMapService creates the service around an existing map.
func NewMapService(m *tsmap.Map, logger *slog.Logger, metrics *metric.Registry) *MapService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &MapService{
		m:       m,
		logger:  logger,
		metrics: metrics,
	}

	if metrics != nil {
		metrics.Capacity.Set(float64(m.Capacity()))
		metrics.Entries.Set(0)
	}

	return s
}

// Get returns the value under key, or domain.ErrKeyNotFound on a miss.
func (s *MapService) Get(_ context.Context, key int64) (int64, error) {
	start := time.Now()
	value, ok := s.m.Get(key)
	s.observe(metric.OpGet, ok, start)

	if !ok {
		return tsmap.Absent, domain.ErrKeyNotFound.WithDetails("key " + strconv.FormatInt(key, 10))
	}
	return value, nil
}

// Put stores value under key. It returns the previous value and whether
// the key already existed; a new key reports (tsmap.Absent, false).
func (s *MapService) Put(_ context.Context, key, value int64) (int64, bool) {
	start := time.Now()
	prev, existed := s.m.Put(key, value)
	s.observe(metric.OpPut, existed, start)

	s.logger.Debug("put", "key", key, "existed", existed)
	return prev, existed
}

// Delete removes key and returns the value it held, or
// domain.ErrKeyNotFound if the key was absent.
func (s *MapService) Delete(_ context.Context, key int64) (int64, error) {
	start := time.Now()
	value, ok := s.m.Delete(key)
	s.observe(metric.OpDelete, ok, start)

	if !ok {
		return tsmap.Absent, domain.ErrKeyNotFound.WithDetails("key " + strconv.FormatInt(key, 10))
	}
	s.logger.Debug("delete", "key", key)
	return value, nil
}

// Stats returns a consistent counter snapshot.
func (s *MapService) Stats(_ context.Context) tsmap.Stats {
	return s.m.Stats()
}

// Dump returns the diagnostic per-bucket listing.
func (s *MapService) Dump(_ context.Context) []tsmap.BucketDump {
	return s.m.Dump()
}

// Keys returns every key currently stored.
func (s *MapService) Keys(_ context.Context) []int64 {
	return s.m.Keys()
}

// Flush empties the map. The operation counter survives.
func (s *MapService) Flush(_ context.Context) {
	s.m.Clear()
	if s.metrics != nil {
		s.metrics.Entries.Set(0)
	}
	s.logger.Info("map flushed")
}

func (s *MapService) observe(op string, hit bool, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveOp(op, hit, time.Since(start).Seconds())
	s.metrics.Entries.Set(float64(s.m.Len()))
}

// ParseKey parses a transport-level key token into an int64, mapping
// failures to domain.ErrBadKey.
func ParseKey(raw string) (int64, error) {
	key, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrBadKey.WithDetails(raw)
	}
	return key, nil
}

// ParseValue parses a transport-level value token into an int64,
// mapping failures to domain.ErrBadValue.
func ParseValue(raw string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrBadValue.WithDetails(raw)
	}
	return value, nil
}
