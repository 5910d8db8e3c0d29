package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yndnr/lockmap-go/internal/core/domain"
	"github.com/yndnr/lockmap-go/internal/telemetry/metric"
	"github.com/yndnr/lockmap-go/pkg/tsmap"
)

func newTestService(t *testing.T, capacity int) *MapService {
	t.Helper()
	m, err := tsmap.New(capacity)
	if err != nil {
		t.Fatalf("tsmap.New: %v", err)
	}
	return NewMapService(m, nil, metric.NewRegistry())
}

func TestMapServiceGetMissIsDomainError(t *testing.T) {
	svc := newTestService(t, 8)
	ctx := context.Background()

	_, err := svc.Get(ctx, 42)
	if !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("Get miss err = %v, want ErrKeyNotFound", err)
	}
}

func TestMapServicePutGetDelete(t *testing.T) {
	svc := newTestService(t, 8)
	ctx := context.Background()

	prev, existed := svc.Put(ctx, 1, 100)
	if existed || prev != tsmap.Absent {
		t.Fatalf("Put = (%d, %v), want (Absent, false)", prev, existed)
	}

	v, err := svc.Get(ctx, 1)
	if err != nil || v != 100 {
		t.Fatalf("Get = (%d, %v), want (100, nil)", v, err)
	}

	v, err = svc.Delete(ctx, 1)
	if err != nil || v != 100 {
		t.Fatalf("Delete = (%d, %v), want (100, nil)", v, err)
	}

	if _, err := svc.Delete(ctx, 1); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("second Delete err = %v, want ErrKeyNotFound", err)
	}
}

func TestMapServiceStatsCountsOps(t *testing.T) {
	svc := newTestService(t, 4)
	ctx := context.Background()

	svc.Put(ctx, 1, 10)
	svc.Get(ctx, 1)
	svc.Get(ctx, 2) // miss
	svc.Delete(ctx, 1)
	svc.Delete(ctx, 1) // miss

	st := svc.Stats(ctx)
	if st.Ops != 5 {
		t.Errorf("Ops = %d, want 5", st.Ops)
	}
	if st.Size != 0 {
		t.Errorf("Size = %d, want 0", st.Size)
	}
	if st.Capacity != 4 {
		t.Errorf("Capacity = %d, want 4", st.Capacity)
	}
}

func TestMapServiceFlush(t *testing.T) {
	svc := newTestService(t, 4)
	ctx := context.Background()

	svc.Put(ctx, 1, 10)
	svc.Put(ctx, 2, 20)
	svc.Flush(ctx)

	if st := svc.Stats(ctx); st.Size != 0 {
		t.Errorf("Size after Flush = %d, want 0", st.Size)
	}
	if len(svc.Keys(ctx)) != 0 {
		t.Error("Keys after Flush should be empty")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr error
	}{
		{"42", 42, nil},
		{"-7", -7, nil},
		{"9223372036854775807", 1<<63 - 1, nil},
		{"abc", 0, domain.ErrBadKey},
		{"", 0, domain.ErrBadKey},
		{"1.5", 0, domain.ErrBadKey},
		{"9223372036854775808", 0, domain.ErrBadKey}, // overflow
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseKey(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseKey(%q) = (%d, %v), want (%d, nil)", tt.raw, got, err, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	if _, err := ParseValue("x"); !errors.Is(err, domain.ErrBadValue) {
		t.Errorf("ParseValue(x) err = %v, want ErrBadValue", err)
	}
	if v, err := ParseValue("-100"); err != nil || v != -100 {
		t.Errorf("ParseValue(-100) = (%d, %v)", v, err)
	}
}
