package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/adapter/http/dto"
	"github.com/iho/networth/internal/domain"
)

type netWorthServiceStub struct {
	listFn        func(ctx context.Context, userID string) ([]*domain.Snapshot, error)
	recalculateFn func(ctx context.Context, userID string) ([]*domain.Snapshot, error)
	clearFn       func(ctx context.Context, userID string) error
}

func (s *netWorthServiceStub) ListSnapshots(ctx context.Context, userID string) ([]*domain.Snapshot, error) {
	return s.listFn(ctx, userID)
}

func (s *netWorthServiceStub) Recalculate(ctx context.Context, userID string) ([]*domain.Snapshot, error) {
	return s.recalculateFn(ctx, userID)
}

func (s *netWorthServiceStub) ClearSnapshots(ctx context.Context, userID string) error {
	return s.clearFn(ctx, userID)
}

func TestNetWorthHandler_ListSnapshots(t *testing.T) {
	h := NewNetWorthHandler(&netWorthServiceStub{
		listFn: func(ctx context.Context, userID string) ([]*domain.Snapshot, error) {
			if userID != DefaultUserID {
				t.Fatalf("expected default user, got %q", userID)
			}
			return []*domain.Snapshot{
				{ID: "s1", UserID: userID, SnapshotDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(1000)},
				{ID: "s2", UserID: userID, SnapshotDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(1500)},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/net-worth/snapshots", nil)
	rec := httptest.NewRecorder()

	h.ListSnapshots(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ListSnapshotsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got total=%d len=%d", resp.Total, len(resp.Snapshots))
	}
	if resp.Snapshots[0].ID != "s1" {
		t.Errorf("expected first snapshot s1, got %s", resp.Snapshots[0].ID)
	}
}

func TestNetWorthHandler_ListSnapshots_Error(t *testing.T) {
	h := NewNetWorthHandler(&netWorthServiceStub{
		listFn: func(ctx context.Context, userID string) ([]*domain.Snapshot, error) {
			return nil, errors.New("db gone")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/net-worth/snapshots", nil)
	rec := httptest.NewRecorder()

	h.ListSnapshots(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestNetWorthHandler_Recalculate(t *testing.T) {
	called := false
	h := NewNetWorthHandler(&netWorthServiceStub{
		recalculateFn: func(ctx context.Context, userID string) ([]*domain.Snapshot, error) {
			called = true
			return []*domain.Snapshot{
				{ID: "s1", UserID: userID, Total: decimal.NewFromInt(2500)},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/net-worth/recalculate", nil)
	rec := httptest.NewRecorder()

	h.Recalculate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !called {
		t.Fatal("expected Recalculate called")
	}

	var resp dto.ListSnapshotsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected total 1, got %d", resp.Total)
	}
}

func TestNetWorthHandler_ClearSnapshots(t *testing.T) {
	cleared := false
	h := NewNetWorthHandler(&netWorthServiceStub{
		clearFn: func(ctx context.Context, userID string) error {
			cleared = true
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/net-worth/snapshots", nil)
	rec := httptest.NewRecorder()

	h.ClearSnapshots(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !cleared {
		t.Error("expected ClearSnapshots called")
	}

	var resp dto.DeletedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Deleted {
		t.Error("expected deleted true")
	}
}
