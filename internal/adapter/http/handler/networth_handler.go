package handler

import (
	"context"
	"net/http"

	"github.com/iho/networth/internal/adapter/http/dto"
	"github.com/iho/networth/internal/domain"
)

// NetWorthService defines the behavior needed by NetWorthHandler.
type NetWorthService interface {
	ListSnapshots(ctx context.Context, userID string) ([]*domain.Snapshot, error)
	Recalculate(ctx context.Context, userID string) ([]*domain.Snapshot, error)
	ClearSnapshots(ctx context.Context, userID string) error
}

// NetWorthHandler exposes the snapshot series over HTTP.
type NetWorthHandler struct {
	netWorthUC NetWorthService
}

// NewNetWorthHandler creates a new NetWorthHandler.
func NewNetWorthHandler(netWorthUC NetWorthService) *NetWorthHandler {
	return &NetWorthHandler{netWorthUC: netWorthUC}
}

// ListSnapshots returns the user's net worth history ordered by date.
func (h *NetWorthHandler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.netWorthUC.ListSnapshots(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list snapshots", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListSnapshotsResponse{
		Snapshots: dto.SnapshotsFromDomain(snapshots),
		Total:     len(snapshots),
	})
}

// Recalculate rebuilds the full snapshot series from current records.
func (h *NetWorthHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.netWorthUC.Recalculate(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to recalculate snapshots", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListSnapshotsResponse{
		Snapshots: dto.SnapshotsFromDomain(snapshots),
		Total:     len(snapshots),
	})
}

// ClearSnapshots deletes the user's snapshot series.
func (h *NetWorthHandler) ClearSnapshots(w http.ResponseWriter, r *http.Request) {
	if err := h.netWorthUC.ClearSnapshots(r.Context(), currentUserID(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear snapshots", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DeletedResponse{Deleted: true})
}
