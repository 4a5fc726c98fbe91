package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/networth/internal/adapter/http/dto"
	"github.com/iho/networth/internal/domain"
	"github.com/iho/networth/internal/usecase"
)

// LiabilityService defines the behavior needed by LiabilityHandler.
type LiabilityService interface {
	CreateLiability(ctx context.Context, input usecase.CreateLiabilityInput) (*domain.Liability, error)
	UpdateLiability(ctx context.Context, input usecase.UpdateLiabilityInput) (*domain.Liability, error)
	DeleteLiability(ctx context.Context, userID, id string) error
	ListLiabilities(ctx context.Context, userID string) ([]*domain.Liability, error)
}

// LiabilityHandler handles liability HTTP requests.
type LiabilityHandler struct {
	liabilityUC LiabilityService
}

// NewLiabilityHandler creates a new LiabilityHandler.
func NewLiabilityHandler(liabilityUC LiabilityService) *LiabilityHandler {
	return &LiabilityHandler{liabilityUC: liabilityUC}
}

// Create creates a new liability and resynchronizes the snapshot series.
func (h *LiabilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLiabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	liability, err := h.liabilityUC.CreateLiability(r.Context(), req.ToUseCaseInput(currentUserID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create liability", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.LiabilityFromDomain(liability))
}

// Update updates a liability and resynchronizes the snapshot series.
func (h *LiabilityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing liability ID", "")
		return
	}

	var req dto.UpdateLiabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	liability, err := h.liabilityUC.UpdateLiability(r.Context(), req.ToUseCaseInput(currentUserID(r), id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update liability", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LiabilityFromDomain(liability))
}

// Delete deletes a liability and resynchronizes the snapshot series.
func (h *LiabilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing liability ID", "")
		return
	}

	if err := h.liabilityUC.DeleteLiability(r.Context(), currentUserID(r), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete liability", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DeletedResponse{Deleted: true})
}

// List lists the current user's liabilities.
func (h *LiabilityHandler) List(w http.ResponseWriter, r *http.Request) {
	liabilities, err := h.liabilityUC.ListLiabilities(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list liabilities", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LiabilitiesFromDomain(liabilities))
}
