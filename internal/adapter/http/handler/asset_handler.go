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

// AssetService defines the behavior needed by AssetHandler.
type AssetService interface {
	CreateAsset(ctx context.Context, input usecase.CreateAssetInput) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, input usecase.UpdateAssetInput) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, userID, id string) error
	GetAsset(ctx context.Context, userID, id string) (*domain.Asset, error)
	ListAssets(ctx context.Context, userID string) ([]*domain.Asset, error)
}

// AssetHandler handles asset-related HTTP requests.
type AssetHandler struct {
	assetUC AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetUC AssetService) *AssetHandler {
	return &AssetHandler{assetUC: assetUC}
}

// Create creates a new asset and resynchronizes the snapshot series.
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asset, err := h.assetUC.CreateAsset(r.Context(), req.ToUseCaseInput(currentUserID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create asset", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AssetFromDomain(asset))
}

// Get retrieves an asset by ID.
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing asset ID", "")
		return
	}

	asset, err := h.assetUC.GetAsset(r.Context(), currentUserID(r), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get asset", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AssetFromDomain(asset))
}

// Update updates an asset and resynchronizes the snapshot series.
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing asset ID", "")
		return
	}

	var req dto.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asset, err := h.assetUC.UpdateAsset(r.Context(), req.ToUseCaseInput(currentUserID(r), id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update asset", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AssetFromDomain(asset))
}

// Delete deletes an asset and resynchronizes the snapshot series.
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing asset ID", "")
		return
	}

	if err := h.assetUC.DeleteAsset(r.Context(), currentUserID(r), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete asset", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DeletedResponse{Deleted: true})
}

// List lists the current user's assets.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetUC.ListAssets(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list assets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AssetsFromDomain(assets))
}
