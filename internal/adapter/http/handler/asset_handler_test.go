package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/adapter/http/dto"
	"github.com/iho/networth/internal/domain"
	"github.com/iho/networth/internal/usecase"
)

type assetServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateAssetInput) (*domain.Asset, error)
	updateFn func(ctx context.Context, input usecase.UpdateAssetInput) (*domain.Asset, error)
	deleteFn func(ctx context.Context, userID, id string) error
	getFn    func(ctx context.Context, userID, id string) (*domain.Asset, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.Asset, error)
}

func (s *assetServiceStub) CreateAsset(ctx context.Context, input usecase.CreateAssetInput) (*domain.Asset, error) {
	return s.createFn(ctx, input)
}

func (s *assetServiceStub) UpdateAsset(ctx context.Context, input usecase.UpdateAssetInput) (*domain.Asset, error) {
	return s.updateFn(ctx, input)
}

func (s *assetServiceStub) DeleteAsset(ctx context.Context, userID, id string) error {
	return s.deleteFn(ctx, userID, id)
}

func (s *assetServiceStub) GetAsset(ctx context.Context, userID, id string) (*domain.Asset, error) {
	return s.getFn(ctx, userID, id)
}

func (s *assetServiceStub) ListAssets(ctx context.Context, userID string) ([]*domain.Asset, error) {
	return s.listFn(ctx, userID)
}

func TestAssetHandler_Create_Success(t *testing.T) {
	asset := &domain.Asset{
		ID:       "a1",
		UserID:   DefaultUserID,
		Type:     "Investment",
		Name:     "Index fund",
		Value:    decimal.NewFromInt(1000),
		Currency: "USD",
		Date:     "2024-01-10",
	}

	var captured usecase.CreateAssetInput
	h := NewAssetHandler(&assetServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAssetInput) (*domain.Asset, error) {
			captured = input
			return asset, nil
		},
	})

	body, _ := json.Marshal(dto.CreateAssetRequest{
		Type:     "Investment",
		Name:     "Index fund",
		Value:    decimal.NewFromInt(1000),
		Currency: "USD",
		Date:     "2024-01-10",
	})

	req := httptest.NewRequest(http.MethodPost, "/assets", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.UserID != DefaultUserID {
		t.Errorf("expected default user without auth, got %q", captured.UserID)
	}
	if captured.Name != "Index fund" || captured.Date != "2024-01-10" {
		t.Errorf("expected input to match request, got %+v", captured)
	}

	var resp dto.AssetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "a1" {
		t.Errorf("expected asset ID a1, got %s", resp.ID)
	}
}

func TestAssetHandler_Create_InvalidJSON(t *testing.T) {
	h := NewAssetHandler(&assetServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAssetInput) (*domain.Asset, error) {
			t.Fatal("CreateAsset should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/assets", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAssetHandler_Create_ValidationError(t *testing.T) {
	h := NewAssetHandler(&assetServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAssetInput) (*domain.Asset, error) {
			return nil, domain.ErrInvalidCurrency
		},
	})

	body, _ := json.Marshal(dto.CreateAssetRequest{Name: "Gold", Currency: "XYZ"})
	req := httptest.NewRequest(http.MethodPost, "/assets", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAssetHandler_Update(t *testing.T) {
	value := decimal.NewFromInt(2000)
	h := NewAssetHandler(&assetServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdateAssetInput) (*domain.Asset, error) {
			if input.ID != "a1" {
				t.Fatalf("expected id a1, got %s", input.ID)
			}
			if input.Value == nil || !input.Value.Equal(value) {
				t.Fatalf("expected value 2000, got %v", input.Value)
			}
			return &domain.Asset{ID: "a1", Value: value}, nil
		},
	})

	body, _ := json.Marshal(dto.UpdateAssetRequest{Value: &value})
	req := httptest.NewRequest(http.MethodPut, "/assets/a1", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "a1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAssetHandler_Update_NotOwner(t *testing.T) {
	h := NewAssetHandler(&assetServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdateAssetInput) (*domain.Asset, error) {
			return nil, domain.ErrNotOwner
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/assets/a1", bytes.NewReader([]byte("{}")))
	req = setChiURLParam(req, "id", "a1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAssetHandler_Delete(t *testing.T) {
	deleted := false
	h := NewAssetHandler(&assetServiceStub{
		deleteFn: func(ctx context.Context, userID, id string) error {
			deleted = true
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/assets/a1", nil)
	req = setChiURLParam(req, "id", "a1")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !deleted {
		t.Error("expected DeleteAsset called")
	}
}

func TestAssetHandler_Get_NotFound(t *testing.T) {
	h := NewAssetHandler(&assetServiceStub{
		getFn: func(ctx context.Context, userID, id string) (*domain.Asset, error) {
			return nil, domain.ErrAssetNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/assets/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAssetHandler_List(t *testing.T) {
	h := NewAssetHandler(&assetServiceStub{
		listFn: func(ctx context.Context, userID string) ([]*domain.Asset, error) {
			return []*domain.Asset{
				{ID: "a1", Value: decimal.NewFromInt(100)},
				{ID: "a2", Value: decimal.NewFromInt(200)},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/assets", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.AssetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(resp))
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
