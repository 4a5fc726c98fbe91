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

// BankAccountService defines the behavior needed by BankAccountHandler.
type BankAccountService interface {
	CreateBankAccount(ctx context.Context, input usecase.CreateBankAccountInput) (*domain.BankAccount, error)
	UpdateBalances(ctx context.Context, input usecase.UpdateBalancesInput) (*domain.BankAccount, error)
	DeleteBankAccount(ctx context.Context, userID, id string) error
	ListBankAccounts(ctx context.Context, userID string) ([]*domain.BankAccount, error)
}

// BankAccountHandler handles bank account HTTP requests.
type BankAccountHandler struct {
	bankUC BankAccountService
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(bankUC BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{bankUC: bankUC}
}

// Create creates a bank account together with its companion asset record.
func (h *BankAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.bankUC.CreateBankAccount(r.Context(), req.ToUseCaseInput(currentUserID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create bank account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BankAccountFromDomain(account))
}

// Update updates a bank account's balances and resynchronizes snapshots.
func (h *BankAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bank account ID", "")
		return
	}

	var req dto.UpdateBankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.bankUC.UpdateBalances(r.Context(), req.ToUseCaseInput(currentUserID(r), id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update bank account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountFromDomain(account))
}

// Delete deletes a bank account and its companion asset.
func (h *BankAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bank account ID", "")
		return
	}

	if err := h.bankUC.DeleteBankAccount(r.Context(), currentUserID(r), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete bank account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DeletedResponse{Deleted: true})
}

// List lists the current user's bank accounts.
func (h *BankAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.bankUC.ListBankAccounts(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bank accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountsFromDomain(accounts))
}
