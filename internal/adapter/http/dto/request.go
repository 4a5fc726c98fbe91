package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/usecase"
)

// CreateAssetRequest represents a request to create an asset.
type CreateAssetRequest struct {
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
	Date     string          `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAssetRequest) ToUseCaseInput(userID string) usecase.CreateAssetInput {
	return usecase.CreateAssetInput{
		UserID:   userID,
		Type:     r.Type,
		Name:     r.Name,
		Value:    r.Value,
		Currency: r.Currency,
		Date:     r.Date,
	}
}

// UpdateAssetRequest represents a request to update an asset. Absent fields
// are left unchanged.
type UpdateAssetRequest struct {
	Type     *string          `json:"type,omitempty"`
	Name     *string          `json:"name,omitempty"`
	Value    *decimal.Decimal `json:"value,omitempty"`
	Currency *string          `json:"currency,omitempty"`
	Date     *string          `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAssetRequest) ToUseCaseInput(userID, id string) usecase.UpdateAssetInput {
	return usecase.UpdateAssetInput{
		ID:       id,
		UserID:   userID,
		Type:     r.Type,
		Name:     r.Name,
		Value:    r.Value,
		Currency: r.Currency,
		Date:     r.Date,
	}
}

// CreateBankAccountRequest represents a request to create a bank account.
type CreateBankAccountRequest struct {
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	InitialDate    *time.Time      `json:"initial_date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBankAccountRequest) ToUseCaseInput(userID string) usecase.CreateBankAccountInput {
	input := usecase.CreateBankAccountInput{
		UserID:         userID,
		Name:           r.Name,
		InitialBalance: r.InitialBalance,
		CurrentBalance: r.CurrentBalance,
		Currency:       r.Currency,
	}
	if r.InitialDate != nil {
		input.InitialDate = *r.InitialDate
	}
	return input
}

// UpdateBankAccountRequest represents a request to update account balances.
type UpdateBankAccountRequest struct {
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
	CurrentBalance *decimal.Decimal `json:"current_balance,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateBankAccountRequest) ToUseCaseInput(userID, id string) usecase.UpdateBalancesInput {
	return usecase.UpdateBalancesInput{
		ID:             id,
		UserID:         userID,
		InitialBalance: r.InitialBalance,
		CurrentBalance: r.CurrentBalance,
	}
}

// CreateLiabilityRequest represents a request to create a liability.
type CreateLiabilityRequest struct {
	Name              string           `json:"name"`
	Category          string           `json:"category"`
	Balance           decimal.Decimal  `json:"balance"`
	InterestRate      *decimal.Decimal `json:"interest_rate,omitempty"`
	Institution       string           `json:"institution,omitempty"`
	MonthlyPayment    *decimal.Decimal `json:"monthly_payment,omitempty"`
	RemainingMonths   *int             `json:"remaining_months,omitempty"`
	IncludeInNetWorth bool             `json:"include_in_net_worth"`
	Notes             string           `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLiabilityRequest) ToUseCaseInput(userID string) usecase.CreateLiabilityInput {
	return usecase.CreateLiabilityInput{
		UserID:            userID,
		Name:              r.Name,
		Category:          r.Category,
		Balance:           r.Balance,
		InterestRate:      r.InterestRate,
		Institution:       r.Institution,
		MonthlyPayment:    r.MonthlyPayment,
		RemainingMonths:   r.RemainingMonths,
		IncludeInNetWorth: r.IncludeInNetWorth,
		Notes:             r.Notes,
	}
}

// UpdateLiabilityRequest represents a request to update a liability.
type UpdateLiabilityRequest struct {
	Name              *string          `json:"name,omitempty"`
	Category          *string          `json:"category,omitempty"`
	Balance           *decimal.Decimal `json:"balance,omitempty"`
	InterestRate      *decimal.Decimal `json:"interest_rate,omitempty"`
	Institution       *string          `json:"institution,omitempty"`
	MonthlyPayment    *decimal.Decimal `json:"monthly_payment,omitempty"`
	RemainingMonths   *int             `json:"remaining_months,omitempty"`
	IncludeInNetWorth *bool            `json:"include_in_net_worth,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateLiabilityRequest) ToUseCaseInput(userID, id string) usecase.UpdateLiabilityInput {
	return usecase.UpdateLiabilityInput{
		ID:                id,
		UserID:            userID,
		Name:              r.Name,
		Category:          r.Category,
		Balance:           r.Balance,
		InterestRate:      r.InterestRate,
		Institution:       r.Institution,
		MonthlyPayment:    r.MonthlyPayment,
		RemainingMonths:   r.RemainingMonths,
		IncludeInNetWorth: r.IncludeInNetWorth,
		Notes:             r.Notes,
	}
}

// UpdateSettingRequest represents a request to upsert one setting key.
type UpdateSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
