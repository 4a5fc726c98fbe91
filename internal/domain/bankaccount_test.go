package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBankAccount_BalanceOn(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	account := &BankAccount{
		InitialBalance: decimal.NewFromInt(1000),
		CurrentBalance: decimal.NewFromInt(1500),
		InitialDate:    time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		day  time.Time
		want decimal.Decimal
	}{
		{
			name: "before opening",
			day:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want: decimal.Zero,
		},
		{
			name: "opening day",
			day:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			want: decimal.NewFromInt(1000),
		},
		{
			name: "historical day",
			day:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: decimal.NewFromInt(1000),
		},
		{
			name: "today",
			day:  today,
			want: decimal.NewFromInt(1500),
		},
		{
			name: "future day",
			day:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			want: decimal.NewFromInt(1500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := account.BalanceOn(tt.day, today); !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLiability_CountsOn(t *testing.T) {
	created := time.Date(2024, 2, 1, 16, 0, 0, 0, time.UTC)

	liability := &Liability{
		Balance:           decimal.NewFromInt(500),
		IncludeInNetWorth: true,
		CreatedAt:         created,
	}

	if liability.CountsOn(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("must not count before creation")
	}
	if !liability.CountsOn(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("must count on the creation day regardless of time of day")
	}
	if !liability.CountsOn(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("must count after creation")
	}

	liability.IncludeInNetWorth = false
	if liability.CountsOn(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("excluded liability must never count")
	}
}

func TestAsset_IsShadow(t *testing.T) {
	if !(&Asset{Type: AssetTypeBankAccount}).IsShadow() {
		t.Error("bank account typed asset must be shadow")
	}
	if (&Asset{Type: "Investment"}).IsShadow() {
		t.Error("regular asset must not be shadow")
	}
}
