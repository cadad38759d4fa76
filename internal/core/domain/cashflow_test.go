package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCashFlow(t *testing.T) {
	tests := []struct {
		name   string
		kind   domain.TransactionType
		amount string
		price  *decimal.Decimal
		fees   string
		want   string
	}{
		{name: "buy spends notional plus fees", kind: domain.Buy, amount: "0.5", price: decimalPtr(dec("45000")), fees: "50", want: "-22550"},
		{name: "sell raises notional minus fees", kind: domain.Sell, amount: "-2", price: decimalPtr(dec("2500")), fees: "25", want: "4975"},
		{name: "buy without fees", kind: domain.Buy, amount: "3", price: decimalPtr(dec("10")), fees: "0", want: "-30"},
		{name: "deposit has no cash effect", kind: domain.Deposit, amount: "5", price: decimalPtr(dec("100")), fees: "1", want: "0"},
		{name: "withdrawal has no cash effect", kind: domain.Withdrawal, amount: "-5", price: decimalPtr(dec("100")), fees: "1", want: "0"},
		{name: "swap has no cash effect", kind: domain.Swap, amount: "-5", price: decimalPtr(dec("100")), fees: "1", want: "0"},
		{name: "buy without price", kind: domain.Buy, amount: "1", price: nil, fees: "10", want: "0"},
		{name: "sell without price", kind: domain.Sell, amount: "-1", price: nil, fees: "10", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CalculateCashFlow(tt.kind, dec(tt.amount), tt.price, dec(tt.fees))
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.TransactionType
		amount  string
		wantErr bool
	}{
		{"buy positive", domain.Buy, "0.5", false},
		{"buy negative", domain.Buy, "-0.5", true},
		{"deposit positive", domain.Deposit, "1", false},
		{"deposit negative", domain.Deposit, "-1", true},
		{"sell negative", domain.Sell, "-2", false},
		{"sell positive", domain.Sell, "2", true},
		{"withdrawal negative", domain.Withdrawal, "-2", false},
		{"withdrawal positive", domain.Withdrawal, "2", true},
		{"swap positive", domain.Swap, "3", false},
		{"swap negative", domain.Swap, "-3", false},
		{"zero amount", domain.Buy, "0", true},
		{"unknown type", domain.TransactionType("GIFT"), "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateAmount(tt.kind, dec(tt.amount))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTransactionDate(t *testing.T) {
	assert.NoError(t, domain.ValidateTransactionDate(time.Now()))
	assert.NoError(t, domain.ValidateTransactionDate(time.Now().Add(-24*time.Hour)))
	assert.NoError(t, domain.ValidateTransactionDate(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)))

	err := domain.ValidateTransactionDate(time.Now().Add(time.Second))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "future")
}

func TestTransactionType_RequiresPrice(t *testing.T) {
	assert.True(t, domain.Buy.RequiresPrice())
	assert.True(t, domain.Sell.RequiresPrice())
	assert.True(t, domain.Swap.RequiresPrice())
	assert.False(t, domain.Deposit.RequiresPrice())
	assert.False(t, domain.Withdrawal.RequiresPrice())
}
