package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buyInput() domain.TransactionInput {
	return domain.TransactionInput{
		TokenSymbol: "btc",
		Type:        domain.Buy,
		Amount:      dec("0.5"),
		Price:       decimalPtr(dec("45000")),
		Fees:        dec("50"),
		Timestamp:   time.Now().Add(-time.Hour),
	}
}

func TestNewTransaction(t *testing.T) {
	txn, err := domain.NewTransaction("portfolio-1", buyInput(), "user-1", decimalPtr(dec("1000")))
	require.NoError(t, err)

	assert.NotEmpty(t, txn.TransactionID)
	assert.Equal(t, "portfolio-1", txn.PortfolioID)
	assert.Equal(t, "BTC", txn.TokenSymbol)
	assertDecimal(t, "-22550", txn.CashFlow)
	require.NotNil(t, txn.PortfolioValueBefore)
	assertDecimal(t, "1000", *txn.PortfolioValueBefore)
	assert.Equal(t, "user-1", txn.CreatedBy)
	assert.Equal(t, "user-1", txn.LastUpdatedBy)
	assert.True(t, txn.IsActive())
}

func TestNewTransaction_DefaultsTimestampToNow(t *testing.T) {
	in := buyInput()
	in.Timestamp = time.Time{}

	before := time.Now()
	txn, err := domain.NewTransaction("portfolio-1", in, "user-1", nil)
	require.NoError(t, err)
	assert.False(t, txn.Timestamp.Before(before))
}

func TestNewTransaction_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *domain.TransactionInput)
		field  string
	}{
		{"price required for buy", func(in *domain.TransactionInput) { in.Price = nil }, "price"},
		{"price must be positive", func(in *domain.TransactionInput) { in.Price = decimalPtr(dec("-1")) }, "price"},
		{"amount sign", func(in *domain.TransactionInput) { in.Amount = dec("-0.5") }, "amount"},
		{"negative fees", func(in *domain.TransactionInput) { in.Fees = dec("-1") }, "fees"},
		{"future timestamp", func(in *domain.TransactionInput) { in.Timestamp = time.Now().Add(time.Hour) }, "timestamp"},
		{"bad symbol", func(in *domain.TransactionInput) { in.TokenSymbol = "BTC-USD" }, "tokenSymbol"},
		{"unknown type", func(in *domain.TransactionInput) { in.Type = "GIFT" }, "type"},
		{"notes too long", func(in *domain.TransactionInput) { in.Notes = stringPtr(string(make([]byte, 501))) }, "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := buyInput()
			tt.modify(&in)
			_, err := domain.NewTransaction("portfolio-1", in, "user-1", nil)
			vErr := requireFieldError(t, err, tt.field)
			assert.Equal(t, "failed to create transaction", vErr.Operation)
		})
	}
}

func TestNewTransaction_DepositWithoutPrice(t *testing.T) {
	txn, err := domain.NewTransaction("portfolio-1", domain.TransactionInput{
		TokenSymbol: "ETH",
		Type:        domain.Deposit,
		Amount:      dec("2"),
	}, "user-1", nil)
	require.NoError(t, err)
	assert.True(t, txn.CashFlow.IsZero())
	assert.Nil(t, txn.TotalValue())
	assert.Nil(t, txn.TotalCost())
}

func TestUpdateTransaction_RecomputesCashFlowOnAmountChange(t *testing.T) {
	txn, err := domain.NewTransaction("portfolio-1", buyInput(), "user-1", nil)
	require.NoError(t, err)

	updated, err := domain.UpdateTransaction(txn, domain.TransactionPatch{Amount: decimalPtr(dec("1"))}, "user-2")
	require.NoError(t, err)

	assertDecimal(t, "-45050", updated.CashFlow)
	assertDecimal(t, "-22550", txn.CashFlow)
	assert.Equal(t, txn.TransactionID, updated.TransactionID)
	assert.Equal(t, "user-2", updated.LastUpdatedBy)
	assert.Equal(t, "user-1", updated.CreatedBy)
}

func TestUpdateTransaction_KeepsCashFlowWhenValuesUnchanged(t *testing.T) {
	txn, err := domain.NewTransaction("portfolio-1", buyInput(), "user-1", nil)
	require.NoError(t, err)
	// A stored cash flow that differs from a fresh computation must survive
	// updates that do not touch amount, price or fees.
	txn.CashFlow = dec("-1")

	updated, err := domain.UpdateTransaction(txn, domain.TransactionPatch{
		Notes:  stringPtr("moved to cold storage"),
		Amount: decimalPtr(dec("0.50")),
	}, "user-1")
	require.NoError(t, err)
	assertDecimal(t, "-1", updated.CashFlow)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "moved to cold storage", *updated.Notes)
}

func TestUpdateTransaction_Rejects(t *testing.T) {
	txn, err := domain.NewTransaction("portfolio-1", buyInput(), "user-1", nil)
	require.NoError(t, err)

	_, err = domain.UpdateTransaction(txn, domain.TransactionPatch{}, "user-1")
	vErr := requireFieldError(t, err, "patch")
	assert.Equal(t, "failed to update transaction", vErr.Operation)

	_, err = domain.UpdateTransaction(txn, domain.TransactionPatch{Amount: decimalPtr(dec("-1"))}, "user-1")
	requireFieldError(t, err, "amount")
}

func TestMarkTransactionDeleted(t *testing.T) {
	txn, err := domain.NewTransaction("portfolio-1", buyInput(), "user-1", nil)
	require.NoError(t, err)

	deleted := domain.MarkTransactionDeleted(txn, "user-9")

	assert.True(t, txn.IsActive())
	assert.False(t, deleted.IsActive())
	require.NotNil(t, deleted.DeletedBy)
	assert.Equal(t, "user-9", *deleted.DeletedBy)
	assert.True(t, txn.Amount.Equal(deleted.Amount))
	assert.True(t, txn.CashFlow.Equal(deleted.CashFlow))
	assert.Equal(t, txn.Price, deleted.Price)
	assert.Equal(t, txn.LastUpdatedAt, deleted.LastUpdatedAt)
}

func TestTransaction_Accessors(t *testing.T) {
	txn := domain.Transaction{
		Type:                 domain.Sell,
		Amount:               dec("-2"),
		Price:                decimalPtr(dec("2500")),
		Fees:                 dec("25"),
		PortfolioValueBefore: decimalPtr(dec("10000")),
		PortfolioValueAfter:  decimalPtr(dec("9500")),
	}

	assertDecimal(t, "2", txn.Quantity())
	require.NotNil(t, txn.TotalValue())
	assertDecimal(t, "5000", *txn.TotalValue())
	require.NotNil(t, txn.TotalCost())
	assertDecimal(t, "5025", *txn.TotalCost())
	require.NotNil(t, txn.PortfolioImpact())
	assertDecimal(t, "-500", *txn.PortfolioImpact())
	assert.True(t, txn.IsNegativeTransaction())
	assert.False(t, txn.IsPositiveTransaction())
	assert.False(t, txn.IsSwapTransaction())

	txn.PortfolioValueBefore = nil
	assert.Nil(t, txn.PortfolioImpact())
}

func TestTransaction_Classification(t *testing.T) {
	tests := []struct {
		kind     domain.TransactionType
		positive bool
		negative bool
		swap     bool
	}{
		{domain.Buy, true, false, false},
		{domain.Deposit, true, false, false},
		{domain.Sell, false, true, false},
		{domain.Withdrawal, false, true, false},
		{domain.Swap, false, false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			txn := domain.Transaction{Type: tt.kind}
			assert.Equal(t, tt.positive, txn.IsPositiveTransaction())
			assert.Equal(t, tt.negative, txn.IsNegativeTransaction())
			assert.Equal(t, tt.swap, txn.IsSwapTransaction())
		})
	}
}
