package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxNotesLength = 500

// Transaction is a single ledger entry: one movement of a token affecting a portfolio.
// Instances are immutable; use NewTransaction, UpdateTransaction and
// MarkTransactionDeleted to obtain new versions.
type Transaction struct {
	TransactionID        string           `json:"transactionID"`
	PortfolioID          string           `json:"portfolioID"`
	TokenSymbol          string           `json:"tokenSymbol"`
	Type                 TransactionType  `json:"type"`
	Amount               decimal.Decimal  `json:"amount"` // Signed; see ValidateAmount
	Price                *decimal.Decimal `json:"price,omitempty"`
	Fees                 decimal.Decimal  `json:"fees"`
	CashFlow             decimal.Decimal  `json:"cashFlow"` // Derived from type, amount, price and fees
	Timestamp            time.Time        `json:"timestamp"`
	ExternalID           *string          `json:"externalID,omitempty"` // Correlates the two legs of a swap
	Notes                *string          `json:"notes,omitempty"`
	PortfolioValueBefore *decimal.Decimal `json:"portfolioValueBefore,omitempty"`
	PortfolioValueAfter  *decimal.Decimal `json:"portfolioValueAfter,omitempty"`
	AuditFields
}

// TransactionInput is the raw data accepted when recording a new transaction.
type TransactionInput struct {
	TokenSymbol         string
	Type                TransactionType
	Amount              decimal.Decimal
	Price               *decimal.Decimal
	Fees                decimal.Decimal
	Timestamp           time.Time // Zero means now
	ExternalID          *string
	Notes               *string
	PortfolioValueAfter *decimal.Decimal
}

// TransactionPatch lists the fields an update may change; nil means unchanged.
// The transaction type is fixed at creation.
type TransactionPatch struct {
	TokenSymbol         *string
	Amount              *decimal.Decimal
	Price               *decimal.Decimal
	Fees                *decimal.Decimal
	Timestamp           *time.Time
	ExternalID          *string
	Notes               *string
	PortfolioValueAfter *decimal.Decimal
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.TokenSymbol == nil && p.Amount == nil && p.Price == nil && p.Fees == nil &&
		p.Timestamp == nil && p.ExternalID == nil && p.Notes == nil && p.PortfolioValueAfter == nil
}

// NewTransaction validates in and records it against portfolioID.
// valueBefore, when known, snapshots the portfolio value prior to the movement.
func NewTransaction(portfolioID string, in TransactionInput, createdBy string, valueBefore *decimal.Decimal) (Transaction, error) {
	now := time.Now()
	ts := in.Timestamp
	if ts.IsZero() {
		ts = now
	}

	txn := Transaction{
		TransactionID:        uuid.NewString(),
		PortfolioID:          portfolioID,
		TokenSymbol:          strings.ToUpper(strings.TrimSpace(in.TokenSymbol)),
		Type:                 in.Type,
		Amount:               in.Amount,
		Price:                in.Price,
		Fees:                 in.Fees,
		Timestamp:            ts,
		ExternalID:           in.ExternalID,
		Notes:                in.Notes,
		PortfolioValueBefore: valueBefore,
		PortfolioValueAfter:  in.PortfolioValueAfter,
		AuditFields:          newAuditFields(createdBy, now),
	}

	var errs fieldErrors
	if portfolioID == "" {
		errs.add("portfolioID", "portfolio is required")
	}
	validateTransactionFields(txn, &errs)
	if err := errs.err("failed to create transaction"); err != nil {
		return Transaction{}, err
	}

	txn.CashFlow = CalculateCashFlow(txn.Type, txn.Amount, txn.Price, txn.Fees)
	return txn, nil
}

// UpdateTransaction merges patch onto existing and returns the new version.
// CashFlow is recomputed only when amount, price or fees actually change.
func UpdateTransaction(existing Transaction, patch TransactionPatch, updatedBy string) (Transaction, error) {
	const op = "failed to update transaction"
	if patch.IsEmpty() {
		var errs fieldErrors
		errs.add("patch", "at least one field must be provided")
		return Transaction{}, errs.err(op)
	}

	recompute := decimalChanged(patch.Amount, existing.Amount) ||
		decimalChanged(patch.Fees, existing.Fees) ||
		optionalDecimalChanged(patch.Price, existing.Price)

	next := existing
	if patch.TokenSymbol != nil {
		next.TokenSymbol = strings.ToUpper(strings.TrimSpace(*patch.TokenSymbol))
	}
	if patch.Amount != nil {
		next.Amount = *patch.Amount
	}
	if patch.Price != nil {
		next.Price = patch.Price
	}
	if patch.Fees != nil {
		next.Fees = *patch.Fees
	}
	if patch.Timestamp != nil {
		next.Timestamp = *patch.Timestamp
	}
	if patch.ExternalID != nil {
		next.ExternalID = patch.ExternalID
	}
	if patch.Notes != nil {
		next.Notes = patch.Notes
	}
	if patch.PortfolioValueAfter != nil {
		next.PortfolioValueAfter = patch.PortfolioValueAfter
	}

	var errs fieldErrors
	validateTransactionFields(next, &errs)
	if err := errs.err(op); err != nil {
		return Transaction{}, err
	}

	if recompute {
		next.CashFlow = CalculateCashFlow(next.Type, next.Amount, next.Price, next.Fees)
	}
	next.AuditFields = existing.AuditFields.touched(updatedBy, time.Now())
	return next, nil
}

// MarkTransactionDeleted soft-deletes a transaction. Amounts and cash flow are left
// intact so the audit trail stays complete.
func MarkTransactionDeleted(existing Transaction, deletedBy string) Transaction {
	next := existing
	next.AuditFields = existing.AuditFields.deleted(deletedBy, time.Now())
	return next
}

func validateTransactionFields(t Transaction, errs *fieldErrors) {
	if !ValidateTokenSymbol(t.TokenSymbol) {
		errs.add("tokenSymbol", "must be 1-20 uppercase letters or digits")
	}
	if !t.Type.Valid() {
		errs.add("type", "must be one of BUY, SELL, DEPOSIT, WITHDRAWAL, SWAP")
	} else if err := ValidateAmount(t.Type, t.Amount); err != nil {
		errs.add("amount", err.Error())
	}
	if t.Price == nil {
		if t.Type.RequiresPrice() {
			errs.add("price", "price is required for "+string(t.Type)+" transactions")
		}
	} else if !t.Price.IsPositive() {
		errs.add("price", "must be positive")
	}
	if t.Fees.IsNegative() {
		errs.add("fees", "must not be negative")
	}
	if err := ValidateTransactionDate(t.Timestamp); err != nil {
		errs.add("timestamp", err.Error())
	}
	if t.Notes != nil && len(*t.Notes) > maxNotesLength {
		errs.add("notes", "must be at most 500 characters")
	}
	if t.PortfolioValueBefore != nil && t.PortfolioValueBefore.IsNegative() {
		errs.add("portfolioValueBefore", "must not be negative")
	}
	if t.PortfolioValueAfter != nil && t.PortfolioValueAfter.IsNegative() {
		errs.add("portfolioValueAfter", "must not be negative")
	}
}

// Quantity is the absolute number of tokens moved.
func (t Transaction) Quantity() decimal.Decimal {
	return t.Amount.Abs()
}

// TotalValue is |amount| * price, or nil when no price was recorded.
func (t Transaction) TotalValue() *decimal.Decimal {
	if t.Price == nil {
		return nil
	}
	v := t.Quantity().Mul(*t.Price)
	return &v
}

// TotalCost is the notional value plus fees, or nil when no price was recorded.
func (t Transaction) TotalCost() *decimal.Decimal {
	v := t.TotalValue()
	if v == nil {
		return nil
	}
	c := v.Add(t.Fees)
	return &c
}

// PortfolioImpact is the change in portfolio value across the transaction.
// It is nil unless both snapshots are present.
func (t Transaction) PortfolioImpact() *decimal.Decimal {
	if t.PortfolioValueBefore == nil || t.PortfolioValueAfter == nil {
		return nil
	}
	d := t.PortfolioValueAfter.Sub(*t.PortfolioValueBefore)
	return &d
}

func (t Transaction) IsPositiveTransaction() bool {
	return t.Type == Buy || t.Type == Deposit
}

func (t Transaction) IsNegativeTransaction() bool {
	return t.Type == Sell || t.Type == Withdrawal
}

func (t Transaction) IsSwapTransaction() bool {
	return t.Type == Swap
}
