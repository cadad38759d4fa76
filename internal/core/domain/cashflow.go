package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of ledger movement recorded against a portfolio.
type TransactionType string

const (
	Buy        TransactionType = "BUY"
	Sell       TransactionType = "SELL"
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Swap       TransactionType = "SWAP"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Buy, Sell, Deposit, Withdrawal, Swap:
		return true
	}
	return false
}

// RequiresPrice reports whether a transaction of this type must carry a unit price.
func (t TransactionType) RequiresPrice() bool {
	return t == Buy || t == Sell || t == Swap
}

var (
	errAmountZero      = errors.New("amount must not be zero")
	errAmountPositive  = errors.New("amount must be positive")
	errAmountNegative  = errors.New("amount must be negative")
	errFutureTimestamp = errors.New("transaction date cannot be in the future")
	errUnknownTxnType  = errors.New("unknown transaction type")
)

// CalculateCashFlow returns the signed amount of cash a transaction moves.
// Buying spends cash (negative), selling raises it net of fees. Deposits,
// withdrawals and swaps move tokens in kind and have no direct cash effect.
func CalculateCashFlow(kind TransactionType, amount decimal.Decimal, price *decimal.Decimal, fees decimal.Decimal) decimal.Decimal {
	if price == nil {
		return decimal.Zero
	}
	notional := amount.Abs().Mul(*price)
	switch kind {
	case Buy:
		return notional.Add(fees).Neg()
	case Sell:
		return notional.Sub(fees)
	default:
		return decimal.Zero
	}
}

// ValidateAmount checks the sign convention of amount for the given kind:
// BUY and DEPOSIT add tokens, SELL and WITHDRAWAL remove them, SWAP legs go either way.
func ValidateAmount(kind TransactionType, amount decimal.Decimal) error {
	if amount.IsZero() {
		return errAmountZero
	}
	switch kind {
	case Buy, Deposit:
		if !amount.IsPositive() {
			return fmt.Errorf("%w for %s transactions", errAmountPositive, kind)
		}
	case Sell, Withdrawal:
		if !amount.IsNegative() {
			return fmt.Errorf("%w for %s transactions", errAmountNegative, kind)
		}
	case Swap:
	default:
		return fmt.Errorf("%w %q", errUnknownTxnType, kind)
	}
	return nil
}

// ValidateTransactionDate rejects timestamps later than now.
func ValidateTransactionDate(ts time.Time) error {
	if ts.After(time.Now()) {
		return errFutureTimestamp
	}
	return nil
}
