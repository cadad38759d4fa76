package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

// requireFieldError asserts err is a ValidationError naming field among its causes.
func requireFieldError(t *testing.T, err error, field string) *apperrors.ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	for _, c := range vErr.Causes {
		if c.Field == field {
			return vErr
		}
	}
	t.Fatalf("no cause for field %q in %v", field, vErr.Causes)
	return nil
}
