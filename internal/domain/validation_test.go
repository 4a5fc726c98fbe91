package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Checking"))
	assert.NoError(t, ValidateName("  padded  "))

	assert.ErrorIs(t, ValidateName(""), ErrInvalidName)
	assert.ErrorIs(t, ValidateName("   "), ErrInvalidName)
	assert.ErrorIs(t, ValidateName(strings.Repeat("x", MaxNameLength+1)), ErrInvalidName)
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("USD"))
	assert.NoError(t, ValidateCurrency("eur"))

	assert.ErrorIs(t, ValidateCurrency("XYZ"), ErrInvalidCurrency)
	assert.ErrorIs(t, ValidateCurrency(""), ErrInvalidCurrency)
}

func TestValidateAmount(t *testing.T) {
	d, err := ValidateAmount("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", d.String())

	d, err = ValidateAmount(" -10 ")
	require.NoError(t, err)
	assert.Equal(t, "-10", d.String())

	_, err = ValidateAmount("abc")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("a.b+tag@sub.domain.io"))

	assert.ErrorIs(t, ValidateEmail("not-an-email"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail("missing@tld"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail(""), ErrInvalidEmail)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("long-enough"))

	assert.ErrorIs(t, ValidatePassword("short"), ErrPasswordTooWeak)
	assert.ErrorIs(t, ValidatePassword(strings.Repeat("x", MaxPasswordLength+1)), ErrPasswordTooWeak)
}

func TestValidatePagination(t *testing.T) {
	limit, offset := ValidatePagination(0, -5)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 0, offset)

	limit, offset = ValidatePagination(5000, 10)
	assert.Equal(t, 1000, limit)
	assert.Equal(t, 10, offset)

	limit, offset = ValidatePagination(25, 100)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 100, offset)
}
