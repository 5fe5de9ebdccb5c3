package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("name", "", Required).
		Field("tenant_id", "not-a-uuid", UUID).
		Field("currency", "euros", CurrencyCode)

	require.True(t, v.HasErrors())
	err := v.Error()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "tenant_id")
	assert.Contains(t, err.Error(), "currency")
}

func TestValidatorCleanPass(t *testing.T) {
	v := NewValidator().
		Field("name", "Acme Corp", Required, MaxLength(255)).
		Field("tenant_id", uuid.New().String(), UUID).
		Field("currency", "EUR", CurrencyCode).
		Field("amount", 100.0, NonNegative)

	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
	assert.NoError(t, ValidateAndReturnError(v))
}

func TestRequiredRule(t *testing.T) {
	assert.NotNil(t, Required("f", nil))
	assert.NotNil(t, Required("f", "   "))
	assert.NotNil(t, Required("f", uuid.Nil))
	assert.Nil(t, Required("f", "x"))
	assert.Nil(t, Required("f", uuid.New()))
}

func TestMaxLengthRule(t *testing.T) {
	rule := MaxLength(3)
	assert.Nil(t, rule("f", "abc"))
	assert.NotNil(t, rule("f", "abcd"))
	// rune count, not byte count
	assert.Nil(t, rule("f", "äöü"))
}

func TestNonNegativeRule(t *testing.T) {
	assert.Nil(t, NonNegative("f", 0.0))
	assert.Nil(t, NonNegative("f", 10.5))
	assert.NotNil(t, NonNegative("f", -0.01))
}
