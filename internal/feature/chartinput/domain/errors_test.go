package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidationError はフィールドエラーの集約と errors.Is による判定を検証します。
func TestValidationError(t *testing.T) {
	t.Parallel()

	verr := NewValidationError()
	assert.False(t, verr.HasErrors())

	verr.Add(FieldSymbol, ErrInvalidSymbol)
	verr.Add(FieldEndDate, ErrInvalidEndDate)
	// 同じフィールドへの2件目は無視される
	verr.Add(FieldEndDate, ErrDateRangeReversed)

	assert.True(t, verr.HasErrors())
	assert.True(t, errors.Is(verr, ErrInvalidSymbol))
	assert.True(t, errors.Is(verr, ErrInvalidEndDate))
	assert.False(t, errors.Is(verr, ErrDateRangeReversed))

	assert.Equal(t,
		"invalid chart query: end_date: end date must be a valid YYYY-MM-DD date; symbol: symbol must be 1-7 uppercase letters",
		verr.Error())
	assert.Equal(t, map[string]string{
		FieldSymbol:  ErrInvalidSymbol.Error(),
		FieldEndDate: ErrInvalidEndDate.Error(),
	}, verr.Messages())

	var target *ValidationError
	assert.True(t, errors.As(error(verr), &target))
}
