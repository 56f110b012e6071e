package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stock_input/internal/feature/chartinput/domain"
	"stock_input/internal/feature/chartinput/usecase"
)

func TestFieldPrompts_Validate(t *testing.T) {
	t.Parallel()

	prompts := map[string]fieldPrompt{}
	for _, p := range fieldPrompts() {
		prompts[p.field] = p
	}
	assert.Len(t, prompts, len(domain.QueryFields()))

	tests := []struct {
		field   string
		input   string
		wantErr error
	}{
		{domain.FieldSymbol, "AAPL", nil},
		{domain.FieldSymbol, "TOOLONGX", domain.ErrInvalidSymbol},
		{domain.FieldChartType, "2", nil},
		{domain.FieldChartType, "3", domain.ErrInvalidChartType},
		{domain.FieldTimeSeries, "4", nil},
		{domain.FieldTimeSeries, "0", domain.ErrInvalidTimeSeries},
		{domain.FieldStartDate, "2024-02-29", nil},
		{domain.FieldStartDate, "2023-02-29", domain.ErrInvalidStartDate},
		{domain.FieldEndDate, "2023-12-31", nil},
		{domain.FieldEndDate, "2023/12/31", domain.ErrInvalidEndDate},
	}

	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.input, func(t *testing.T) {
			t.Parallel()

			err := prompts[tt.field].validateFunc()(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFieldPrompts_SetFillsEveryField(t *testing.T) {
	t.Parallel()

	var raw usecase.RawChartQuery
	for _, p := range fieldPrompts() {
		p.set(&raw, p.field)
	}

	assert.Equal(t, usecase.RawChartQuery{
		Symbol:     domain.FieldSymbol,
		ChartType:  domain.FieldChartType,
		TimeSeries: domain.FieldTimeSeries,
		StartDate:  domain.FieldStartDate,
		EndDate:    domain.FieldEndDate,
	}, raw)
}
