package binding

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	Symbol     string `validate:"symbol"`
	ChartType  string `validate:"charttype"`
	TimeSeries string `validate:"timeseries"`
	StartDate  string `validate:"isodate"`
}

type wrongKind struct {
	Symbol int `validate:"symbol"`
}

// TestRegister は登録したタグが各述語と同じ判定をすることを検証します。
func TestRegister(t *testing.T) {
	t.Parallel()

	v := validator.New()
	require.NoError(t, Register(v))

	tests := []struct {
		name       string
		req        taggedRequest
		wantFailed []string
	}{
		{
			name: "success: all tags pass",
			req:  taggedRequest{Symbol: "AAPL", ChartType: "1", TimeSeries: "4", StartDate: "2023-11-19"},
		},
		{
			name:       "failure: every tag fails",
			req:        taggedRequest{Symbol: "apple", ChartType: "0", TimeSeries: "5", StartDate: "2023-02-30"},
			wantFailed: []string{"symbol", "charttype", "timeseries", "isodate"},
		},
		{
			name:       "failure: only the date fails",
			req:        taggedRequest{Symbol: "MSFT", ChartType: "2", TimeSeries: "1", StartDate: "2023/11/19"},
			wantFailed: []string{"isodate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(tt.req)
			if len(tt.wantFailed) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			got := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				got = append(got, fe.Tag())
			}
			assert.ElementsMatch(t, tt.wantFailed, got)
		})
	}
}

// TestRegister_NonStringField は文字列以外のフィールドが拒否されることを検証します。
func TestRegister_NonStringField(t *testing.T) {
	t.Parallel()

	v := validator.New()
	require.NoError(t, Register(v))

	assert.Error(t, v.Struct(wrongKind{Symbol: 1}))
}

// TestRegisterWithGin はginのデフォルトエンジンに登録できることを検証します。
func TestRegisterWithGin(t *testing.T) {
	assert.NoError(t, RegisterWithGin())
}
