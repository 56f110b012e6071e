package handler_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"

	"stock_input/internal/feature/chartinput/domain/entity"
	"stock_input/internal/feature/chartinput/transport/handler"
	"stock_input/internal/feature/chartinput/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockChartInputUsecase はChartInputUsecaseインターフェースのモック実装です。
type mockChartInputUsecase struct {
	ValidateFunc func(ctx context.Context, raw usecase.RawChartQuery) (entity.ChartQuery, error)
}

func (m *mockChartInputUsecase) Validate(ctx context.Context, raw usecase.RawChartQuery) (entity.ChartQuery, error) {
	return m.ValidateFunc(ctx, raw)
}

func setupRouter(uc handler.ChartInputUsecase) *gin.Engine {
	h := handler.NewChartInputHandler(uc)
	r := gin.New()
	r.GET("/chart-queries/validate", h.ValidateQuery)
	r.POST("/chart-queries/validate", h.ValidateJSON)
	return r
}

// TestChartInputHandler_ValidateQuery は実際のusecaseと組み合わせたGETリクエストの処理を検証します。
func TestChartInputHandler_ValidateQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success: valid query",
			url:            "/chart-queries/validate?symbol=AAPL&chart_type=1&time_series=2&start_date=2023-11-19&end_date=2023-12-31",
			expectedStatus: http.StatusOK,
			expectedBody: `{"symbol":"AAPL","chart_type":1,"chart_type_name":"bar","time_series":2,"time_series_name":"daily",
				"interval":"1day","start_date":"2023-11-19","end_date":"2023-12-31"}`,
		},
		{
			name:           "failure: invalid month and lowercase symbol",
			url:            "/chart-queries/validate?symbol=apple&chart_type=2&time_series=4&start_date=2023-13-19&end_date=2023-12-31",
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"error":"invalid chart query","fields":{
				"symbol":"symbol must be 1-7 uppercase letters",
				"start_date":"start date must be a valid YYYY-MM-DD date"}}`,
		},
		{
			name:           "failure: missing parameters",
			url:            "/chart-queries/validate",
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"error":"invalid chart query","fields":{
				"symbol":"symbol must be 1-7 uppercase letters",
				"chart_type":"chart type must be 1 or 2",
				"time_series":"time series must be between 1 and 4",
				"start_date":"start date must be a valid YYYY-MM-DD date",
				"end_date":"end date must be a valid YYYY-MM-DD date"}}`,
		},
	}

	router := setupRouter(usecase.NewChartInputUsecase(nil, nil))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestChartInputHandler_ValidateJSON はPOSTリクエストのバインドと検証を確認します。
func TestChartInputHandler_ValidateJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success: valid body",
			body:           `{"symbol":"MSFT","chart_type":"2","time_series":"1","start_date":"2024-02-29","end_date":"2024-03-01"}`,
			expectedStatus: http.StatusOK,
			expectedBody: `{"symbol":"MSFT","chart_type":2,"chart_type_name":"line","time_series":1,"time_series_name":"intraday",
				"interval":"1h","start_date":"2024-02-29","end_date":"2024-03-01"}`,
		},
		{
			name:           "failure: reversed range",
			body:           `{"symbol":"MSFT","chart_type":"2","time_series":"1","start_date":"2024-03-01","end_date":"2024-02-29"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid chart query","fields":{"end_date":"end date must not be before start date"}}`,
		},
		{
			name:           "failure: malformed json",
			body:           `{"symbol":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "failure: numeric chart type is not a string",
			body:           `{"symbol":"MSFT","chart_type":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
	}

	router := setupRouter(usecase.NewChartInputUsecase(nil, nil))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/chart-queries/validate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestChartInputHandler_RegistryFailure はusecaseが検証以外のエラーを返した場合に502となることを検証します。
func TestChartInputHandler_RegistryFailure(t *testing.T) {
	prev := slog.Default()
	slog.SetDefault(slogt.New(t))
	t.Cleanup(func() { slog.SetDefault(prev) })

	router := setupRouter(&mockChartInputUsecase{
		ValidateFunc: func(ctx context.Context, raw usecase.RawChartQuery) (entity.ChartQuery, error) {
			assert.Equal(t, "AAPL", raw.Symbol)
			return entity.ChartQuery{}, errors.New("connection refused")
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chart-queries/validate?symbol=AAPL", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"symbol registry unavailable"}`, w.Body.String())
}
