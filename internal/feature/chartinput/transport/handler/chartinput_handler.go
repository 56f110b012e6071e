// Package handler はchartinputフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_input/internal/feature/chartinput/domain"
	"stock_input/internal/feature/chartinput/domain/entity"
	"stock_input/internal/feature/chartinput/domain/validation"
	"stock_input/internal/feature/chartinput/transport/http/dto"
	"stock_input/internal/feature/chartinput/usecase"
)

// ChartInputUsecase はチャート入力値検証のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartInputUsecase interface {
	Validate(ctx context.Context, raw usecase.RawChartQuery) (entity.ChartQuery, error)
}

// ChartInputHandler はチャート入力値検証のHTTPリクエストを処理します。
type ChartInputHandler struct {
	uc ChartInputUsecase
}

// NewChartInputHandler は指定されたusecaseでChartInputHandlerの新しいインスタンスを生成します。
func NewChartInputHandler(uc ChartInputUsecase) *ChartInputHandler {
	return &ChartInputHandler{uc: uc}
}

// ValidateQuery はクエリパラメータで受け取った入力値を検証します。
//
// エンドポイント例:
// GET /chart-queries/validate?symbol=AAPL&chart_type=1&time_series=2&start_date=2023-11-19&end_date=2023-12-31
func (h *ChartInputHandler) ValidateQuery(c *gin.Context) {
	var req dto.ChartQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("chart query bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	h.validate(c, req)
}

// ValidateJSON はJSONボディで受け取った入力値を検証します。
//
// エンドポイント例:
// POST /chart-queries/validate {"symbol":"AAPL","chart_type":"1",...}
func (h *ChartInputHandler) ValidateJSON(c *gin.Context) {
	var req dto.ChartQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("chart query bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	h.validate(c, req)
}

// validate はusecaseを呼び出し、結果をHTTPレスポンスに変換します。
// - 検証エラー時は400とフィールドごとのメッセージを返却
// - 銘柄レジストリの障害時は502を返却
// - 成功時は正規化したクエリを200で返却
func (h *ChartInputHandler) validate(c *gin.Context, req dto.ChartQueryRequest) {
	q, err := h.uc.Validate(c.Request.Context(), usecase.RawChartQuery{
		Symbol:     req.Symbol,
		ChartType:  req.ChartType,
		TimeSeries: req.TimeSeries,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			slog.Info("chart query rejected", "fields", verr.Messages(), "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
				Error:  "invalid chart query",
				Fields: verr.Messages(),
			})
			return
		}
		slog.Error("chart query validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "symbol registry unavailable"})
		return
	}

	c.JSON(http.StatusOK, toResponse(q))
}

func toResponse(q entity.ChartQuery) dto.ChartQueryResponse {
	return dto.ChartQueryResponse{
		Symbol:         q.Symbol,
		ChartType:      int(q.ChartType),
		ChartTypeName:  q.ChartType.String(),
		TimeSeries:     int(q.TimeSeries),
		TimeSeriesName: q.TimeSeries.String(),
		Interval:       q.TimeSeries.Interval(),
		StartDate:      q.StartDate.Format(validation.DateLayout),
		EndDate:        q.EndDate.Format(validation.DateLayout),
	}
}
