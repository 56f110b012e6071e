package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stock_input/internal/feature/symbollist/domain/entity"
	"stock_input/internal/feature/symbollist/transport/http/dto"
	"stock_input/internal/feature/symbollist/usecase"

	"github.com/gin-gonic/gin"
)

// SymbolUsecase は銘柄レジストリに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
	RegisterSymbol(ctx context.Context, s entity.Symbol) error
}

// SymbolHandler は銘柄レジストリに関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は有効な銘柄の一覧を取得するAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{Code: s.Code, Name: s.Name})
	}
	c.JSON(http.StatusOK, out)
}

// Register は銘柄をレジストリに登録（または更新）するAPIです。
// - リクエストJSONをバインドし、codeは symbol タグで形式を検証
// - バリデーションエラー時は400を返却
// - 保存失敗時は500を返却
// - 成功時は201を返却
func (h *SymbolHandler) Register(c *gin.Context) {
	var req dto.RegisterSymbolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register symbol validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.uc.RegisterSymbol(c.Request.Context(), entity.Symbol{
		Code:    req.Code,
		Name:    req.Name,
		Market:  req.Market,
		SortKey: req.SortKey,
	})
	if errors.Is(err, usecase.ErrInvalidSymbolCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		slog.Error("register symbol failed", "error", err, "code", req.Code)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register symbol"})
		return
	}

	slog.Info("symbol registered", "code", req.Code, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SymbolItem{Code: req.Code, Name: req.Name})
}
