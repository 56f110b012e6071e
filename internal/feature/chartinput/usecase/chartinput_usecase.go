// Package usecase はチャート入力値の検証ユースケースを実装します。
package usecase

import (
	"context"
	"fmt"

	"stock_input/internal/feature/chartinput/domain"
	"stock_input/internal/feature/chartinput/domain/entity"
	"stock_input/internal/feature/chartinput/domain/validation"
)

// SymbolRegistry は有効な登録銘柄かどうかを判定するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SymbolRegistry interface {
	IsKnownSymbol(ctx context.Context, code string) (bool, error)
}

// ValidationRecorder はフィールドごとの検証結果を記録します（メトリクス用）。
type ValidationRecorder interface {
	ObserveField(field string, valid bool)
}

// RawChartQuery は利用者から受け取った未検証の入力値です。
type RawChartQuery struct {
	Symbol     string
	ChartType  string
	TimeSeries string
	StartDate  string
	EndDate    string
}

// ChartInputUsecase はチャート入力値を検証し、型付きの ChartQuery に変換します。
type ChartInputUsecase struct {
	registry SymbolRegistry
	recorder ValidationRecorder
}

// NewChartInputUsecase は ChartInputUsecase を生成します。
// registry が nil の場合は登録銘柄チェックを行わず、recorder が nil の場合は記録しません。
func NewChartInputUsecase(registry SymbolRegistry, recorder ValidationRecorder) *ChartInputUsecase {
	return &ChartInputUsecase{registry: registry, recorder: recorder}
}

// Validate は5つの入力値をすべて検証します。
// 不正なフィールドは最初の1件で打ち切らずすべて *domain.ValidationError に集約して返します。
// 銘柄レジストリの参照に失敗した場合は検証エラーではなくラップしたエラーを返します。
func (u *ChartInputUsecase) Validate(ctx context.Context, raw RawChartQuery) (entity.ChartQuery, error) {
	verr := domain.NewValidationError()
	var q entity.ChartQuery

	if validation.ValidateSymbol(raw.Symbol) {
		q.Symbol = raw.Symbol
	} else {
		verr.Add(domain.FieldSymbol, domain.ErrInvalidSymbol)
	}

	if validation.ValidateChartType(raw.ChartType) {
		n, _ := validation.ParseCode(raw.ChartType)
		q.ChartType = entity.ChartType(n)
	} else {
		verr.Add(domain.FieldChartType, domain.ErrInvalidChartType)
	}

	if validation.ValidateTimeSeries(raw.TimeSeries) {
		n, _ := validation.ParseCode(raw.TimeSeries)
		q.TimeSeries = entity.TimeSeries(n)
	} else {
		verr.Add(domain.FieldTimeSeries, domain.ErrInvalidTimeSeries)
	}

	start, startOK := validation.ParseDate(raw.StartDate)
	if !startOK {
		verr.Add(domain.FieldStartDate, domain.ErrInvalidStartDate)
	}
	end, endOK := validation.ParseDate(raw.EndDate)
	if !endOK {
		verr.Add(domain.FieldEndDate, domain.ErrInvalidEndDate)
	}
	if startOK && endOK && end.Before(start) {
		verr.Add(domain.FieldEndDate, domain.ErrDateRangeReversed)
	}
	q.StartDate, q.EndDate = start, end

	// 形式が正しい銘柄のみレジストリに問い合わせる
	if u.registry != nil && q.Symbol != "" {
		known, err := u.registry.IsKnownSymbol(ctx, q.Symbol)
		if err != nil {
			return entity.ChartQuery{}, fmt.Errorf("check symbol registry: %w", err)
		}
		if !known {
			verr.Add(domain.FieldSymbol, domain.ErrUnknownSymbol)
		}
	}

	u.record(verr)

	if verr.HasErrors() {
		return entity.ChartQuery{}, verr
	}
	return q, nil
}

func (u *ChartInputUsecase) record(verr *domain.ValidationError) {
	if u.recorder == nil {
		return
	}
	for _, f := range domain.QueryFields() {
		_, bad := verr.Fields[f]
		u.recorder.ObserveField(f, !bad)
	}
}
