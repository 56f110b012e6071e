// Package dto はchartinputフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// ChartQueryRequest は /chart-queries/validate のリクエストです。
// 値の検証はusecaseでまとめて行うため、ここではバインドのみを行います。
type ChartQueryRequest struct {
	Symbol     string `form:"symbol" json:"symbol"`
	ChartType  string `form:"chart_type" json:"chart_type"`
	TimeSeries string `form:"time_series" json:"time_series"`
	StartDate  string `form:"start_date" json:"start_date"`
	EndDate    string `form:"end_date" json:"end_date"`
}

// ChartQueryResponse は検証済みのチャートクエリを表すレスポンスDTOです。
type ChartQueryResponse struct {
	Symbol         string `json:"symbol"`
	ChartType      int    `json:"chart_type"`
	ChartTypeName  string `json:"chart_type_name"` // "bar" / "line"
	TimeSeries     int    `json:"time_series"`
	TimeSeriesName string `json:"time_series_name"` // "intraday" など
	Interval       string `json:"interval"`         // ローソク足の時間間隔 ("1day" など)
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// ValidationErrorResponse は検証失敗時のレスポンスDTOです。
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// ErrorResponse は汎用のエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
