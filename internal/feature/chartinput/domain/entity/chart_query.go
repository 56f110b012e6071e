// Package entity defines the domain models for the chartinput feature.
package entity

import (
	"fmt"
	"time"
)

// ChartType selects one of the two chart rendering modes.
type ChartType int

const (
	ChartTypeBar  ChartType = 1
	ChartTypeLine ChartType = 2
)

// String returns the lowercase name of the chart type (e.g., "bar").
func (c ChartType) String() string {
	switch c {
	case ChartTypeBar:
		return "bar"
	case ChartTypeLine:
		return "line"
	default:
		return fmt.Sprintf("ChartType(%d)", int(c))
	}
}

// TimeSeries selects one of the four aggregation granularities.
type TimeSeries int

const (
	TimeSeriesIntraday TimeSeries = 1
	TimeSeriesDaily    TimeSeries = 2
	TimeSeriesWeekly   TimeSeries = 3
	TimeSeriesMonthly  TimeSeries = 4
)

// String returns the lowercase name of the time series (e.g., "daily").
func (ts TimeSeries) String() string {
	switch ts {
	case TimeSeriesIntraday:
		return "intraday"
	case TimeSeriesDaily:
		return "daily"
	case TimeSeriesWeekly:
		return "weekly"
	case TimeSeriesMonthly:
		return "monthly"
	default:
		return fmt.Sprintf("TimeSeries(%d)", int(ts))
	}
}

// Interval returns the candle interval label used by the market data layer
// ("1h", "1day", "1week", "1month"). Unknown values return "".
func (ts TimeSeries) Interval() string {
	switch ts {
	case TimeSeriesIntraday:
		return "1h"
	case TimeSeriesDaily:
		return "1day"
	case TimeSeriesWeekly:
		return "1week"
	case TimeSeriesMonthly:
		return "1month"
	default:
		return ""
	}
}

// ChartQuery is a fully validated chart request.
type ChartQuery struct {
	Symbol     string     // Stock ticker symbol (e.g., "AAPL")
	ChartType  ChartType  // Rendering mode
	TimeSeries TimeSeries // Aggregation granularity
	StartDate  time.Time  // First day of the range, midnight UTC
	EndDate    time.Time  // Last day of the range, midnight UTC
}
