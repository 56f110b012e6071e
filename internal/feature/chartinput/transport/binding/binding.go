// Package binding registers the chart input predicates as go-playground/validator
// tags so request DTOs can use them in `binding:"..."` struct tags.
package binding

import (
	"errors"
	"fmt"

	ginbinding "github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"stock_input/internal/feature/chartinput/domain/validation"
)

// Tag names usable in struct tags, e.g. `binding:"required,symbol"`.
const (
	TagSymbol     = "symbol"
	TagChartType  = "charttype"
	TagTimeSeries = "timeseries"
	TagDate       = "isodate"
)

// ErrUnsupportedEngine is returned when gin's validator engine is not a *validator.Validate.
var ErrUnsupportedEngine = errors.New("gin validator engine is not go-playground/validator")

var predicates = map[string]func(string) bool{
	TagSymbol:     validation.ValidateSymbol,
	TagChartType:  validation.ValidateChartType,
	TagTimeSeries: validation.ValidateTimeSeries,
	TagDate:       validation.ValidateDate,
}

// Register adds the chart input tags to v.
func Register(v *validator.Validate) error {
	for tag, pred := range predicates {
		if err := v.RegisterValidation(tag, stringFunc(pred)); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin adds the chart input tags to gin's default validator engine.
func RegisterWithGin() error {
	v, ok := ginbinding.Validator.Engine().(*validator.Validate)
	if !ok {
		return ErrUnsupportedEngine
	}
	return Register(v)
}

// stringFunc adapts a string predicate to a validator.Func. Non-string fields are rejected.
func stringFunc(pred func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return pred(s)
	}
}
