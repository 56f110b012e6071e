package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/manifoldco/promptui"

	"stock_input/internal/feature/chartinput/domain"
	"stock_input/internal/feature/chartinput/domain/validation"
	"stock_input/internal/feature/chartinput/usecase"
)

// fieldPrompt は1項目分の対話入力の定義です。
type fieldPrompt struct {
	field string
	label string
	valid func(string) bool
	err   error
	set   func(raw *usecase.RawChartQuery, v string)
}

func fieldPrompts() []fieldPrompt {
	return []fieldPrompt{
		{
			field: domain.FieldSymbol, label: "Symbol (e.g. AAPL)",
			valid: validation.ValidateSymbol, err: domain.ErrInvalidSymbol,
			set: func(r *usecase.RawChartQuery, v string) { r.Symbol = v },
		},
		{
			field: domain.FieldChartType, label: "Chart type (1=bar, 2=line)",
			valid: validation.ValidateChartType, err: domain.ErrInvalidChartType,
			set: func(r *usecase.RawChartQuery, v string) { r.ChartType = v },
		},
		{
			field: domain.FieldTimeSeries, label: "Time series (1=intraday, 2=daily, 3=weekly, 4=monthly)",
			valid: validation.ValidateTimeSeries, err: domain.ErrInvalidTimeSeries,
			set: func(r *usecase.RawChartQuery, v string) { r.TimeSeries = v },
		},
		{
			field: domain.FieldStartDate, label: "Start date (YYYY-MM-DD)",
			valid: validation.ValidateDate, err: domain.ErrInvalidStartDate,
			set: func(r *usecase.RawChartQuery, v string) { r.StartDate = v },
		},
		{
			field: domain.FieldEndDate, label: "End date (YYYY-MM-DD)",
			valid: validation.ValidateDate, err: domain.ErrInvalidEndDate,
			set: func(r *usecase.RawChartQuery, v string) { r.EndDate = v },
		},
	}
}

// validateFunc は述語を promptui.ValidateFunc に変換します。
func (p fieldPrompt) validateFunc() promptui.ValidateFunc {
	return func(s string) error {
		if !p.valid(s) {
			return p.err
		}
		return nil
	}
}

type promptCmd struct {
	uc     Validator
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewPromptCmd は各項目を対話的に入力させる prompt サブコマンドを生成します。
func NewPromptCmd(uc Validator, stdin io.ReadCloser, stdout io.WriteCloser) subcommands.Command {
	return &promptCmd{uc: uc, stdin: stdin, stdout: stdout}
}

func (*promptCmd) Name() string     { return "prompt" }
func (*promptCmd) Synopsis() string { return "enter a chart query interactively" }
func (*promptCmd) Usage() string {
	return `prompt

  Asks for each field in turn and re-prompts until the value is valid.
`
}

func (*promptCmd) SetFlags(*flag.FlagSet) {}

func (c *promptCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var raw usecase.RawChartQuery
	for _, p := range fieldPrompts() {
		prompt := promptui.Prompt{
			Label:    p.label,
			Validate: p.validateFunc(),
			Stdin:    c.stdin,
			Stdout:   c.stdout,
		}
		v, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return subcommands.ExitFailure
			}
			fmt.Fprintf(c.stdout, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		p.set(&raw, v)
	}

	// 日付の前後関係など項目をまたぐ検証
	q, err := c.uc.Validate(ctx, raw)
	if err != nil {
		fmt.Fprintf(c.stdout, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(c.stdout, "symbol=%s chart_type=%s time_series=%s interval=%s start_date=%s end_date=%s\n",
		q.Symbol, q.ChartType, q.TimeSeries, q.TimeSeries.Interval(),
		q.StartDate.Format(validation.DateLayout), q.EndDate.Format(validation.DateLayout))
	return subcommands.ExitSuccess
}
