// Package cli implements the chartinput command-line subcommands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"stock_input/internal/feature/chartinput/domain"
	"stock_input/internal/feature/chartinput/domain/entity"
	"stock_input/internal/feature/chartinput/domain/validation"
	"stock_input/internal/feature/chartinput/usecase"
)

// Validator はチャート入力を検証するユースケースです。
type Validator interface {
	Validate(ctx context.Context, raw usecase.RawChartQuery) (entity.ChartQuery, error)
}

type checkCmd struct {
	uc     Validator
	out    io.Writer
	errOut io.Writer

	raw usecase.RawChartQuery
}

// NewCheckCmd は5つの入力値を検証する check サブコマンドを生成します。
func NewCheckCmd(uc Validator, out, errOut io.Writer) subcommands.Command {
	return &checkCmd{uc: uc, out: out, errOut: errOut}
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a chart query given as flags" }
func (*checkCmd) Usage() string {
	return `check -symbol <SYMBOL> -chart-type <1|2> -time-series <1-4> -start <YYYY-MM-DD> -end <YYYY-MM-DD>

  Validates every field and prints one line per field.
  Exits 0 when all fields are valid and 1 otherwise.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.raw.Symbol, "symbol", "", "ticker symbol, 1-7 uppercase letters")
	f.StringVar(&c.raw.ChartType, "chart-type", "", "chart type: 1 (bar) or 2 (line)")
	f.StringVar(&c.raw.TimeSeries, "time-series", "", "time series: 1 (intraday) to 4 (monthly)")
	f.StringVar(&c.raw.StartDate, "start", "", "start date, YYYY-MM-DD")
	f.StringVar(&c.raw.EndDate, "end", "", "end date, YYYY-MM-DD")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(c.errOut, "Error: unexpected arguments: %v\n", f.Args())
		return subcommands.ExitUsageError
	}

	q, err := c.uc.Validate(ctx, c.raw)
	var verr *domain.ValidationError
	if err != nil && !errors.As(err, &verr) {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, field := range domain.QueryFields() {
		if verr != nil {
			if ferr, bad := verr.Fields[field]; bad {
				fmt.Fprintf(c.out, "%s: invalid (%v)\n", field, ferr)
				continue
			}
		}
		fmt.Fprintf(c.out, "%s: ok\n", field)
	}

	if verr != nil {
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.out, "query: %s %s %s %s..%s\n", q.Symbol, q.ChartType, q.TimeSeries,
		q.StartDate.Format(validation.DateLayout), q.EndDate.Format(validation.DateLayout))
	return subcommands.ExitSuccess
}
