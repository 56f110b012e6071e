package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"stock_input/internal/feature/chartinput/domain/validation"
)

// CodeLister は登録済みの有効銘柄コードを返します。
type CodeLister interface {
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// OpenCodeLister はレジストリへ接続してCodeListerを返します。
// 返されるcloseは接続を閉じます。
type OpenCodeLister func(ctx context.Context) (lister CodeLister, closeFn func(), err error)

type auditCmd struct {
	open   OpenCodeLister
	out    io.Writer
	errOut io.Writer
}

// NewAuditCmd はレジストリ内の銘柄コードを検証する audit サブコマンドを生成します。
func NewAuditCmd(open OpenCodeLister, out, errOut io.Writer) subcommands.Command {
	return &auditCmd{open: open, out: out, errOut: errOut}
}

func (*auditCmd) Name() string     { return "audit" }
func (*auditCmd) Synopsis() string { return "report active registry codes that are not valid symbols" }
func (*auditCmd) Usage() string {
	return `audit

  Loads every active symbol code from the registry and prints those that
  are not 1-7 uppercase letters. Exits 1 when any are found.
`
}

func (*auditCmd) SetFlags(*flag.FlagSet) {}

func (c *auditCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lister, closeFn, err := c.open(ctx)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error opening registry: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	codes, err := lister.ListActiveCodes(ctx)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error loading symbols: %v\n", err)
		return subcommands.ExitFailure
	}

	invalid := 0
	for _, code := range codes {
		if !validation.ValidateSymbol(code) {
			fmt.Fprintf(c.out, "invalid: %q\n", code)
			invalid++
		}
	}
	fmt.Fprintf(c.out, "checked %d symbols, %d invalid\n", len(codes), invalid)

	if invalid > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
