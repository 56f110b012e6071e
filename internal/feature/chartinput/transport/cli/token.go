package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/google/subcommands"

	jwtmw "stock_input/internal/platform/jwt"
)

type tokenCmd struct {
	secret string
	out    io.Writer
	errOut io.Writer

	subject string
	ttl     time.Duration
}

// NewTokenCmd は /symbols 用のBearerトークンを発行する token サブコマンドを生成します。
func NewTokenCmd(secret string, out, errOut io.Writer) subcommands.Command {
	return &tokenCmd{secret: secret, out: out, errOut: errOut}
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "issue a bearer token for the symbol registry API" }
func (*tokenCmd) Usage() string {
	return `token -subject <name> [-ttl <duration>]

  Prints a token signed with JWT_SECRET.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.subject, "subject", "", "token subject (required)")
	f.DurationVar(&c.ttl, "ttl", 24*time.Hour, "token lifetime")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.subject == "" || c.ttl <= 0 {
		fmt.Fprintln(c.errOut, "Error: -subject is required and -ttl must be positive")
		return subcommands.ExitUsageError
	}
	if c.secret == "" {
		fmt.Fprintln(c.errOut, "Error: JWT_SECRET is not set")
		return subcommands.ExitFailure
	}

	token, err := jwtmw.NewGenerator(c.secret, c.ttl).GenerateToken(c.subject)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.out, token)
	return subcommands.ExitSuccess
}
