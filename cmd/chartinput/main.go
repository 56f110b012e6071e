package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"stock_input/internal/feature/chartinput/transport/cli"
	"stock_input/internal/feature/chartinput/usecase"
	"stock_input/internal/feature/symbollist/adapters"
	"stock_input/internal/platform/config"
	"stock_input/internal/platform/db"
	"stock_input/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	// 出力と混ざらないようログは標準エラーへ
	logger.Setup(os.Stderr, "text", cfg.LogLevel)

	uc := usecase.NewChartInputUsecase(nil, nil)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.Register(cli.NewCheckCmd(uc, os.Stdout, os.Stderr), "validation")
	commander.Register(cli.NewPromptCmd(uc, os.Stdin, os.Stdout), "validation")
	commander.Register(cli.NewAuditCmd(openRegistry(cfg), os.Stdout, os.Stderr), "registry")
	commander.Register(cli.NewTokenCmd(cfg.JWTSecret, os.Stdout, os.Stderr), "registry")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func openRegistry(cfg config.Config) cli.OpenCodeLister {
	return func(ctx context.Context) (cli.CodeLister, func(), error) {
		gdb, err := db.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, nil, err
		}
		return adapters.NewSymbolRepository(gdb), func() { _ = sqlDB.Close() }, nil
	}
}
