package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// log is replaced once the configuration is known, see runExtract.
var log = zap.NewNop()

func prepareLogger(level string) (*zap.Logger, error) {
	switch level {
	case "none":
		return zap.NewNop(), nil
	case "debug":
		return zap.NewDevelopmentConfig().Build()
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
		return cfg.Build()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:            "segmap",
		Usage:           "extract EDI message grammar from guideline PDFs",
		HideHelpCommand: true,
		Commands: []*cli.Command{
			extractCmd(),
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
