package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/cakeshop/internal/buildinfo"
	"github.com/dmitrijs2005/cakeshop/internal/cli"
	"github.com/dmitrijs2005/cakeshop/internal/config"
	"github.com/dmitrijs2005/cakeshop/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(cfg.LogLevel, os.Stderr)

	app, closeFn, err := cli.Open(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeFn(); err != nil {
			logger.Error(context.Background(), "close store", "error", err)
		}
	}()

	app.Run(ctx)
}
