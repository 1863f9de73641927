// Package main - Entry point for the fabric-price API server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"fabric-price/adapters/catalog"
	httpadapter "fabric-price/adapters/http"
	"fabric-price/api"
	"fabric-price/internal/config"
	"fabric-price/internal/logging"
)

var version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "config file (default is $HOME/.fabric-price.yaml)")
	addr := flag.String("addr", "", "server address (overrides http.addr)")
	flag.Parse()

	if err := run(*cfgPath, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "fabric-price-server: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, addr string) error {
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.HTTP.Addr = addr
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	calc, err := catalog.NewCalculator(ctx, cfg)
	if err != nil {
		return err
	}

	logger := logging.Named("api")
	server := api.NewServer(calc, api.Options{
		Version: version,
		Logger:  logger,
		Metrics: cfg.HTTP.Metrics,
	})

	logger.Info("starting fabric-price server",
		zap.String("version", version),
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("currency", cfg.Pricing.Currency.String()),
		zap.Bool("metrics", cfg.HTTP.Metrics))

	return httpadapter.New(server, httpadapter.ConfigFrom(cfg.HTTP), logging.Named("http")).Run(ctx)
}
