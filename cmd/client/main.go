package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/buildinfo"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/cli"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/config"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	reg := prometheus.NewRegistry()
	metrics := api.NewMetrics(reg)

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error(ctx, "metrics endpoint stopped", "err", err)
			}
		}()
	}

	app, err := cli.NewApp(ctx, cfg, logger, metrics)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
