package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/abacus"
	httpAdapter "github.com/aretw0/abacus/internal/adapters/http"
	loamAdapter "github.com/aretw0/abacus/internal/adapters/loam"
	memoryAdapter "github.com/aretw0/abacus/internal/adapters/memory"
	redisAdapter "github.com/aretw0/abacus/internal/adapters/redis"
	"github.com/aretw0/abacus/internal/config"
	"github.com/aretw0/abacus/internal/observability"
	"github.com/aretw0/abacus/internal/presentation/tui"
	"github.com/aretw0/abacus/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP JSON API server",
	Long: `Starts the conversion service as an HTTP server with JSON endpoints,
Prometheus metrics and an optional Redis-backed result cache.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		cfg := config.Default()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			var err error
			cfg, err = config.Load(path)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		// Metrics
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics := observability.NewMetrics(reg)

		// Cache: Redis when configured, in-process otherwise.
		var cache ports.Cache
		if cfg.Redis.Enabled {
			rc := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithTTL(time.Duration(cfg.Redis.TTL)))
			if err := rc.Ping(cmd.Context()); err != nil {
				fmt.Printf("Error reaching redis at %s: %v\n", cfg.Redis.Addr, err)
				os.Exit(1)
			}
			cache = rc
			logger.Info("using redis cache", "addr", cfg.Redis.Addr)
		} else {
			cache = memoryAdapter.New()
		}

		opts := []abacus.Option{
			abacus.WithLogger(logger),
			abacus.WithCache(cache),
			abacus.WithHooks(metrics.Hooks()),
		}

		if cfg.HistoryDir != "" {
			journal, err := loamAdapter.New(cfg.HistoryDir)
			if err != nil {
				fmt.Printf("Error opening history: %v\n", err)
				os.Exit(1)
			}
			opts = append(opts, abacus.WithHistory(journal))
			logger.Info("journaling conversions", "dir", cfg.HistoryDir)
		}

		svc := abacus.New(opts...)
		handler := httpAdapter.NewHandler(svc, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		tui.PrintBanner(abacus.Version)

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting abacus server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("abacus server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides config)")
}
