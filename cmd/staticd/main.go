package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"dqx0.com/go/staticd/httpd"
	"dqx0.com/go/staticd/internal/obs"
)

func main() {
	cfgPath := flag.String("config", "staticd.yml", "path to YAML config")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil && !os.IsNotExist(err) {
		boot := zerolog.New(os.Stderr)
		boot.Error().Err(err).Str("path", *cfgPath).Msg("load config")
		os.Exit(1)
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zl := zerolog.New(os.Stderr).Level(lvl).With().
		Timestamp().Str("component", "staticd").Logger()

	reg := prometheus.NewRegistry()
	if cfg.MetricsListen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsListen, mux); err != nil {
				zl.Error().Err(err).Msg("metrics listener")
			}
		}()
	}

	s := &httpd.Server{
		Addr:         cfg.Listen,
		Root:         cfg.Root,
		ReadTimeout:  cfg.readTimeout(),
		MaxLineBytes: cfg.MaxLineBytes,
		Logger:       obs.ZerologLogger{L: zl},
		Meter:        &obs.PromMeter{Reg: reg},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe() }()
	zl.Info().Str("listen", cfg.Listen).Str("root", cfg.Root).Msg("serving")

	select {
	case err := <-errc:
		if err != nil {
			zl.Error().Err(err).Msg("serve")
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			zl.Warn().Err(err).Msg("shutdown")
		}
	}
}
