package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"grouporder/config"
	"grouporder/internal/stub"
	"grouporder/pkg/logger"
	"grouporder/pkg/metrics"
	"grouporder/pkg/telemetry"
)

func main() {
	_ = godotenv.Load(".env.local")

	addr := flag.String("addr", ":8000", "адрес HTTP-сервера заглушки")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		panic(err)
	}
	defer func() { _ = cleanup() }()

	metrics.MustRegister()

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		shutdown, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName+"-stub", cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			otelServiceName = cfg.Tracing.ServiceName + "-stub"
			defer func() { _ = shutdown(context.Background()) }()
		}
	}

	srv := stub.NewServer(cfg.Auth.Token, logg)
	srv.SeedCatalog()

	httpSrv := &http.Server{
		Addr:    *addr,
		Handler: srv.Router(otelServiceName),
	}

	go func() {
		logg.Infof(ctx, "stub server starting (addr=%s)", *addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Errorf(ctx, "stub server stopped: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}

	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	_ = httpSrv.Shutdown(shCtx)
}
