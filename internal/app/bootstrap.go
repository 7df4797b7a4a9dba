package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grouporder/config"
	"grouporder/internal/api"
	"grouporder/internal/auth"
	"grouporder/internal/ports"
	statemem "grouporder/internal/state/memory"
	"grouporder/internal/usecase"
	"grouporder/internal/ws"
	"grouporder/pkg/logger"
	"grouporder/pkg/metrics"
	"grouporder/pkg/telemetry"
	"grouporder/pkg/validate"
)

// App — собранная подсистема синхронизации и её компоненты.
type App struct {
	Logger  ports.Logger
	Orders  *usecase.OrderSyncService
	Catalog *usecase.CatalogService
	State   ports.OrderState
	Live    ports.LiveChannel

	metricsSrv *http.Server
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Источник токена и REST-клиент Order Service.
	tokens := auth.NewStaticTokenSource(ctx, cfg.Auth.Token, logg)
	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout, tokens, logg)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Сборка доменного слоя: стор состояния, валидатор, координатор.
	state := statemem.NewOrderState()
	validator := validate.NewSnapshotValidator()
	orders := usecase.NewOrderSyncService(client, state, logg, validator)
	catalog := usecase.NewCatalogService(client, logg)

	// Live-канал поверх WebSocket.
	live := ws.NewManager(ws.Config{
		BaseURL:           wsBaseURL(cfg),
		HeartbeatInterval: cfg.WS.HeartbeatInterval,
		ReconnectDelay:    cfg.WS.ReconnectDelay,
		MaxReconnects:     cfg.WS.MaxReconnects,
		HandshakeTimeout:  cfg.WS.HandshakeTimeout,
	}, tokens, logg)

	// Эндпоинт /metrics.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	app := &App{
		Logger:     logg,
		Orders:     orders,
		Catalog:    catalog,
		State:      state,
		Live:       live,
		metricsSrv: metricsSrv,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		live.Disconnect()
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — поднимает сервер метрик и ждёт отмены контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "metrics server starting (addr=%s)", a.metricsSrv.Addr)
		if err := a.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	a.Live.Disconnect()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.metricsSrv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}

// wsBaseURL — адрес live-канала: явный из конфигурации либо выведенный
// из API.BaseURL заменой схемы (http→ws) и обрезкой пути /api.
func wsBaseURL(cfg *config.Config) string {
	if cfg.WS.BaseURL != "" {
		return cfg.WS.BaseURL
	}

	base := cfg.API.BaseURL
	base = strings.TrimSuffix(strings.TrimRight(base, "/"), "/api")
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	default:
		return base
	}
}
