package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"grouporder/config"
	"grouporder/internal/app"
	"grouporder/internal/domain"
)

func main() {
	_ = godotenv.Load(".env.local")

	code := flag.String("code", "", "код заказа для наблюдения (6 символов)")
	status := flag.String("status", "", "фильтр списка по статусу (OPEN|LOCKED|ORDERED|CLOSED)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	go func() {
		if err := a.Run(ctx); err != nil {
			a.Logger.Warnf(ctx, "app stopped: %v", err)
			cancel()
		}
	}()

	// Начальная выборка списка.
	if _, err := a.Orders.FetchOrders(ctx, *status); err != nil {
		a.Logger.Warnf(ctx, "initial list fetch failed: %v", err)
	}

	// Наблюдение за конкретным заказом: снапшот по коду + live-канал.
	if *code != "" {
		order, err := a.Orders.FetchOrderByCode(ctx, *code)
		if err != nil {
			a.Logger.Errorf(ctx, "order fetch failed code=%s err=%v", *code, err)
			return
		}

		a.Live.Connect(ctx, order.ID, func(ctx context.Context, o *domain.Order) {
			a.Orders.ApplyPushUpdate(ctx, o)
			a.Logger.Infof(ctx, "order update code=%s status=%s items=%d total=%s",
				o.Code, o.Status, len(o.Items), o.TotalCost)
		})
	}

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	cancel()
	a.Live.Disconnect()
}
