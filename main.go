package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"dashboard-engine/internal/handler"
	"dashboard-engine/internal/logger"
	"dashboard-engine/internal/metrics"
	"dashboard-engine/internal/refresh"
	"dashboard-engine/internal/store"
	"dashboard-engine/internal/utils"
	"dashboard-engine/internal/worktime"
)

func main() {
	_ = godotenv.Load(".env")
	l := logger.Setup()

	db, err := utils.OpenPostgresFromEnv()
	if err != nil {
		l.Error("db_open_error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		l.Error("db_ping_error", "err", err)
	} else {
		l.Info("db_ping_ok")
	}
	st := store.AttachDB(db)

	rc := utils.OpenRedisFromEnv()
	if rc == nil {
		l.Info("redis_disabled")
	} else if err := rc.Ping(context.Background()).Err(); err != nil {
		l.Error("redis_ping_error", "err", err)
	} else {
		l.Info("redis_ping_ok")
	}

	ref := refresh.New(st, rc, worktime.System, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ref.Run(ctx)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	h := handler.New(ref, worktime.System, metrics.Handler())

	l.Info("listening", "addr", addr)
	if err := fasthttp.ListenAndServe(addr, h.Handle); err != nil {
		l.Error("server_error", "err", err)
		os.Exit(1)
	}
}
