package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/academy-scheduler/internal/audit"
	"github.com/BruksfildServices01/academy-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/academy-scheduler/internal/db"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/academy-scheduler/internal/logger"
	"github.com/BruksfildServices01/academy-scheduler/internal/middleware"
	"github.com/BruksfildServices01/academy-scheduler/internal/routes"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var snapshots cache.SnapshotCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("redis unavailable", zap.Error(err))
		}
		defer rdb.Close()
		snapshots = cache.NewRedisSnapshotCache(rdb, cfg.CacheTTL)
		log.Info("availability cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}

	if cfg.S3Bucket == "" {
		log.Warn("S3_BUCKET not set, studio photo uploads will fail")
	}
	objects := storage.NewS3Store(cfg)

	auditor := audit.NewDispatcher(audit.New(db), log)
	defer auditor.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)
	go limiter.Sweep(ctx.Done())

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.Metrics(),
		middleware.CORSMiddleware(cfg.CORSOrigins...),
		limiter.Middleware(),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Log:     log,
		Cache:   snapshots,
		Objects: objects,
		Audit:   auditor,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
