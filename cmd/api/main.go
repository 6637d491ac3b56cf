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
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	"github.com/BruksfildServices01/hotel-services/internal/config"
	dbpkg "github.com/BruksfildServices01/hotel-services/internal/db"
	"github.com/BruksfildServices01/hotel-services/internal/media"
	"github.com/BruksfildServices01/hotel-services/internal/middleware"
	"github.com/BruksfildServices01/hotel-services/internal/routes"
)

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {

	cfg := config.Load()
	setupLogging(cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	// ======================================================
	// SESSION STORE
	// ======================================================
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logrus.WithError(err).Fatalf("redis unreachable at %s", cfg.RedisAddr)
	}
	cancelPing()

	// ======================================================
	// MEDIA (optional)
	// ======================================================
	var store media.Store
	if s3Store := media.NewS3Store(cfg); s3Store != nil {
		store = s3Store
		logrus.WithField("bucket", cfg.S3Bucket).Info("service image uploads enabled")
	} else {
		logrus.Info("S3_BUCKET not set; service image uploads disabled")
	}

	dispatcher := audit.NewDispatcher(audit.New(db))

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Sessions: auth.NewRedisSessionStore(rdb),
		Media:    store,
		Audit:    dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("server forced to shutdown")
	}
	if err := dispatcher.Close(ctx); err != nil {
		logrus.WithError(err).Warn("audit queue not fully drained")
	}
	if err := rdb.Close(); err != nil {
		logrus.WithError(err).Warn("redis close failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logrus.Info("server stopped")
}
