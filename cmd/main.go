package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JMURv/go-attractions/internal/auth"
	"github.com/JMURv/go-attractions/internal/cache/redis"
	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/ctrl"
	hdl "github.com/JMURv/go-attractions/internal/hdl/http"
	"github.com/JMURv/go-attractions/internal/observability/metrics/prometheus"
	"github.com/JMURv/go-attractions/internal/observability/tracing/jaeger"
	"github.com/JMURv/go-attractions/internal/repo/db"
	"github.com/JMURv/go-attractions/internal/repo/s3"
	"github.com/JMURv/go-attractions/internal/smtp"
	"go.uber.org/zap"
)

const configPath = ".env"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	default:
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

//	@title			Attractions API
//	@version		1.0
//	@description	Tourist attractions directory: accounts, biometric preference, avatars, attractions and categories.
//	@host			localhost:3001
//	@BasePath		/
func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	au := auth.New(conf)
	svc := ctrl.New(au, repo, cache, s3.New(conf.S3), smtp.New(conf))
	h := hdl.New(au, svc, conf)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	cancel()
}
