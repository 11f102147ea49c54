package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rohith-kulkarni/qwipo-app/internal/cache"
	"github.com/Rohith-kulkarni/qwipo-app/internal/config"
	"github.com/Rohith-kulkarni/qwipo-app/internal/infra"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const redisConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		logrus.Fatal(err)
	}

	profileCache, closeCache, err := buildProfileCache(cfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer closeCache()

	e, err := infra.Router(infra.RouterCfg{
		APIURL:        cfg.APICfg.URL,
		APITimeout:    cfg.APICfg.Timeout,
		PageSize:      cfg.APICfg.PageSize,
		RedirectDelay: cfg.APICfg.RedirectDelay,
		SecureCookie:  cfg.HTTPCfg.SecureCookie,
	}, profileCache, logger)
	if err != nil {
		logger.Fatalf("failed to build router - %v", err)
	}

	start(e, cfg.HTTPCfg, logger)
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q - %w", level, err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(lvl)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(lvl)
	return logger, nil
}

func buildProfileCache(cfg config.Config) (cache.ProfileCache, func(), error) {
	if cfg.RedisCfg.Addr == "" {
		logrus.Info("REDIS_ADDR is not set, view state is kept in memory")
		return cache.NewMemoryProfileCache(cfg.ViewStateTTL), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("failed to close redis client - %v", err)
		}
	}
	return cache.NewRedisProfileCache(client, cfg.ViewStateTTL), closeFn, nil
}

func start(e *echo.Echo, cfg config.HTTPCfg, logger *logrus.Logger) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("listening on port %d", cfg.Port)
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			logger.Errorf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}
