package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rogue-server/internal/config"
	"rogue-server/internal/server"
	"rogue-server/internal/version"
	"rogue-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger.Init()

	configPath := flag.String("config", "", "путь к YAML-конфигурации (пусто - значения по умолчанию)")
	addr := flag.String("addr", "", "адрес сервера, перекрывает конфигурацию")
	seed := flag.Int64("seed", 0, "фиксированный сид генерации, перекрывает конфигурацию")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Config load failed")
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	logger.Log.WithFields(logrus.Fields{
		"version": version.String(),
		"addr":    cfg.Server.Addr,
	}).Info("Starting rogue server")

	srv := server.NewServer(cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Log.WithError(err).Fatal("Server failed")
		}
	case sig := <-stop:
		logger.Log.WithField("signal", sig.String()).Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Log.WithError(err).Error("Graceful shutdown failed")
		}
	}
}
