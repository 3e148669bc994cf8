package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"modelforge/internal/commons"
	"modelforge/internal/config"
	"modelforge/internal/infrastructure/logger"
	"modelforge/internal/infrastructure/mysql"
	"modelforge/internal/order"
	"modelforge/internal/product"
	"modelforge/internal/server"

	"go.uber.org/zap"
)

func main() {
	var cfg *config.Config
	var err error

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err = commons.LoadConfig(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if cfg.Database.RunMigrations {
		if err := mysql.RunMigrations(db, cfg.Database.MigrationsDir); err != nil {
			zapLogger.Fatal("running migrations", zap.Error(err))
		}
		zapLogger.Info("migrations applied")
	}

	productCtrl := product.NewModule(db, zapLogger)
	createOrderCtrl, getOrderCtrl := order.NewModule(db, zapLogger)

	router := server.NewRouter(productCtrl, createOrderCtrl, getOrderCtrl, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
