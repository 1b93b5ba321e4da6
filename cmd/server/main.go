package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"kintacos/internal/commons"
	"kintacos/internal/config"
	"kintacos/internal/infrastructure/logger"
	mongoinfra "kintacos/internal/infrastructure/mongo"
	mysqlinfra "kintacos/internal/infrastructure/mysql"
	"kintacos/internal/order"
	"kintacos/internal/order/provider"
	"kintacos/internal/order/repository"
	"kintacos/internal/server"
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

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	store, closeStore, err := newStore(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("opening store", zap.Error(err))
	}
	defer closeStore()

	orderCtrl := order.NewModule(store, zapLogger)
	router := server.NewRouter(orderCtrl, zapLogger)

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

	// The server bounds the drain with the configured shutdown timeout.
	if err := srv.Shutdown(context.Background()); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// newStore opens the configured provider backend. The returned closer
// releases whatever connection the backend holds.
func newStore(cfg *config.Config, zapLogger *zap.Logger) (repository.Provider, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendMySQL:
		db, err := mysqlinfra.NewConnection(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := mysqlinfra.EnsureSchema(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		zapLogger.Info("mysql store connected", zap.String("database", cfg.Database.Name))
		return provider.NewMySQLProvider(db), func() { db.Close() }, nil

	case config.BackendMemory:
		zapLogger.Warn("using in-memory store, orders will not survive a restart")
		return provider.NewMemoryProvider(), func() {}, nil

	default:
		client, err := mongoinfra.NewClient(context.Background(), cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		zapLogger.Info("mongo store connected",
			zap.String("database", cfg.Mongo.Database),
			zap.String("collection", cfg.Mongo.Collection),
		)
		closer := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				zapLogger.Error("disconnecting mongo", zap.Error(err))
			}
		}
		return provider.NewMongoProvider(mongoinfra.Collection(client, cfg.Mongo)), closer, nil
	}
}
