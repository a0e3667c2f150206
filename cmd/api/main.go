package main

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/PratikDhanave/fb-app-events-adapter/internal/config"
	"github.com/PratikDhanave/fb-app-events-adapter/internal/facebook"
	"github.com/PratikDhanave/fb-app-events-adapter/internal/httpserver"
	"github.com/PratikDhanave/fb-app-events-adapter/internal/integrations"
	"github.com/PratikDhanave/fb-app-events-adapter/internal/store"
)

// main boots the service: config → logger → DB → schema → integrations → HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	// App Events calls are recorded in Postgres.
	db, err := store.NewPostgresStore(cfg.DBURL)
	if err != nil {
		logger.Fatal("connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		logger.Fatal("apply schema", zap.Error(err))
	}

	reg := integrations.NewRegistry(func(tenantID string) (facebook.AppEventsSink, facebook.SettingsSink) {
		return db.Sinks(tenantID, logger)
	}, cfg.Destination, logger)

	router := httpserver.NewRouter(cfg.APIKeys, db, reg)

	logger.Info("server started", zap.String("addr", cfg.ListenAddr))
	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
