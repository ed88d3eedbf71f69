package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"portal/internal/config"
	"portal/internal/crypto"
	"portal/internal/repository"
	"portal/internal/server"
	"portal/internal/token"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	log := logrus.New()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Session signing key must exist before any token operation
	key, err := crypto.LoadSigningKey(cfg.Session.KeyFile)
	if err != nil {
		logger.Fatal("Failed to load signing key", zap.Error(err))
	}

	codec := token.NewCodec(key, time.Duration(cfg.Session.LifetimeSeconds)*time.Second)

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Initialize and run the server
	srv := server.NewServer(db, cfg, codec, logger, log)
	srv.Run(cfg.Server.Port)
}
