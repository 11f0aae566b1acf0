package main

import (
	"github.com/dvpl/assetflow/internal/config"
	"github.com/dvpl/assetflow/internal/database"
	"github.com/dvpl/assetflow/internal/logger"
	"github.com/dvpl/assetflow/internal/server"
	"github.com/dvpl/assetflow/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DBPath, log)
	if err != nil {
		log.Fatal("falha ao abrir o banco", zap.Error(err))
	}

	st := store.New(db, log)
	r := server.NewRouter(cfg, st, log)

	addr := ":" + cfg.ServerPort
	log.Info("servidor iniciado", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("erro no servidor", zap.Error(err))
	}
}
