package main

import (
	"go-resto/internal/app"
	"go-resto/internal/bootstrap"
	"go-resto/internal/config"
	"go-resto/internal/shared/apperror"
	"go-resto/internal/shared/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Log, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()

	router, cleanup, err := app.BuildApp(cfg, log)
	if err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	if err := bootstrap.StartHTTPServer(router, cfg.Port, cfg.Server, bootstrap.NewStdoutAuditLogger(log)); err != nil {
		log.Error("http server stopped with error", zap.Error(err))
	}
}
