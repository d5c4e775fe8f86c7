package main

import (
	"log"

	"go.uber.org/zap"

	"prepscore/internal/config"
	"prepscore/internal/logging"
	"prepscore/server"
)

func main() {
	envErr := config.Load()

	logger, err := logging.New(config.LogLevel(), config.LogFormat())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Info("no .env loaded", zap.Error(envErr))
	}

	err = server.Run(config.Addr(), logger, server.Options{
		MaxBodyBytes:   config.MaxBodyBytes(),
		MetricsEnabled: config.MetricsEnabled(),
	})
	if err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
