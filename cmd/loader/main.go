package main

import (
	stdlog "log"

	"github.com/joho/godotenv"

	"github.com/mfgplanning/pegging-loader/config"
	"github.com/mfgplanning/pegging-loader/pkg/logger"
)

func main() {
	_ = godotenv.Load() // load .env if present
	cfg := config.LoadEnv()

	log, err := logger.New(&logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		FilePath: cfg.Logger.FilePath,
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer log.Sync()

	Execute(cfg, log)
}
