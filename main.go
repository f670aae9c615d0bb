package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"patternshelf/app"
	"patternshelf/config"
	"patternshelf/logger"
)

func main() {
	// .env is for local development; hosted environments set real vars.
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Load(); err == nil {
			log.Debug().Msg(".env file loaded")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Configure(cfg.DevMode)

	conn, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialization failed")
	}
	defer conn.Close()

	addr := "0.0.0.0:" + cfg.Port
	log.Info().Str("addr", addr).Msg("server listening")
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
