package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/hylo-quote-engine/internal/adapters/blockchain"
	"github.com/hxuan190/hylo-quote-engine/internal/config"
	"github.com/hxuan190/hylo-quote-engine/internal/http"
	"github.com/hxuan190/hylo-quote-engine/internal/services"
	"github.com/hxuan190/hylo-quote-engine/internal/services/quote"
)

// @title Hylo Quote API
// @version 1.0
// @description Exact-in quotes for Hylo mints, redeems and swaps between hyUSD, xSOL, JitoSOL and hyloSOL.
// @description Hosts snapshot the accounts listed by /api/v1/quote/accounts and post them with each quote.
// @BasePath /
// @tag.name quote
// @tag.description Quote against a host-supplied account snapshot
// @tag.name swap
// @tag.description Account metas for the swap instruction

func main() {
	// load env; a missing .env is fine when the environment is set directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Msg("failed to load env")
		return
	}
	services.SetGlobalLevel(os.Getenv("LOG_LEVEL"))

	// di container config
	conf := container.NewConf(
		&config.GeneralConfig{},
		&config.RPCConfig{},
		&config.QuoteConfig{},
	)

	// di container
	dic, err := container.New(
		// config
		conf,

		// services
		&blockchain.AccountFetcher{},
		&quote.Service{},

		&http.HTTPService{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create di container")
		return
	}

	// Run blocks until SIGINT/SIGTERM
	if err := dic.Run(); err != nil {
		log.Error().Err(err).Msg("failed to run di container")
		return
	}

	log.Info().Msg("Shutting down services...")
	if err := dic.Stop(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("Shutdown complete")
}
