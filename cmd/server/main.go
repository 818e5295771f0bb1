package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/herrick/bankcore"
	"github.com/sony/gobreaker/v2"
	"gopkg.in/yaml.v3"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg bankcore.Config
	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfgfl, err := os.Open(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening config file")
	}
	if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("error decoding config file")
	}

	pgendpt, err := bankcore.NewPostgresEndpoint(cfg.Database.ConnectionString, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting database")
	}

	node, err := snowflake.NewNode(cfg.Snowflake.Node)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting snowflake node")
	}

	// validation runs first, then load shedding, then the breaker guards
	// the store-facing call.
	var svc bankcore.Service = bankcore.NewService(pgendpt, node, &logger, cfg.BcryptCost)
	svc = bankcore.NewCircuitBreakMiddleware(bankcore.NewServiceBreaker(gobreaker.Settings{
		Name: "bankcore",
	}))(svc)
	svc = bankcore.NewLimitMiddleware(bankcore.NewServiceLimits(
		cfg.Limits.Users, cfg.Limits.Accounts, cfg.Limits.Transactions,
	))(svc)
	svc = bankcore.NewValidationMiddleware()(svc)

	hndlr := bankcore.NewHTTPHandler(svc, &logger)

	listen := cfg.Listen
	if listen == "" {
		listen = ":3000"
	}
	logger.Info().Str("listen", listen).Msg("server starting")
	if err = http.ListenAndServe(listen, hndlr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
