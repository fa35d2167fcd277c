// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/qryptify/qryptify-client/internal/adapter"
	"github.com/qryptify/qryptify-client/internal/assistant"
	"github.com/qryptify/qryptify-client/internal/cli"
	"github.com/qryptify/qryptify-client/internal/config"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/service"
	"github.com/qryptify/qryptify-client/internal/session"
	"github.com/qryptify/qryptify-client/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// A local .env is optional; environment variables win either way.
	_ = godotenv.Load()

	log := logger.NewFileLogger("qryptify-cli")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	gateway, err := adapter.NewHTTPBackendGateway(cfg.API, storages.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend gateway")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := session.NewSession(gateway, storages.Session, log)

	// The advisor is optional: without an API key the support command
	// answers from the FAQ catalog alone.
	var advisor service.Advisor
	if cfg.Assistant.APIKey != "" {
		if adv, advErr := assistant.New(ctx, cfg.Assistant); advErr != nil {
			log.Warn().Err(advErr).Msg("assistant unavailable")
		} else {
			advisor = adv
		}
	}

	services := service.NewServices(sess, gateway, storages, advisor, log)

	app := cli.New(services, sess, version(), os.Stdin, os.Stdout)
	root := app.NewRootCmd()
	root.SetArgs(cfg.Args)
	if err = root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func version() string {
	v := buildVersion
	if v == "" {
		v = "N/A"
	}
	d := buildDate
	if d == "" {
		d = "N/A"
	}
	c := buildCommit
	if c == "" {
		c = "N/A"
	}
	return v + " (built " + d + ", commit " + c + ")"
}
