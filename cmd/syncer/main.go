package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/dealhaven/dealsync/cmd/syncer/config"
	"github.com/dealhaven/dealsync/internal/audit"
	"github.com/dealhaven/dealsync/internal/handler"
	"github.com/dealhaven/dealsync/internal/platform/rabbitmq"
	"github.com/dealhaven/dealsync/internal/platform/storage"
	"github.com/dealhaven/dealsync/internal/reconciler"
	"github.com/dealhaven/dealsync/internal/sourceapi"
	"github.com/dealhaven/dealsync/internal/transformer"
	"github.com/dealhaven/dealsync/internal/upsert"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// SourceName identifies the upstream API in history entries and snapshots.
	SourceName = "amazon-data-api"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store := storage.NewPostgres(pgDB)
	client := sourceapi.NewClient(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.SourceAPI)
	trans := transformer.NewTransformer(cfg.PartnerTag, SourceName)
	emitter := audit.NewLogEmitter(&logger)

	rec := reconciler.NewReconciler(client, trans, store, emitter, &logger, cfg.BatchSize)
	ups := upsert.NewUpserter(
		client,
		trans,
		store,
		emitter,
		&logger,
		upsert.WithParallelLimit(cfg.EnrichmentLimit),
	)

	han := handler.NewHandler(conn, rec, client, ups, &logger)

	// start consuming and handling commands
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("deal syncer up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
