package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/dealhaven/dealsync/internal/platform/rabbitmq"
	"github.com/dealhaven/dealsync/internal/sourceapi"
	"github.com/dealhaven/dealsync/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// DealSyncer runs deal sync passes.
type DealSyncer interface {
	SyncDeals(ctx context.Context) models.SyncResult
}

// ProductSource searches product records in the external source.
type ProductSource interface {
	SearchProducts(ctx context.Context, query string) ([]sourceapi.RawProduct, error)
}

// ProductUpserter merges product record batches into the catalog.
type ProductUpserter interface {
	UpsertProducts(ctx context.Context, products []sourceapi.RawProduct) models.UpsertResult
}

// RMQHandler handles RMQ sync commands.
type RMQHandler struct {
	rmq      *rabbitmq.RabbitMQ
	syncer   DealSyncer
	source   ProductSource
	upserter ProductUpserter
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(
	rmq *rabbitmq.RabbitMQ,
	syncer DealSyncer,
	source ProductSource,
	upserter ProductUpserter,
	logger *zerolog.Logger,
) *RMQHandler {
	return &RMQHandler{
		rmq:      rmq,
		syncer:   syncer,
		source:   source,
		upserter: upserter,
		logger:   logger,
	}
}

// Start starts consuming and handling sync commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeCommand(message)
		if err != nil {
			return err
		}

		switch cmd.Action {
		case commander.ActionSyncDeals:
			return h.handleSyncDeals(ctx)
		case commander.ActionImportProducts:
			return h.handleImportProducts(ctx, cmd.Query)
		default:
			return fmt.Errorf("unknown command action %q", cmd.Action)
		}
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle command")
		}
	}()

	return nil
}

func (h *RMQHandler) handleSyncDeals(ctx context.Context) error {
	h.logger.Debug().Msg("deal sync started")

	result := h.syncer.SyncDeals(ctx)
	if !result.Success {
		return fmt.Errorf("deal sync failed: %s", result.Error)
	}

	h.logger.Info().
		Int("dealsProcessed", result.DealsProcessed).
		Int("dealsAdded", result.DealsAdded).
		Int("dealsUpdated", result.DealsUpdated).
		Int("dealsDeactivated", result.DealsDeactivated).
		Msg("deal sync finished")

	return nil
}

func (h *RMQHandler) handleImportProducts(ctx context.Context, query string) error {
	h.logger.Debug().
		Str("query", query).
		Msg("product import started")

	products, err := h.source.SearchProducts(ctx, query)
	if err != nil {
		return fmt.Errorf("can't search products: %w", err)
	}

	result := h.upserter.UpsertProducts(ctx, products)
	if !result.Success {
		return fmt.Errorf("product import failed: %s", result.Error)
	}

	h.logger.Info().
		Str("query", query).
		Int("savedCount", result.SavedCount).
		Int("updatedCount", result.UpdatedCount).
		Int("total", result.Total).
		Msg("product import finished")

	return nil
}

func decodeCommand(msg []byte) (*commander.Command, error) {
	var cmd commander.Command
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode sync command: %w", err)
	}

	return &cmd, err
}
