// Package reconciler keeps stored deals converged with the external deal
// listing. One sync pass fetches the full listing, applies each deal to the
// matching tracked product and deactivates deals past their end date.
//
// Passes are meant to be triggered serially (single scheduler or manual admin
// action). The check-then-act on the active deal row is not atomic across
// concurrent passes; the sync-run guard in storage rejects overlapping starts
// but is not a distributed lock.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dealhaven/dealsync/internal/audit"
	"github.com/dealhaven/dealsync/internal/platform"
	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/dealhaven/dealsync/internal/sourceapi"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name DealSource --filename dealsource.go
//go:generate mockery --name Transformer --filename transformer.go
//go:generate mockery --name Storage --filename storage.go

// DealSource fetches the current deal listing from the external source.
// Pagination is handled by the source; the listing arrives whole.
type DealSource interface {
	Deals(ctx context.Context) ([]sourceapi.RawDeal, error)
}

// Transformer normalizes raw deal records.
type Transformer interface {
	Deal(raw sourceapi.RawDeal) (models.DealRecord, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Storage is products, deals and sync runs storage.
type Storage interface {
	// StartSyncRun creates a new sync run if no run is currently unfinished.
	StartSyncRun(ctx context.Context) (*models.SyncRun, error)
	// FinishSyncRun finishes the provided run and updates its statistics.
	FinishSyncRun(ctx context.Context, run *models.SyncRun) error
	// TrackedProducts returns all products carrying an external business key.
	TrackedProducts(ctx context.Context) ([]models.Product, error)
	// ActiveDealByASIN returns the active deal for a business key or platform.ErrNotFound.
	ActiveDealByASIN(ctx context.Context, asin string) (*models.Deal, error)
	// CreateActiveDeal inserts an active deal row and links it to the product.
	CreateActiveDeal(ctx context.Context, deal *models.Deal, productID int) (int, error)
	// SupersedeDeal overwrites an existing active deal row in place.
	SupersedeDeal(ctx context.Context, dealID int, deal *models.Deal, productID int) error
	// DeactivateExpiredDeals deactivates active deals whose end date passed and
	// clears deal references of products left without active deals.
	// Returns the deactivated deals.
	DeactivateExpiredDeals(ctx context.Context, now time.Time, batchSize uint) ([]models.ExpiredDeal, error)
}

// Option is custom configuration of Reconciler.
type Option func(r *Reconciler)

// Reconciler runs deal sync passes.
type Reconciler struct {
	source      DealSource
	transformer Transformer
	storage     Storage
	emitter     audit.Emitter
	logger      *zerolog.Logger
	batchSize   uint
	clock       Clock
}

// NewReconciler returns new Reconciler.
func NewReconciler(
	source DealSource,
	transformer Transformer,
	storage Storage,
	emitter audit.Emitter,
	logger *zerolog.Logger,
	batchSize uint,
	ops ...Option,
) *Reconciler {
	rec := &Reconciler{
		source:      source,
		transformer: transformer,
		storage:     storage,
		emitter:     emitter,
		logger:      logger,
		batchSize:   batchSize,
		clock:       systemClock{},
	}

	for _, op := range ops {
		op(rec)
	}

	return rec
}

// SyncDeals performs one full sync pass: load tracked products, fetch the
// deal listing, apply each matching deal, then run expiry cleanup over the
// whole deal table. A fetch failure aborts the pass with zero counts; a
// failure applying one deal skips that deal only.
func (r *Reconciler) SyncDeals(ctx context.Context) models.SyncResult {
	run, err := r.storage.StartSyncRun(ctx)
	if err != nil {
		return failedResult(fmt.Errorf("can't start deal sync: %w", err))
	}

	products, err := r.storage.TrackedProducts(ctx)
	if err != nil {
		return r.finishSync(ctx, run, counts{}, fmt.Errorf("can't load tracked products: %w", err))
	}

	tracked := make(map[string]models.Product, len(products))
	for ix := range products {
		if products[ix].ASIN != nil {
			tracked[*products[ix].ASIN] = products[ix]
		}
	}

	rawDeals, err := r.source.Deals(ctx)
	if err != nil {
		return r.finishSync(ctx, run, counts{}, fmt.Errorf("can't fetch deal listing: %w", err))
	}

	cnt := counts{processed: len(rawDeals)}

	for ix := range rawDeals {
		product, ok := tracked[rawDeals[ix].ProductASIN]
		if !ok {
			cnt.unknown++
			continue
		}

		record, err := r.transformer.Deal(rawDeals[ix])
		if err != nil {
			r.logger.Warn().
				Err(err).
				Str("asin", rawDeals[ix].ProductASIN).
				Msg("skipping malformed deal")
			continue
		}

		if err := r.applyDeal(ctx, &product, record, &cnt); err != nil {
			r.logger.Error().
				Err(err).
				Str("asin", record.ASIN).
				Msg("skipping deal after write failure")
		}
	}

	if cnt.unknown > 0 {
		r.logger.Info().
			Int("count", cnt.unknown).
			Msg("dropped deals for untracked products")
	}

	expired, err := r.storage.DeactivateExpiredDeals(ctx, r.clock.Now(), r.batchSize)
	cnt.deactivated = len(expired)
	if err != nil {
		return r.finishSync(ctx, run, cnt, fmt.Errorf("can't deactivate expired deals: %w", err))
	}

	for ix := range expired {
		r.emitter.Emit(ctx, audit.Event{
			Type:       audit.EventDealExpired,
			ASIN:       expired[ix].ASIN,
			DealID:     expired[ix].ID,
			OccurredAt: r.clock.Now(),
		})
	}

	return r.finishSync(ctx, run, cnt, nil)
}

// applyDeal applies one state transition for a business key: create an active
// deal when none exists, supersede in place when the incoming start is
// strictly later, discard otherwise. The equal-start tie keeps the stored
// deal, which makes the pass idempotent under duplicate delivery.
func (r *Reconciler) applyDeal(
	ctx context.Context,
	product *models.Product,
	record models.DealRecord,
	cnt *counts,
) error {
	existing, err := r.storage.ActiveDealByASIN(ctx, record.ASIN)

	switch {
	case errors.Is(err, platform.ErrNotFound):
		deal := dealFromRecord(record)
		dealID, err := r.storage.CreateActiveDeal(ctx, deal, product.ID)
		if err != nil {
			return fmt.Errorf("can't create deal: %w", err)
		}
		cnt.added++
		r.emitter.Emit(ctx, audit.Event{
			Type:       audit.EventDealAdded,
			ASIN:       record.ASIN,
			ProductID:  product.ID,
			DealID:     dealID,
			OccurredAt: r.clock.Now(),
		})

	case err != nil:
		return fmt.Errorf("can't load active deal: %w", err)

	case record.StartsAt.After(existing.StartsAt):
		deal := dealFromRecord(record)
		if err := r.storage.SupersedeDeal(ctx, existing.ID, deal, product.ID); err != nil {
			return fmt.Errorf("can't supersede deal: %w", err)
		}
		cnt.updated++
		r.emitter.Emit(ctx, audit.Event{
			Type:       audit.EventDealSuperseded,
			ASIN:       record.ASIN,
			ProductID:  product.ID,
			DealID:     existing.ID,
			OccurredAt: r.clock.Now(),
		})
	}

	return nil
}

func (r *Reconciler) finishSync(
	ctx context.Context,
	run *models.SyncRun,
	cnt counts,
	status error,
) models.SyncResult {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = lo.ToPtr(r.clock.Now())
	run.DealsProcessed = lo.ToPtr(int32(cnt.processed))
	run.DealsAdded = lo.ToPtr(int32(cnt.added))
	run.DealsUpdated = lo.ToPtr(int32(cnt.updated))
	run.DealsDeactivated = lo.ToPtr(int32(cnt.deactivated))

	if err := r.storage.FinishSyncRun(ctx, run); err != nil {
		r.logger.Error().
			Err(err).
			Int("runId", run.ID).
			Msg("can't finish sync run")
		if status == nil {
			status = fmt.Errorf("can't finish sync run: %w", err)
		}
	}

	if status != nil {
		return models.SyncResult{
			DealsProcessed:   cnt.processed,
			DealsAdded:       cnt.added,
			DealsUpdated:     cnt.updated,
			DealsDeactivated: cnt.deactivated,
			Error:            status.Error(),
		}
	}

	return models.SyncResult{
		Success:          true,
		DealsProcessed:   cnt.processed,
		DealsAdded:       cnt.added,
		DealsUpdated:     cnt.updated,
		DealsDeactivated: cnt.deactivated,
	}
}

type counts struct {
	processed   int
	added       int
	updated     int
	deactivated int
	unknown     int
}

func failedResult(err error) models.SyncResult {
	return models.SyncResult{
		Error: err.Error(),
	}
}

func dealFromRecord(record models.DealRecord) *models.Deal {
	return &models.Deal{
		ASIN:              record.ASIN,
		Title:             record.Title,
		ListPrice:         record.ListPrice,
		DealPrice:         record.DealPrice,
		SavingsPercentage: record.SavingsPercentage,
		StartsAt:          record.StartsAt,
		EndsAt:            record.EndsAt,
		DealType:          record.DealType,
		DealURL:           record.DealURL,
		RawPayload:        record.RawPayload,
		IsActive:          true,
	}
}

// WithClock sets Reconciler's custom Clock.
func WithClock(c Clock) Option {
	return func(r *Reconciler) {
		r.clock = c
	}
}
