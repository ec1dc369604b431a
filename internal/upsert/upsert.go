// Package upsert merges externally-sourced product records into the catalog.
// Each record is processed independently; a batch continues past individual
// failures but aborts when the store itself becomes unreachable. Every
// successful write produces one immutable API snapshot, and the price history
// accumulates a new entry only when the price changed.
package upsert

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/dealhaven/dealsync/internal/audit"
	"github.com/dealhaven/dealsync/internal/platform"
	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/dealhaven/dealsync/internal/sourceapi"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Enricher --filename enricher.go
//go:generate mockery --name Transformer --filename transformer.go
//go:generate mockery --name Storage --filename storage.go

// Enricher fetches review excerpts for a product.
type Enricher interface {
	ProductReviews(ctx context.Context, asin string) ([]sourceapi.RawReview, error)
}

// Transformer normalizes raw product records and reviews.
type Transformer interface {
	Product(raw sourceapi.RawProduct) (models.ProductRecord, error)
	Reviews(raw []sourceapi.RawReview) []models.Review
	Source() string
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Storage is product and snapshot storage.
type Storage interface {
	// ProductByASIN returns the product for a business key or platform.ErrNotFound.
	ProductByASIN(ctx context.Context, asin string) (*models.Product, error)
	// SaveProduct inserts or updates a product and writes one snapshot.
	// Returns true when a new row was created.
	SaveProduct(ctx context.Context, product *models.Product, snapshot *models.Snapshot) (bool, error)
}

// Option is custom configuration of Upserter.
type Option func(u *Upserter)

// Upserter merges product record batches into storage.
type Upserter struct {
	enricher      Enricher
	transformer   Transformer
	storage       Storage
	emitter       audit.Emitter
	logger        *zerolog.Logger
	parallelLimit int
	clock         Clock
}

// NewUpserter returns new Upserter.
func NewUpserter(
	enricher Enricher,
	transformer Transformer,
	storage Storage,
	emitter audit.Emitter,
	logger *zerolog.Logger,
	ops ...Option,
) *Upserter {
	ups := &Upserter{
		enricher:      enricher,
		transformer:   transformer,
		storage:       storage,
		emitter:       emitter,
		logger:        logger,
		parallelLimit: 5,
		clock:         systemClock{},
	}

	for _, op := range ops {
		op(ups)
	}

	return ups
}

// UpsertProducts merges a batch of raw product records into the catalog. Each
// record is normalized, enriched with review excerpts, merged into its stored
// row by business key, and snapshotted. Individual record failures are logged
// and skipped; an unreachable store or a canceled context aborts the batch
// with Success false and no partial counts.
func (u *Upserter) UpsertProducts(ctx context.Context, rawProducts []sourceapi.RawProduct) models.UpsertResult {
	total := len(rawProducts)

	records := make([]models.ProductRecord, 0, total)
	for ix := range rawProducts {
		record, err := u.transformer.Product(rawProducts[ix])
		if err != nil {
			u.logger.Warn().
				Err(err).
				Str("asin", rawProducts[ix].ASIN).
				Msg("skipping malformed product record")
			continue
		}
		records = append(records, record)
	}

	u.enrichWithReviews(ctx, records)

	savedCount := 0
	updatedCount := 0

	for ix := range records {
		if ctx.Err() != nil {
			return models.UpsertResult{
				Total: total,
				Error: fmt.Errorf("batch aborted: %w", ctx.Err()).Error(),
			}
		}

		created, err := u.upsertRecord(ctx, &records[ix])
		if err != nil {
			if storeUnavailable(err) {
				u.logger.Error().
					Err(err).
					Str("asin", records[ix].ASIN).
					Msg("product store unreachable")
				return models.UpsertResult{
					Total: total,
					Error: fmt.Errorf("batch aborted: %w", err).Error(),
				}
			}
			u.logger.Error().
				Err(err).
				Str("asin", records[ix].ASIN).
				Msg("skipping product after write failure")
			continue
		}

		if created {
			savedCount++
		} else {
			updatedCount++
		}
	}

	return models.UpsertResult{
		Success:      true,
		SavedCount:   savedCount,
		UpdatedCount: updatedCount,
		Total:        total,
	}
}

// enrichWithReviews fetches review excerpts for all records concurrently.
// Calls settle individually: a failed fetch leaves that record without
// reviews and never cancels sibling calls or the batch.
func (u *Upserter) enrichWithReviews(ctx context.Context, records []models.ProductRecord) {
	var eg errgroup.Group
	eg.SetLimit(u.parallelLimit)

	for ix := range records {
		ix := ix
		eg.Go(func() error {
			rawReviews, err := u.enricher.ProductReviews(ctx, records[ix].ASIN)
			if err != nil {
				u.logger.Warn().
					Err(err).
					Str("asin", records[ix].ASIN).
					Msg("can't fetch product reviews")
				return nil
			}
			records[ix].Reviews = u.transformer.Reviews(rawReviews)
			return nil
		})
	}

	_ = eg.Wait()
}

// storeUnavailable reports whether err means the store itself is unreachable
// rather than a row-level rejection. Retrying the remaining records would only
// repeat the error, so the whole batch fails.
func storeUnavailable(err error) bool {
	var netErr net.Error
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.As(err, &netErr)
}

func (u *Upserter) upsertRecord(ctx context.Context, record *models.ProductRecord) (bool, error) {
	existing, err := u.storage.ProductByASIN(ctx, record.ASIN)
	if err != nil && !errors.Is(err, platform.ErrNotFound) {
		return false, fmt.Errorf("can't load product: %w", err)
	}

	now := u.clock.Now()
	product := u.mergeRecord(existing, record, now)

	snapshot := &models.Snapshot{
		ASIN:         record.ASIN,
		Source:       u.transformer.Source(),
		RawPayload:   record.RawPayload,
		Price:        record.Price,
		Availability: &record.Availability,
		InStock:      record.InStock,
		CapturedAt:   now,
	}

	created, err := u.storage.SaveProduct(ctx, product, snapshot)
	if err != nil {
		return false, fmt.Errorf("can't save product: %w", err)
	}

	eventType := audit.EventProductUpdated
	if created {
		eventType = audit.EventProductCreated
	}
	u.emitter.Emit(ctx, audit.Event{
		Type:       eventType,
		ASIN:       record.ASIN,
		ProductID:  product.ID,
		OccurredAt: now,
	})

	return created, nil
}

// mergeRecord folds an incoming record into the stored product. Deal-reference
// fields are owned by the reconciler and pass through untouched. The price
// history gains an entry only when the incoming price differs from the last
// recorded one.
func (u *Upserter) mergeRecord(existing *models.Product, record *models.ProductRecord, now time.Time) *models.Product {
	product := &models.Product{
		ASIN:         &record.ASIN,
		Title:        record.Title,
		Price:        record.Price,
		SalePrice:    record.OriginalPrice,
		Rating:       record.Rating,
		RatingsTotal: record.RatingsTotal,
		ImageURL:     record.ImageURL,
		ProductURL:   record.ProductURL,
		AffiliateURL: record.AffiliateURL,
		InStock:      record.InStock,
		Availability: record.Availability,
		Reviews:      record.Reviews,
		Source:       u.transformer.Source(),
	}

	if record.Attributes != nil {
		product.Attributes = record.Attributes
	}
	if record.Specifications != nil {
		product.Specifications = record.Specifications
	}

	if existing == nil {
		return product
	}

	product.ID = existing.ID
	product.Description = existing.Description
	product.CurrentDealID = existing.CurrentDealID
	product.HasActiveDeal = existing.HasActiveDeal
	product.DealLastUpdated = existing.DealLastUpdated
	product.CreatedAt = existing.CreatedAt
	if product.Attributes == nil {
		product.Attributes = existing.Attributes
	}
	if product.Specifications == nil {
		product.Specifications = existing.Specifications
	}
	if len(product.Reviews) == 0 {
		product.Reviews = existing.Reviews
	}

	product.PriceHistory = appendPriceChange(existing, record.Price, u.transformer.Source(), now)

	return product
}

// appendPriceChange appends a history entry when the incoming price differs
// from the last recorded one. The baseline falls back to the stored price for
// rows whose history is empty, so the history stays a log of changes rather
// than a log of sync ticks.
func appendPriceChange(existing *models.Product, price *float64, source string, now time.Time) []models.PricePoint {
	history := existing.PriceHistory

	if price == nil {
		return history
	}

	baseline := existing.Price
	if len(history) > 0 {
		baseline = &history[len(history)-1].Price
	}

	if baseline != nil && *baseline == *price {
		return history
	}

	return append(history, models.PricePoint{
		Date:   now,
		Price:  *price,
		Source: source,
	})
}

// WithClock sets Upserter's custom Clock.
func WithClock(c Clock) Option {
	return func(u *Upserter) {
		u.clock = c
	}
}

// WithParallelLimit sets the max number of concurrent enrichment calls.
func WithParallelLimit(limit int) Option {
	return func(u *Upserter) {
		u.parallelLimit = limit
	}
}
