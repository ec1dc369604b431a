package upsert_test

import (
	"context"
	"database/sql/driver"
	"sync"
	"testing"
	"time"

	"github.com/dealhaven/dealsync/internal/audit"
	"github.com/dealhaven/dealsync/internal/platform"
	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/dealhaven/dealsync/internal/platform/models/modelstesting"
	"github.com/dealhaven/dealsync/internal/sourceapi"
	"github.com/dealhaven/dealsync/internal/upsert"
	"github.com/dealhaven/dealsync/internal/upsert/mocks"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	sourceName = "amazon-data-api"
	loc        = func() *time.Location {
		loc, err := time.LoadLocation("Etc/UTC")
		if err != nil {
			panic(err)
		}
		return loc
	}()
	now = time.Date(2024, time.April, 2, 1, 1, 1, 0, loc)
)

func TestUnitUpsertProducts(t *testing.T) {
	newRecord := modelstesting.FakeProductRecord()
	updatedRecord := modelstesting.FakeProductRecord(func(r *models.ProductRecord) {
		r.Price = lo.ToPtr(79.99)
	})

	existing := modelstesting.FakeProduct(func(p *models.Product) {
		p.ASIN = lo.ToPtr(updatedRecord.ASIN)
		p.Price = lo.ToPtr(99.99)
		p.PriceHistory = nil
	})

	rawProducts := []sourceapi.RawProduct{
		{ASIN: newRecord.ASIN},
		{ASIN: updatedRecord.ASIN},
	}
	newRawReviews := []sourceapi.RawReview{{ReviewTitle: "Great"}}
	updatedRawReviews := []sourceapi.RawReview{{ReviewTitle: "Meh"}}
	newReviews := []models.Review{{Title: "Great", Rating: lo.ToPtr(5.0)}}
	updatedReviews := []models.Review{{Title: "Meh", Rating: lo.ToPtr(2.0)}}

	wantCreated := expectedProduct(nil, newRecord, newReviews, nil)
	wantUpdated := expectedProduct(&existing, updatedRecord, updatedReviews, []models.PricePoint{
		{Date: now, Price: 79.99, Source: sourceName},
	})

	enricher := mocks.NewEnricher(t)
	transformer := mocks.NewTransformer(t)
	storage := mocks.NewStorage(t)
	emitter := &recordingEmitter{}

	mockTransformerProduct(transformer, rawProducts[0], newRecord, nil)
	mockTransformerProduct(transformer, rawProducts[1], updatedRecord, nil)
	mockTransformerSource(transformer)
	mockEnricherProductReviews(enricher, newRecord.ASIN, newRawReviews, nil)
	mockEnricherProductReviews(enricher, updatedRecord.ASIN, updatedRawReviews, nil)
	mockTransformerReviews(transformer, newRawReviews, newReviews)
	mockTransformerReviews(transformer, updatedRawReviews, updatedReviews)
	mockStorageProductByASIN(storage, newRecord.ASIN, nil, platform.ErrNotFound)
	mockStorageProductByASIN(storage, updatedRecord.ASIN, &existing, nil)
	mockStorageSaveProduct(storage, wantCreated, expectedSnapshot(newRecord), true, nil)
	mockStorageSaveProduct(storage, wantUpdated, expectedSnapshot(updatedRecord), false, nil)

	ups := upsert.NewUpserter(
		enricher,
		transformer,
		storage,
		emitter,
		testLogger(),
		upsert.WithClock(fakeClock{now: now}),
	)

	result := ups.UpsertProducts(context.TODO(), rawProducts)

	require.Empty(t, result.Error, "shouldn't return any error")
	assert.True(t, result.Success, "should report success")
	assert.Equal(t, 1, result.SavedCount, "should count the created product")
	assert.Equal(t, 1, result.UpdatedCount, "should count the updated product")
	assert.Equal(t, 2, result.Total, "should count all incoming records")
	assert.Equal(t, []audit.EventType{
		audit.EventProductCreated,
		audit.EventProductUpdated,
	}, emitter.types(), "should emit one event per write")
}

func TestUnitUpsertProductsPriceHistory(t *testing.T) {
	history := []models.PricePoint{{
		Date:   now.Add(-24 * time.Hour),
		Price:  89.99,
		Source: sourceName,
	}}

	tests := map[string]struct {
		existing *models.Product
		price    *float64
		want     []models.PricePoint
	}{
		"price change appends an entry": {
			existing: fakeTracked("B000000001", lo.ToPtr(99.99), nil),
			price:    lo.ToPtr(79.99),
			want:     []models.PricePoint{{Date: now, Price: 79.99, Source: sourceName}},
		},
		"unchanged price appends nothing": {
			existing: fakeTracked("B000000002", lo.ToPtr(99.99), nil),
			price:    lo.ToPtr(99.99),
			want:     nil,
		},
		"baseline is the last history entry": {
			existing: fakeTracked("B000000003", lo.ToPtr(99.99), history),
			price:    lo.ToPtr(89.99),
			want:     history,
		},
		"nil price leaves the history alone": {
			existing: fakeTracked("B000000004", lo.ToPtr(99.99), history),
			price:    nil,
			want:     history,
		},
		"first sync records nothing": {
			existing: nil,
			price:    lo.ToPtr(99.99),
			want:     nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			record := modelstesting.FakeProductRecord(func(r *models.ProductRecord) {
				r.Price = tt.price
			})
			raw := sourceapi.RawProduct{ASIN: record.ASIN}

			enricher := mocks.NewEnricher(t)
			transformer := mocks.NewTransformer(t)
			storage := mocks.NewStorage(t)

			mockTransformerProduct(transformer, raw, record, nil)
			mockTransformerSource(transformer)
			mockEnricherProductReviews(enricher, record.ASIN, nil, nil)
			transformer.On("Reviews", mock.Anything).Return(nil)
			if tt.existing != nil {
				mockStorageProductByASIN(storage, record.ASIN, tt.existing, nil)
			} else {
				mockStorageProductByASIN(storage, record.ASIN, nil, platform.ErrNotFound)
			}

			var saved *models.Product
			storage.On("SaveProduct", mock.Anything, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					saved = args.Get(1).(*models.Product)
				}).
				Return(tt.existing == nil, nil)

			ups := upsert.NewUpserter(
				enricher,
				transformer,
				storage,
				audit.NopEmitter{},
				testLogger(),
				upsert.WithClock(fakeClock{now: now}),
			)

			result := ups.UpsertProducts(context.TODO(), []sourceapi.RawProduct{raw})

			require.True(t, result.Success, "shouldn't return any error")
			assert.Equal(t, tt.want, saved.PriceHistory, "history should log price changes only")
		})
	}
}

func TestUnitUpsertProductsEnrichmentFailure(t *testing.T) {
	record := modelstesting.FakeProductRecord()
	raw := sourceapi.RawProduct{ASIN: record.ASIN}

	enricher := mocks.NewEnricher(t)
	transformer := mocks.NewTransformer(t)
	storage := mocks.NewStorage(t)

	mockTransformerProduct(transformer, raw, record, nil)
	mockTransformerSource(transformer)
	mockEnricherProductReviews(enricher, record.ASIN, nil, assert.AnError)
	mockStorageProductByASIN(storage, record.ASIN, nil, platform.ErrNotFound)
	mockStorageSaveProduct(storage, expectedProduct(nil, record, nil, nil), expectedSnapshot(record), true, nil)

	ups := upsert.NewUpserter(
		enricher,
		transformer,
		storage,
		audit.NopEmitter{},
		testLogger(),
		upsert.WithClock(fakeClock{now: now}),
	)

	result := ups.UpsertProducts(context.TODO(), []sourceapi.RawProduct{raw})

	require.Empty(t, result.Error, "a failed enrichment shouldn't fail the batch")
	assert.True(t, result.Success, "should report success")
	assert.Equal(t, 1, result.SavedCount, "should save the product without reviews")
}

func TestUnitUpsertProductsWriteFailure(t *testing.T) {
	failedRecord := modelstesting.FakeProductRecord()
	savedRecord := modelstesting.FakeProductRecord()

	rawProducts := []sourceapi.RawProduct{
		{ASIN: failedRecord.ASIN},
		{ASIN: savedRecord.ASIN},
	}

	enricher := mocks.NewEnricher(t)
	transformer := mocks.NewTransformer(t)
	storage := mocks.NewStorage(t)

	mockTransformerProduct(transformer, rawProducts[0], failedRecord, nil)
	mockTransformerProduct(transformer, rawProducts[1], savedRecord, nil)
	mockTransformerSource(transformer)
	mockEnricherProductReviews(enricher, failedRecord.ASIN, nil, nil)
	mockEnricherProductReviews(enricher, savedRecord.ASIN, nil, nil)
	transformer.On("Reviews", mock.Anything).Return(nil)
	mockStorageProductByASIN(storage, failedRecord.ASIN, nil, platform.ErrNotFound)
	mockStorageProductByASIN(storage, savedRecord.ASIN, nil, platform.ErrNotFound)
	mockStorageSaveProduct(storage, expectedProduct(nil, failedRecord, nil, nil), expectedSnapshot(failedRecord), false, assert.AnError)
	mockStorageSaveProduct(storage, expectedProduct(nil, savedRecord, nil, nil), expectedSnapshot(savedRecord), true, nil)

	ups := upsert.NewUpserter(
		enricher,
		transformer,
		storage,
		audit.NopEmitter{},
		testLogger(),
		upsert.WithClock(fakeClock{now: now}),
	)

	result := ups.UpsertProducts(context.TODO(), rawProducts)

	require.Empty(t, result.Error, "one failed record shouldn't fail the batch")
	assert.True(t, result.Success, "should report success")
	assert.Equal(t, 1, result.SavedCount, "should count only the saved product")
	assert.Equal(t, 2, result.Total, "should count all incoming records")
}

func TestUnitUpsertProductsStoreUnreachable(t *testing.T) {
	firstRecord := modelstesting.FakeProductRecord()
	secondRecord := modelstesting.FakeProductRecord()

	rawProducts := []sourceapi.RawProduct{
		{ASIN: firstRecord.ASIN},
		{ASIN: secondRecord.ASIN},
	}

	enricher := mocks.NewEnricher(t)
	transformer := mocks.NewTransformer(t)
	storage := mocks.NewStorage(t)

	mockTransformerProduct(transformer, rawProducts[0], firstRecord, nil)
	mockTransformerProduct(transformer, rawProducts[1], secondRecord, nil)
	mockEnricherProductReviews(enricher, firstRecord.ASIN, nil, nil)
	mockEnricherProductReviews(enricher, secondRecord.ASIN, nil, nil)
	transformer.On("Reviews", mock.Anything).Return(nil)
	mockStorageProductByASIN(storage, firstRecord.ASIN, nil, driver.ErrBadConn)

	ups := upsert.NewUpserter(
		enricher,
		transformer,
		storage,
		audit.NopEmitter{},
		testLogger(),
		upsert.WithClock(fakeClock{now: now}),
	)

	result := ups.UpsertProducts(context.TODO(), rawProducts)

	assert.False(t, result.Success, "an unreachable store should fail the batch")
	assert.Contains(t, result.Error, "batch aborted", "should return error about the aborted batch")
	assert.Contains(t, result.Error, driver.ErrBadConn.Error(), "should name the connection failure")
	assert.Zero(t, result.SavedCount, "shouldn't report partial counts")
	assert.Zero(t, result.UpdatedCount, "shouldn't report partial counts")
	assert.Equal(t, 2, result.Total, "should still count all incoming records")
	storage.AssertNotCalled(t, "ProductByASIN", mock.Anything, secondRecord.ASIN)
}

func TestUnitUpsertProductsMalformedRecord(t *testing.T) {
	record := modelstesting.FakeProductRecord()
	rawProducts := []sourceapi.RawProduct{
		{ASIN: "garbage"},
		{ASIN: record.ASIN},
	}

	enricher := mocks.NewEnricher(t)
	transformer := mocks.NewTransformer(t)
	storage := mocks.NewStorage(t)

	mockTransformerProduct(transformer, rawProducts[0], models.ProductRecord{}, assert.AnError)
	mockTransformerProduct(transformer, rawProducts[1], record, nil)
	mockTransformerSource(transformer)
	mockEnricherProductReviews(enricher, record.ASIN, nil, nil)
	transformer.On("Reviews", mock.Anything).Return(nil)
	mockStorageProductByASIN(storage, record.ASIN, nil, platform.ErrNotFound)
	mockStorageSaveProduct(storage, expectedProduct(nil, record, nil, nil), expectedSnapshot(record), true, nil)

	ups := upsert.NewUpserter(
		enricher,
		transformer,
		storage,
		audit.NopEmitter{},
		testLogger(),
		upsert.WithClock(fakeClock{now: now}),
	)

	result := ups.UpsertProducts(context.TODO(), rawProducts)

	require.Empty(t, result.Error, "a malformed record shouldn't fail the batch")
	assert.Equal(t, 1, result.SavedCount, "should save only the well-formed record")
	assert.Equal(t, 2, result.Total, "should count all incoming records")
}

func TestUnitUpsertProductsAborted(t *testing.T) {
	record := modelstesting.FakeProductRecord()
	raw := sourceapi.RawProduct{ASIN: record.ASIN}

	enricher := mocks.NewEnricher(t)
	transformer := mocks.NewTransformer(t)
	storage := mocks.NewStorage(t)

	mockTransformerProduct(transformer, raw, record, nil)
	mockEnricherProductReviews(enricher, record.ASIN, nil, context.Canceled)

	ups := upsert.NewUpserter(
		enricher,
		transformer,
		storage,
		audit.NopEmitter{},
		testLogger(),
		upsert.WithClock(fakeClock{now: now}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := ups.UpsertProducts(ctx, []sourceapi.RawProduct{raw})

	assert.False(t, result.Success, "should report failure")
	assert.Contains(t, result.Error, "batch aborted", "should return error about the aborted batch")
	assert.Zero(t, result.SavedCount, "shouldn't save anything after the abort")
	assert.Equal(t, 1, result.Total, "should still count all incoming records")
}

// expectedProduct mirrors the record-to-product merge for asserting exact
// SaveProduct arguments.
func expectedProduct(
	existing *models.Product,
	record models.ProductRecord,
	reviews []models.Review,
	history []models.PricePoint,
) *models.Product {
	product := &models.Product{
		ASIN:         lo.ToPtr(record.ASIN),
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
		Reviews:      reviews,
		Source:       sourceName,
	}

	if existing == nil {
		return product
	}

	product.ID = existing.ID
	product.Description = existing.Description
	product.Attributes = existing.Attributes
	product.Specifications = existing.Specifications
	product.PriceHistory = history
	product.CurrentDealID = existing.CurrentDealID
	product.HasActiveDeal = existing.HasActiveDeal
	product.DealLastUpdated = existing.DealLastUpdated
	product.CreatedAt = existing.CreatedAt

	return product
}

func expectedSnapshot(record models.ProductRecord) *models.Snapshot {
	return &models.Snapshot{
		ASIN:         record.ASIN,
		Source:       sourceName,
		RawPayload:   record.RawPayload,
		Price:        record.Price,
		Availability: lo.ToPtr(record.Availability),
		InStock:      record.InStock,
		CapturedAt:   now,
	}
}

func fakeTracked(asin string, price *float64, history []models.PricePoint) *models.Product {
	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.ASIN = lo.ToPtr(asin)
		p.Price = price
		p.PriceHistory = history
	})

	return &product
}

func mockTransformerProduct(transformer *mocks.Transformer, raw sourceapi.RawProduct, record models.ProductRecord, err error) {
	transformer.On("Product", raw).Return(record, err)
}

func mockTransformerReviews(transformer *mocks.Transformer, raw []sourceapi.RawReview, reviews []models.Review) {
	transformer.On("Reviews", raw).Return(reviews)
}

func mockTransformerSource(transformer *mocks.Transformer) {
	transformer.On("Source").Return(sourceName)
}

func mockEnricherProductReviews(enricher *mocks.Enricher, asin string, reviews []sourceapi.RawReview, err error) {
	enricher.On("ProductReviews", mock.Anything, asin).Return(reviews, err)
}

func mockStorageProductByASIN(storage *mocks.Storage, asin string, product *models.Product, err error) {
	storage.On("ProductByASIN", mock.Anything, asin).Return(product, err)
}

func mockStorageSaveProduct(storage *mocks.Storage, product *models.Product, snapshot *models.Snapshot, created bool, err error) {
	storage.On("SaveProduct", mock.Anything, product, snapshot).Return(created, err)
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []audit.Event
}

func (e *recordingEmitter) Emit(_ context.Context, event audit.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
}

func (e *recordingEmitter) types() []audit.EventType {
	types := make([]audit.EventType, 0, len(e.events))
	for ix := range e.events {
		types = append(types, e.events[ix].Type)
	}
	return types
}

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}
