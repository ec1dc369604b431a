package modelstesting

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeProduct returns models.Product with fake data and a random price history.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:           rand.Int(),
		ASIN:         lo.ToPtr(FakeASIN()),
		Title:        faker.Sentence(),
		Description:  faker.Paragraph(),
		Price:        lo.ToPtr(fakePrice()),
		SalePrice:    lo.ToPtr(fakePrice()),
		Rating:       lo.ToPtr(rand.Float64() * 5),
		RatingsTotal: lo.ToPtr(rand.Int31()),
		ImageURL:     faker.URL(),
		ProductURL:   faker.URL(),
		AffiliateURL: faker.URL(),
		InStock:      true,
		Availability: "In Stock",
		Attributes:   map[string]string{faker.Word(): faker.Word()},
		Specifications: map[string]string{
			faker.Word(): faker.Word(),
		},
		PriceHistory: fakePriceHistory(),
		Source:       faker.Word(),
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeDeal returns models.Deal with fake data.
func FakeDeal(ops ...func(d *models.Deal)) models.Deal {
	deal := models.Deal{
		ID:                rand.Int(),
		ASIN:              FakeASIN(),
		Title:             faker.Sentence(),
		ListPrice:         lo.ToPtr(fakePrice()),
		DealPrice:         lo.ToPtr(fakePrice()),
		SavingsPercentage: lo.ToPtr(float64(rand.Intn(100))),
		StartsAt:          time.Now().UTC().Truncate(time.Second),
		EndsAt:            lo.ToPtr(time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)),
		DealType:          lo.ToPtr("DEAL_OF_THE_DAY"),
		DealURL:           lo.ToPtr(faker.URL()),
		RawPayload:        fakeRawPayload(),
		IsActive:          true,
		CreatedAt:         time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&deal)
	}

	return deal
}

// FakeDealRecord returns models.DealRecord with fake data.
func FakeDealRecord(ops ...func(r *models.DealRecord)) models.DealRecord {
	record := models.DealRecord{
		ASIN:              FakeASIN(),
		Title:             faker.Sentence(),
		ListPrice:         lo.ToPtr(fakePrice()),
		DealPrice:         lo.ToPtr(fakePrice()),
		SavingsPercentage: lo.ToPtr(float64(rand.Intn(100))),
		StartsAt:          time.Now().UTC().Truncate(time.Second),
		EndsAt:            lo.ToPtr(time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)),
		DealType:          lo.ToPtr("BEST_DEAL"),
		DealURL:           lo.ToPtr(faker.URL()),
		RawPayload:        fakeRawPayload(),
	}

	for _, op := range ops {
		op(&record)
	}

	return record
}

// FakeProductRecord returns models.ProductRecord with fake data.
func FakeProductRecord(ops ...func(r *models.ProductRecord)) models.ProductRecord {
	record := models.ProductRecord{
		ASIN:          FakeASIN(),
		Title:         faker.Sentence(),
		Price:         lo.ToPtr(fakePrice()),
		OriginalPrice: lo.ToPtr(fakePrice()),
		Rating:        lo.ToPtr(rand.Float64() * 5),
		RatingsTotal:  lo.ToPtr(rand.Int31()),
		ImageURL:      faker.URL(),
		ProductURL:    faker.URL(),
		InStock:       true,
		Availability:  "In Stock",
		RawPayload:    fakeRawPayload(),
	}

	for _, op := range ops {
		op(&record)
	}

	return record
}

// FakeSnapshot returns models.Snapshot with fake data.
func FakeSnapshot(ops ...func(s *models.Snapshot)) models.Snapshot {
	snapshot := models.Snapshot{
		ID:           rand.Int(),
		ProductID:    rand.Int(),
		ASIN:         FakeASIN(),
		Source:       faker.Word(),
		RawPayload:   fakeRawPayload(),
		Price:        lo.ToPtr(fakePrice()),
		Availability: lo.ToPtr("In Stock"),
		InStock:      true,
		CapturedAt:   time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&snapshot)
	}

	return snapshot
}

// FakeASIN returns a random ASIN-shaped business key.
func FakeASIN() string {
	return fmt.Sprintf("B%09d", rand.Intn(1_000_000_000))
}

func fakePrice() float64 {
	return float64(rand.Intn(100_000)) / 100
}

func fakePriceHistory() []models.PricePoint {
	historyLen := rand.Intn(4)
	history := make([]models.PricePoint, 0, historyLen)
	for i := 0; i < historyLen; i++ {
		history = append(history, models.PricePoint{
			Date:   time.Now().UTC().Add(-time.Duration(historyLen-i) * 24 * time.Hour).Truncate(time.Second),
			Price:  fakePrice(),
			Source: "amazon-api",
		})
	}

	return history
}

func fakeRawPayload() json.RawMessage {
	payload, _ := json.Marshal(map[string]string{faker.Word(): faker.Word()})
	return payload
}
