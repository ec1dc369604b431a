package storage

import (
	"encoding/json"
	"time"

	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/dealhaven/dealsync/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBSyncRun(run *models.SyncRun) *pgmodels.SyncRun {
	return &pgmodels.SyncRun{
		FinishedAt:       run.FinishedAt,
		Success:          run.IsSuccess,
		StatusMessage:    run.StatusMessage,
		DealsProcessed:   run.DealsProcessed,
		DealsAdded:       run.DealsAdded,
		DealsUpdated:     run.DealsUpdated,
		DealsDeactivated: run.DealsDeactivated,
	}
}

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product, now time.Time) *pgmodels.Product {
	return &pgmodels.Product{
		ID:              int32(product.ID),
		Asin:            product.ASIN,
		Title:           product.Title,
		Description:     product.Description,
		Price:           product.Price,
		SalePrice:       product.SalePrice,
		Rating:          product.Rating,
		RatingsTotal:    product.RatingsTotal,
		ImgURL:          product.ImageURL,
		ProductURL:      product.ProductURL,
		AffiliateURL:    product.AffiliateURL,
		InStock:         product.InStock,
		Availability:    product.Availability,
		Attributes:      toDBStringMap(product.Attributes),
		Specifications:  toDBStringMap(product.Specifications),
		PriceHistory:    toDBPriceHistory(product.PriceHistory),
		Reviews:         toDBReviews(product.Reviews),
		CurrentDealID:   toInt32Ptr(product.CurrentDealID),
		HasActiveDeal:   product.HasActiveDeal,
		DealLastUpdated: product.DealLastUpdated,
		Source:          product.Source,
		UpdatedAt:       &now,
	}
}

func toProduct(dbProduct *pgmodels.Product) *models.Product {
	return &models.Product{
		ID:              int(dbProduct.ID),
		ASIN:            dbProduct.Asin,
		Title:           dbProduct.Title,
		Description:     dbProduct.Description,
		Price:           dbProduct.Price,
		SalePrice:       dbProduct.SalePrice,
		Rating:          dbProduct.Rating,
		RatingsTotal:    dbProduct.RatingsTotal,
		ImageURL:        dbProduct.ImgURL,
		ProductURL:      dbProduct.ProductURL,
		AffiliateURL:    dbProduct.AffiliateURL,
		InStock:         dbProduct.InStock,
		Availability:    dbProduct.Availability,
		Attributes:      toStringMap(dbProduct.Attributes),
		Specifications:  toStringMap(dbProduct.Specifications),
		PriceHistory:    ParsePriceHistory(dbProduct.PriceHistory),
		Reviews:         toReviews(dbProduct.Reviews),
		CurrentDealID:   toIntPtr(dbProduct.CurrentDealID),
		HasActiveDeal:   dbProduct.HasActiveDeal,
		DealLastUpdated: dbProduct.DealLastUpdated,
		Source:          dbProduct.Source,
		CreatedAt:       dbProduct.CreatedAt,
		UpdatedAt:       dbProduct.UpdatedAt,
	}
}

func toDBDeal(deal *models.Deal, now time.Time) *pgmodels.ProductDeal {
	return &pgmodels.ProductDeal{
		ID:                int32(deal.ID),
		Asin:              deal.ASIN,
		Title:             deal.Title,
		ListPrice:         deal.ListPrice,
		DealPrice:         deal.DealPrice,
		SavingsPercentage: deal.SavingsPercentage,
		StartsAt:          deal.StartsAt,
		EndsAt:            deal.EndsAt,
		DealType:          deal.DealType,
		DealURL:           deal.DealURL,
		RawPayload:        rawToDBPayload(deal.RawPayload),
		IsActive:          deal.IsActive,
		UpdatedAt:         &now,
	}
}

func toDeal(dbDeal *pgmodels.ProductDeal) *models.Deal {
	return &models.Deal{
		ID:                int(dbDeal.ID),
		ASIN:              dbDeal.Asin,
		Title:             dbDeal.Title,
		ListPrice:         dbDeal.ListPrice,
		DealPrice:         dbDeal.DealPrice,
		SavingsPercentage: dbDeal.SavingsPercentage,
		StartsAt:          dbDeal.StartsAt,
		EndsAt:            dbDeal.EndsAt,
		DealType:          dbDeal.DealType,
		DealURL:           dbDeal.DealURL,
		RawPayload:        json.RawMessage(dbDeal.RawPayload),
		IsActive:          dbDeal.IsActive,
		CreatedAt:         dbDeal.CreatedAt,
		UpdatedAt:         dbDeal.UpdatedAt,
	}
}

func toDBSnapshot(snapshot *models.Snapshot) *pgmodels.ProductAPISnapshot {
	return &pgmodels.ProductAPISnapshot{
		ProductID:    int32(snapshot.ProductID),
		Asin:         snapshot.ASIN,
		Source:       snapshot.Source,
		RawPayload:   rawToDBPayload(snapshot.RawPayload),
		Price:        snapshot.Price,
		Availability: snapshot.Availability,
		InStock:      snapshot.InStock,
		CapturedAt:   snapshot.CapturedAt,
	}
}

// ParsePriceHistory deserializes a stored price history column value.
// Legacy rows may hold the list double-encoded as a JSON string; both forms
// are accepted. Unparsable history is treated as empty so corrupt audit data
// never blocks a price update.
func ParsePriceHistory(raw *string) []models.PricePoint {
	if raw == nil || *raw == "" {
		return nil
	}

	var history []models.PricePoint
	if err := json.Unmarshal([]byte(*raw), &history); err == nil {
		return history
	}

	var nested string
	if err := json.Unmarshal([]byte(*raw), &nested); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(nested), &history); err != nil {
		return nil
	}

	return history
}

func toDBPriceHistory(history []models.PricePoint) *string {
	if len(history) == 0 {
		return lo.ToPtr("[]")
	}

	serialized, err := json.Marshal(history)
	if err != nil {
		return lo.ToPtr("[]")
	}

	return lo.ToPtr(string(serialized))
}

func toDBReviews(reviews []models.Review) *string {
	if len(reviews) == 0 {
		return nil
	}

	serialized, err := json.Marshal(reviews)
	if err != nil {
		return nil
	}

	return lo.ToPtr(string(serialized))
}

func toReviews(raw *string) []models.Review {
	if raw == nil || *raw == "" {
		return nil
	}

	var reviews []models.Review
	if err := json.Unmarshal([]byte(*raw), &reviews); err != nil {
		return nil
	}

	return reviews
}

func toDBStringMap(m map[string]string) *string {
	if len(m) == 0 {
		return nil
	}

	serialized, err := json.Marshal(m)
	if err != nil {
		return nil
	}

	return lo.ToPtr(string(serialized))
}

func toStringMap(raw *string) map[string]string {
	if raw == nil || *raw == "" {
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal([]byte(*raw), &m); err != nil {
		return nil
	}

	return m
}

func rawToDBPayload(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	return lo.ToPtr(int32(*v))
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	return lo.ToPtr(int(*v))
}
