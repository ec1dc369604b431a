package models

import (
	"encoding/json"
	"time"
)

// PricePoint is a single entry in a product's price history.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Price  float64   `json:"price"`
	Source string    `json:"source"`
}

// Product is catalog product model.
type Product struct {
	ID              int
	ASIN            *string
	Title           string
	Description     string
	Price           *float64
	SalePrice       *float64
	Rating          *float64
	RatingsTotal    *int32
	ImageURL        string
	ProductURL      string
	AffiliateURL    string
	InStock         bool
	Availability    string
	Attributes      map[string]string
	Specifications  map[string]string
	PriceHistory    []PricePoint
	Reviews         []Review
	CurrentDealID   *int
	HasActiveDeal   bool
	DealLastUpdated *time.Time
	Source          string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Deal is a time-bounded discount offer tied to a product by its ASIN.
// ASIN is not unique across deal rows; a product accumulates deal rows over
// time and at most one of them is active.
type Deal struct {
	ID                int
	ASIN              string
	Title             string
	ListPrice         *float64
	DealPrice         *float64
	SavingsPercentage *float64
	StartsAt          time.Time
	EndsAt            *time.Time
	DealType          *string
	DealURL           *string
	RawPayload        json.RawMessage
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// ExpiredDeal identifies a deal row deactivated by expiry cleanup.
type ExpiredDeal struct {
	ID   int
	ASIN string
}

// Snapshot is an immutable point-in-time audit record of a product as it
// arrived from the source API.
type Snapshot struct {
	ID           int
	ProductID    int
	ASIN         string
	Source       string
	RawPayload   json.RawMessage
	Price        *float64
	Availability *string
	InStock      bool
	CapturedAt   time.Time
}

// SyncRun is deal sync pass bookkeeping model.
type SyncRun struct {
	ID               int
	CreatedAt        time.Time
	FinishedAt       *time.Time
	IsSuccess        *bool
	StatusMessage    *string
	DealsProcessed   *int32
	DealsAdded       *int32
	DealsUpdated     *int32
	DealsDeactivated *int32
}

// DealRecord is a normalized incoming deal produced by the transformer.
// It is the single internal shape isolating all source-format variance.
type DealRecord struct {
	ASIN              string `validate:"required"`
	Title             string
	ListPrice         *float64
	DealPrice         *float64
	SavingsPercentage *float64
	StartsAt          time.Time `validate:"required"`
	EndsAt            *time.Time
	DealType          *string
	DealURL           *string `validate:"omitempty,url"`
	RawPayload        json.RawMessage
}

// ProductRecord is a normalized incoming product produced by the transformer.
type ProductRecord struct {
	ASIN           string `validate:"required"`
	Title          string
	Price          *float64
	OriginalPrice  *float64
	Rating         *float64
	RatingsTotal   *int32
	ImageURL       string
	ProductURL     string
	AffiliateURL   string
	InStock        bool
	Availability   string
	Attributes     map[string]string
	Specifications map[string]string
	Reviews        []Review
	RawPayload     json.RawMessage
}

// Review is a short review excerpt attached to a product during enrichment.
type Review struct {
	Title   string   `json:"title"`
	Comment string   `json:"comment"`
	Rating  *float64 `json:"rating,omitempty"`
}

// SyncResult is the aggregate outcome of one deal sync pass.
type SyncResult struct {
	Success          bool   `json:"success"`
	DealsProcessed   int    `json:"dealsProcessed"`
	DealsAdded       int    `json:"dealsAdded"`
	DealsUpdated     int    `json:"dealsUpdated"`
	DealsDeactivated int    `json:"dealsDeactivated"`
	Error            string `json:"error,omitempty"`
}

// UpsertResult is the aggregate outcome of one product upsert batch.
type UpsertResult struct {
	Success      bool   `json:"success"`
	SavedCount   int    `json:"savedCount"`
	UpdatedCount int    `json:"updatedCount"`
	Total        int    `json:"total"`
	Error        string `json:"error,omitempty"`
}
