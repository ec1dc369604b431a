package transformer_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/dealhaven/dealsync/internal/sourceapi"
	"github.com/dealhaven/dealsync/internal/transformer"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	partnerTag = "dealhaven-20"
	sourceName = "amazon-data-api"
	loc        = func() *time.Location {
		loc, err := time.LoadLocation("Etc/UTC")
		if err != nil {
			panic(err)
		}
		return loc
	}()
	now        = time.Date(2024, time.April, 2, 1, 1, 1, 0, loc)
	rawPayload = json.RawMessage(`{"deal_id":"DEAL123"}`)
)

func TestUnitDeal(t *testing.T) {
	tra := transformer.NewTransformer(partnerTag, sourceName, transformer.WithClock(fakeClock{now: now}))

	raw := sourceapi.RawDeal{
		DealID:            "DEAL123",
		ProductASIN:       "B001234567",
		DealTitle:         "Big discount",
		ListPrice:         &sourceapi.Money{Amount: "129.99", Currency: "USD"},
		DealPrice:         &sourceapi.Money{Amount: "99.99", Currency: "USD"},
		SavingsPercentage: lo.ToPtr(50.0), // disagrees with the prices on purpose
		DealStartsAt:      lo.ToPtr("2024-04-01T00:00:00Z"),
		DealEndsAt:        lo.ToPtr("2024-04-08T00:00:00Z"),
		DealType:          lo.ToPtr("DEAL_OF_THE_DAY"),
		DealURL:           lo.ToPtr("https://www.amazon.com/deal/abc"),
		Raw:               rawPayload,
	}

	record, err := tra.Deal(raw)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.DealRecord{
		ASIN:              "B001234567",
		Title:             "Big discount",
		ListPrice:         lo.ToPtr(129.99),
		DealPrice:         lo.ToPtr(99.99),
		SavingsPercentage: lo.ToPtr(50.0),
		StartsAt:          time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:            lo.ToPtr(time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC)),
		DealType:          lo.ToPtr("DEAL_OF_THE_DAY"),
		DealURL:           lo.ToPtr("https://www.amazon.com/deal/abc"),
		RawPayload:        rawPayload,
	}, record, "should map all fields, keeping the stated savings untouched")
}

func TestUnitDealMissingFields(t *testing.T) {
	tra := transformer.NewTransformer(partnerTag, sourceName, transformer.WithClock(fakeClock{now: now}))

	t.Run("missing start means just started", func(t *testing.T) {
		record, err := tra.Deal(sourceapi.RawDeal{ProductASIN: "B001234567"})

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, now, record.StartsAt, "should default the start to the current time")
		assert.Nil(t, record.EndsAt, "should keep the end unknown")
	})

	t.Run("unparseable timestamps", func(t *testing.T) {
		record, err := tra.Deal(sourceapi.RawDeal{
			ProductASIN:  "B001234567",
			DealStartsAt: lo.ToPtr("yesterday"),
			DealEndsAt:   lo.ToPtr("next week"),
		})

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, now, record.StartsAt, "should default an unparseable start to the current time")
		assert.Nil(t, record.EndsAt, "should drop an unparseable end")
	})

	t.Run("missing prices stay nil", func(t *testing.T) {
		record, err := tra.Deal(sourceapi.RawDeal{
			ProductASIN: "B001234567",
			DealPrice:   &sourceapi.Money{Amount: "not a price"},
		})

		require.NoError(t, err, "shouldn't return any error")
		assert.Nil(t, record.ListPrice, "should keep a missing list price nil")
		assert.Nil(t, record.DealPrice, "should keep an unparseable deal price nil, never zero")
	})

	t.Run("missing asin", func(t *testing.T) {
		_, err := tra.Deal(sourceapi.RawDeal{DealTitle: "No product"})

		require.ErrorContains(t, err, "invalid deal record", "should reject a deal without a business key")
	})

	t.Run("malformed deal url", func(t *testing.T) {
		_, err := tra.Deal(sourceapi.RawDeal{
			ProductASIN: "B001234567",
			DealURL:     lo.ToPtr("not a url"),
		})

		require.ErrorContains(t, err, "invalid deal record", "should reject a malformed deal url")
	})
}

func TestUnitProduct(t *testing.T) {
	tra := transformer.NewTransformer(partnerTag, sourceName)

	raw := sourceapi.RawProduct{
		ASIN:                 "B001234567",
		ProductTitle:         "Water bottle",
		ProductPrice:         lo.ToPtr("$1,299.99"),
		ProductOriginalPrice: lo.ToPtr("$1,499.99"),
		ProductStarRating:    lo.ToPtr("4.5"),
		ProductNumRatings:    lo.ToPtr(int32(1234)),
		ProductPhoto:         "https://images.example.com/bottle.jpg",
		ProductURL:           "https://www.amazon.com/dp/B001234567?ref=sr_1_1",
		ProductAvailability:  lo.ToPtr("In Stock"),
		ProductDetails:       map[string]string{"Color": "Blue"},
		ProductInformation:   map[string]string{"Weight": "300g"},
		Raw:                  rawPayload,
	}

	record, err := tra.Product(raw)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.ProductRecord{
		ASIN:           "B001234567",
		Title:          "Water bottle",
		Price:          lo.ToPtr(1299.99),
		OriginalPrice:  lo.ToPtr(1499.99),
		Rating:         lo.ToPtr(4.5),
		RatingsTotal:   lo.ToPtr(int32(1234)),
		ImageURL:       "https://images.example.com/bottle.jpg",
		ProductURL:     "https://www.amazon.com/dp/B001234567?ref=sr_1_1",
		AffiliateURL:   "https://www.amazon.com/dp/B001234567?tag=dealhaven-20",
		InStock:        true,
		Availability:   "In Stock",
		Attributes:     map[string]string{"Color": "Blue"},
		Specifications: map[string]string{"Weight": "300g"},
		RawPayload:     rawPayload,
	}, record, "should map all fields and derive the affiliate url")
}

func TestUnitProductAvailability(t *testing.T) {
	tra := transformer.NewTransformer(partnerTag, sourceName)

	tests := map[string]struct {
		availability *string
		wantInStock  bool
	}{
		"unavailable sentinel": {
			availability: lo.ToPtr(transformer.UnavailableSentinel),
			wantInStock:  false,
		},
		"in stock": {
			availability: lo.ToPtr("In Stock"),
			wantInStock:  true,
		},
		"unrecognized value means available": {
			availability: lo.ToPtr("Only 3 left in stock"),
			wantInStock:  true,
		},
		"missing availability means available": {
			availability: nil,
			wantInStock:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			record, err := tra.Product(sourceapi.RawProduct{
				ASIN:                "B001234567",
				ProductAvailability: tt.availability,
			})

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.wantInStock, record.InStock, "should derive stock state from the availability string")
		})
	}
}

func TestUnitReviews(t *testing.T) {
	tra := transformer.NewTransformer(partnerTag, sourceName)

	reviews := tra.Reviews([]sourceapi.RawReview{
		{ReviewTitle: "Great", ReviewComment: "Works well", ReviewStarRating: lo.ToPtr("5.0")},
		{ReviewTitle: "Meh", ReviewComment: "Broke fast", ReviewStarRating: lo.ToPtr("not a rating")},
	})

	assert.Equal(t, []models.Review{
		{Title: "Great", Comment: "Works well", Rating: lo.ToPtr(5.0)},
		{Title: "Meh", Comment: "Broke fast"},
	}, reviews, "should map reviews and drop unparseable ratings")
}

func TestUnitAffiliateURL(t *testing.T) {
	tests := map[string]struct {
		productURL string
		asin       string
		want       string
	}{
		"strips query parameters": {
			productURL: "https://www.amazon.com/dp/B001234567?ref=sr_1_1&qid=42",
			asin:       "B001234567",
			want:       "https://www.amazon.com/dp/B001234567?tag=dealhaven-20",
		},
		"keeps a clean url": {
			productURL: "https://www.amazon.com/dp/B001234567",
			asin:       "B001234567",
			want:       "https://www.amazon.com/dp/B001234567?tag=dealhaven-20",
		},
		"builds canonical url from asin": {
			productURL: "",
			asin:       "B007654321",
			want:       "https://www.amazon.com/dp/B007654321?tag=dealhaven-20",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := transformer.AffiliateURL(tt.productURL, tt.asin, partnerTag)
			assert.Equal(t, tt.want, got, "should derive the affiliate url")
		})
	}
}

func TestUnitParseMoney(t *testing.T) {
	tests := map[string]struct {
		price string
		want  *float64
	}{
		"plain amount":         {price: "99.99", want: lo.ToPtr(99.99)},
		"currency symbol":      {price: "$99.99", want: lo.ToPtr(99.99)},
		"thousands separators": {price: "$1,299.99", want: lo.ToPtr(1299.99)},
		"currency code suffix": {price: "129.50 USD", want: lo.ToPtr(129.5)},
		"whole amount":         {price: "45", want: lo.ToPtr(45.0)},
		"no number":            {price: "currently unavailable", want: nil},
		"empty string":         {price: "", want: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := transformer.ParseMoney(tt.price)
			assert.Equal(t, tt.want, got, "should extract the decimal amount or nil")
		})
	}
}

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}
