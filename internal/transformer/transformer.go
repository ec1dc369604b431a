// Package transformer normalizes raw source API records into the single
// internal record shapes the rest of the pipeline consumes. All source-format
// variance is isolated here.
package transformer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/dealhaven/dealsync/internal/sourceapi"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// UnavailableSentinel is the source's availability string that signals a
// product can not be bought. Any other value, including unrecognized ones,
// means available.
const UnavailableSentinel = "Currently unavailable"

// Option is custom configuration of Transformer.
type Option func(t *Transformer)

// Transformer normalizes raw deal and product records.
type Transformer struct {
	partnerTag string
	source     string
	validate   *validator.Validate
	clock      Clock
}

// NewTransformer returns new Transformer deriving affiliate URLs with partnerTag.
func NewTransformer(partnerTag string, source string, ops ...Option) *Transformer {
	tra := &Transformer{
		partnerTag: partnerTag,
		source:     source,
		validate:   validator.New(),
		clock:      systemClock{},
	}

	for _, op := range ops {
		op(tra)
	}

	return tra
}

// Deal normalizes one raw deal record.
//
// Missing or non-numeric amounts normalize to nil, never to zero. The
// source's stated savings percentage passes through untouched even when it
// disagrees with the two prices. A deal without a start timestamp is treated
// as having just started. A nil end timestamp means no known expiry.
func (t *Transformer) Deal(raw sourceapi.RawDeal) (models.DealRecord, error) {
	record := models.DealRecord{
		ASIN:              raw.ProductASIN,
		Title:             raw.DealTitle,
		ListPrice:         moneyAmount(raw.ListPrice),
		DealPrice:         moneyAmount(raw.DealPrice),
		SavingsPercentage: raw.SavingsPercentage,
		StartsAt:          t.startTime(raw.DealStartsAt),
		EndsAt:            parseTime(raw.DealEndsAt),
		DealType:          raw.DealType,
		DealURL:           raw.DealURL,
		RawPayload:        raw.Raw,
	}

	if err := t.validate.Struct(&record); err != nil {
		return models.DealRecord{}, fmt.Errorf("invalid deal record: %w", err)
	}

	return record, nil
}

// Product normalizes one raw product record.
func (t *Transformer) Product(raw sourceapi.RawProduct) (models.ProductRecord, error) {
	availability := ""
	if raw.ProductAvailability != nil {
		availability = *raw.ProductAvailability
	}

	record := models.ProductRecord{
		ASIN:           raw.ASIN,
		Title:          raw.ProductTitle,
		Price:          parseMoneyPtr(raw.ProductPrice),
		OriginalPrice:  parseMoneyPtr(raw.ProductOriginalPrice),
		Rating:         parseFloatPtr(raw.ProductStarRating),
		RatingsTotal:   raw.ProductNumRatings,
		ImageURL:       raw.ProductPhoto,
		ProductURL:     raw.ProductURL,
		AffiliateURL:   AffiliateURL(raw.ProductURL, raw.ASIN, t.partnerTag),
		InStock:        availability != UnavailableSentinel,
		Availability:   availability,
		Attributes:     raw.ProductDetails,
		Specifications: raw.ProductInformation,
		RawPayload:     raw.Raw,
	}

	if err := t.validate.Struct(&record); err != nil {
		return models.ProductRecord{}, fmt.Errorf("invalid product record: %w", err)
	}

	return record, nil
}

// Reviews normalizes raw review excerpts.
func (t *Transformer) Reviews(raw []sourceapi.RawReview) []models.Review {
	return lo.Map(raw, func(review sourceapi.RawReview, _ int) models.Review {
		return models.Review{
			Title:   review.ReviewTitle,
			Comment: review.ReviewComment,
			Rating:  parseFloatPtr(review.ReviewStarRating),
		}
	})
}

// Source returns the source identifier stamped on history entries and snapshots.
func (t *Transformer) Source() string {
	return t.source
}

// AffiliateURL derives the affiliate link for a product. The derivation is
// pure: strip query parameters from the original URL, or build a canonical
// product URL from the ASIN when no URL is known, then append the partner tag.
func AffiliateURL(productURL, asin, partnerTag string) string {
	base := productURL
	if ix := strings.IndexByte(base, '?'); ix >= 0 {
		base = base[:ix]
	}
	if base == "" {
		base = fmt.Sprintf("https://www.amazon.com/dp/%s", asin)
	}

	return fmt.Sprintf("%s?tag=%s", base, partnerTag)
}

// ParseMoney extracts a decimal amount from a price string such as "$1,299.99".
// It returns nil when no recognizable number is present; a nil price means
// unknown, not free.
func ParseMoney(price string) *float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		if r == ',' {
			return -1
		}
		return ' '
	}, price)

	for _, field := range strings.Fields(cleaned) {
		amount, err := strconv.ParseFloat(field, 64)
		if err == nil {
			return &amount
		}
	}

	return nil
}

func (t *Transformer) startTime(raw *string) time.Time {
	if parsed := parseTime(raw); parsed != nil {
		return *parsed
	}
	return t.clock.Now()
}

func parseTime(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil
	}

	parsed = parsed.UTC()
	return &parsed
}

func moneyAmount(money *sourceapi.Money) *float64 {
	if money == nil {
		return nil
	}
	return ParseMoney(money.Amount)
}

func parseMoneyPtr(price *string) *float64 {
	if price == nil {
		return nil
	}
	return ParseMoney(*price)
}

func parseFloatPtr(raw *string) *float64 {
	if raw == nil {
		return nil
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		return nil
	}

	return &parsed
}

// WithClock sets Transformer's custom Clock.
func WithClock(c Clock) Option {
	return func(t *Transformer) {
		t.clock = c
	}
}
