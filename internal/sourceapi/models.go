package sourceapi

import "encoding/json"

// Money is an amount with its currency as the source API reports it.
// Amount is kept as the wire string; the transformer owns numeric parsing.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// RawDeal is a deal record as delivered by the source API. Raw holds the
// verbatim payload and must be preserved through the pipeline for audit.
type RawDeal struct {
	DealID            string   `json:"deal_id"`
	ProductASIN       string   `json:"product_asin"`
	DealTitle         string   `json:"deal_title"`
	ListPrice         *Money   `json:"list_price"`
	DealPrice         *Money   `json:"deal_price"`
	SavingsPercentage *float64 `json:"savings_percentage"`
	DealStartsAt      *string  `json:"deal_starts_at"`
	DealEndsAt        *string  `json:"deal_ends_at"`
	DealType          *string  `json:"deal_type"`
	DealURL           *string  `json:"deal_url"`

	Raw json.RawMessage `json:"-"`
}

// RawProduct is a product search/detail record as delivered by the source API.
type RawProduct struct {
	ASIN                  string            `json:"asin"`
	ProductTitle          string            `json:"product_title"`
	ProductPrice          *string           `json:"product_price"`
	ProductOriginalPrice  *string           `json:"product_original_price"`
	ProductStarRating     *string           `json:"product_star_rating"`
	ProductNumRatings     *int32            `json:"product_num_ratings"`
	ProductPhoto          string            `json:"product_photo"`
	ProductURL            string            `json:"product_url"`
	ProductAvailability   *string           `json:"product_availability"`
	IsBestSeller          bool              `json:"is_best_seller"`
	IsAmazonChoice        bool              `json:"is_amazon_choice"`
	IsPrime               bool              `json:"is_prime"`
	ClimatePledgeFriendly bool              `json:"climate_pledge_friendly"`
	ProductDetails        map[string]string `json:"product_details"`
	ProductInformation    map[string]string `json:"product_information"`

	Raw json.RawMessage `json:"-"`
}

// RawReview is a review excerpt as delivered by the source API.
type RawReview struct {
	ReviewTitle      string  `json:"review_title"`
	ReviewComment    string  `json:"review_comment"`
	ReviewStarRating *string `json:"review_star_rating"`
}

type dealsPage struct {
	Deals      []json.RawMessage `json:"deals"`
	TotalPages int               `json:"total_pages"`
}

type productsPage struct {
	Products   []json.RawMessage `json:"products"`
	TotalPages int               `json:"total_pages"`
}

type reviewsData struct {
	Reviews []RawReview `json:"reviews"`
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}
