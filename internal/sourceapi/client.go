package sourceapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"
)

// Config holds source API client configuration. The client is stateless per
// call; all authentication material is provided here at construction.
type Config struct {
	BaseURL string     `env:"SOURCE_API_BASE_URL"`
	APIKey  string     `env:"SOURCE_API_KEY"`
	Host    string     `env:"SOURCE_API_HOST"`
	Country string     `env:"SOURCE_API_COUNTRY" envDefault:"US"`
	Rate    rate.Limit `env:"SOURCE_API_RATE" envDefault:"5"`
}

// Client fetches deal and product records from the external product-data API.
type Client struct {
	client  *http.Client
	cfg     Config
	limiter *rate.Limiter
}

// NewClient returns new Client.
func NewClient(client *http.Client, cfg Config) *Client {
	return &Client{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(cfg.Rate, 1),
	}
}

// Deals fetches the full current deal listing, following pagination until the
// last page. Each returned record retains its verbatim payload.
func (c *Client) Deals(ctx context.Context) ([]RawDeal, error) {
	var deals []RawDeal

	for page := 1; ; page++ {
		data, err := c.get(ctx, "deals-v2", url.Values{
			"country": {c.cfg.Country},
			"page":    {strconv.Itoa(page)},
		})
		if err != nil {
			return nil, fmt.Errorf("can't fetch deals page %d: %w", page, err)
		}

		var pageData dealsPage
		if err := json.Unmarshal(data, &pageData); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}

		for _, rawDeal := range pageData.Deals {
			deal, err := decodeDeal(rawDeal)
			if err != nil {
				return nil, err
			}
			deals = append(deals, *deal)
		}

		if len(pageData.Deals) == 0 || page >= pageData.TotalPages {
			return deals, nil
		}
	}
}

// SearchProducts fetches product records matching query, following pagination.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]RawProduct, error) {
	var products []RawProduct

	for page := 1; ; page++ {
		data, err := c.get(ctx, "search", url.Values{
			"query":   {query},
			"country": {c.cfg.Country},
			"page":    {strconv.Itoa(page)},
		})
		if err != nil {
			return nil, fmt.Errorf("can't fetch search page %d: %w", page, err)
		}

		var pageData productsPage
		if err := json.Unmarshal(data, &pageData); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}

		for _, rawProduct := range pageData.Products {
			product, err := decodeProduct(rawProduct)
			if err != nil {
				return nil, err
			}
			products = append(products, *product)
		}

		if len(pageData.Products) == 0 || page >= pageData.TotalPages {
			return products, nil
		}
	}
}

// ProductDetails fetches the detail record for one ASIN.
func (c *Client) ProductDetails(ctx context.Context, asin string) (*RawProduct, error) {
	data, err := c.get(ctx, "product-details", url.Values{
		"asin":    {asin},
		"country": {c.cfg.Country},
	})
	if err != nil {
		return nil, fmt.Errorf("can't fetch product details: %w", err)
	}

	return decodeProduct(data)
}

// ProductReviews fetches top review excerpts for one ASIN.
func (c *Client) ProductReviews(ctx context.Context, asin string) ([]RawReview, error) {
	data, err := c.get(ctx, "product-reviews", url.Values{
		"asin":    {asin},
		"country": {c.cfg.Country},
	})
	if err != nil {
		return nil, fmt.Errorf("can't fetch product reviews: %w", err)
	}

	var reviews reviewsData
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return reviews.Reviews, nil
}

// get performs one rate-limited API request and returns the envelope's data payload.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("can't acquire rate limit slot: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.cfg.BaseURL, endpoint, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("x-rapidapi-key", c.cfg.APIKey)
	req.Header.Add("x-rapidapi-host", c.cfg.Host)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatusNotOK
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return env.Data, nil
}

func decodeDeal(raw json.RawMessage) (*RawDeal, error) {
	var deal RawDeal
	if err := json.Unmarshal(raw, &deal); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	deal.Raw = raw

	return &deal, nil
}

func decodeProduct(raw json.RawMessage) (*RawProduct, error) {
	var product RawProduct
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	product.Raw = raw

	return &product, nil
}
