// Package catalog fetches the storefront product list and derives the
// visible subset for a search query and category.
package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"storefront/models"
)

const (
	defaultBaseURL = "https://fakestoreapi.com"
	defaultTimeout = 10 * time.Second

	// DefaultLimit is the number of products requested when no limit is given.
	DefaultLimit = 20
)

// ErrUnavailable is the single failure kind reported by the fetcher. Network
// failures, non-OK responses and malformed payloads all match it with errors.Is.
var ErrUnavailable = errors.New("catalog: data unavailable")

// FetchError describes why a fetch failed. It always matches ErrUnavailable.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return "catalog: " + e.Op + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrUnavailable }

// Fetcher retrieves a bounded product list.
type Fetcher interface {
	FetchProducts(ctx context.Context, limit int) ([]models.Product, error)
}

// Config describes how the products API client should be initialised.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a thin wrapper around the public products endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client, applying defaults for any unset field.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("catalog: invalid base url %q", baseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// FetchProducts issues one GET request for at most limit products.
func (c *Client) FetchProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	endpoint := c.baseURL + "/products?limit=" + strconv.Itoa(limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "get products", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{Op: "get products", Err: errors.Errorf("upstream returned status %s", resp.Status)}
	}

	var payload []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Op: "decode products", Err: errors.Wrap(err, "parse json")}
	}

	if err := validate(payload); err != nil {
		return nil, &FetchError{Op: "decode products", Err: err}
	}

	if len(payload) > limit {
		payload = payload[:limit]
	}
	return payload, nil
}

func validate(products []models.Product) error {
	seen := make(map[int]struct{}, len(products))
	for i, product := range products {
		if product.Price.IsNegative() {
			return errors.Errorf("product %d has negative price %s", product.ID, product.Price)
		}
		if _, ok := seen[product.ID]; ok {
			return errors.Errorf("duplicate product id %d at index %d", product.ID, i)
		}
		seen[product.ID] = struct{}{}
	}
	return nil
}
