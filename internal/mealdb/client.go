package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Errors returned by the client. Every failure wraps exactly one of these.
var (
	// ErrNetworkOrParse covers transport failures, non-2xx statuses and
	// bodies that are not the expected JSON.
	ErrNetworkOrParse = errors.New("mealdb: request failed")
	// ErrNotFound means the service answered but had no matching record.
	ErrNotFound = errors.New("mealdb: not found")
)

// RecipeFetcher defines the read operations the explorer needs.
// This interface is implemented by *Client and can be used for testing.
type RecipeFetcher interface {
	SearchByIngredient(ctx context.Context, ingredient string) ([]RecipeSummary, error)
	LookupByID(ctx context.Context, id string) (*RecipeDetail, error)
}

// Ensure Client implements RecipeFetcher at compile time.
var _ RecipeFetcher = (*Client)(nil)

// Client talks to TheMealDB HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public v1 endpoint with the shared test key.
	DefaultBaseURL   = "https://www.themealdb.com/api/json/v1/1"
	defaultUserAgent = "forager/0.1"
	requestTimeout   = 15 * time.Second
)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client rooted at baseURL. An empty baseURL uses
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// SearchByIngredient lists recipes that use the ingredient. A response with
// no meals is not an error: it yields an empty, non-nil slice.
func (c *Client) SearchByIngredient(ctx context.Context, ingredient string) ([]RecipeSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: client is nil", ErrNetworkOrParse)
	}
	var payload filterResponse
	if err := c.get(ctx, "filter.php", ingredient, &payload); err != nil {
		return nil, err
	}
	out := make([]RecipeSummary, 0, len(payload.Meals))
	for _, rec := range payload.Meals {
		out = append(out, rec.summary())
	}
	return out, nil
}

// LookupByID fetches the full record for a recipe id. Only the first record
// of the response is used.
func (c *Client) LookupByID(ctx context.Context, id string) (*RecipeDetail, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: client is nil", ErrNetworkOrParse)
	}
	var payload lookupResponse
	if err := c.get(ctx, "lookup.php", id, &payload); err != nil {
		return nil, err
	}
	if len(payload.Meals) == 0 {
		return nil, fmt.Errorf("%w: recipe %q", ErrNotFound, id)
	}
	detail := payload.Meals[0].detail()
	return &detail, nil
}

// get issues GET <base>/<endpoint>?i=<value>. The value is percent-encoded
// with %20 for spaces, matching encodeURIComponent.
func (c *Client) get(ctx context.Context, endpoint, value string, dest any) error {
	rel := &url.URL{Path: endpoint, RawQuery: "i=" + escapeQueryValue(value)}
	return c.doURL(ctx, http.MethodGet, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrNetworkOrParse, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %w", ErrNetworkOrParse, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: api %s returned status %d", ErrNetworkOrParse, rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrNetworkOrParse, err)
	}
	return nil
}

func escapeQueryValue(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	// Endpoints resolve relative to the base, so the path must end in a slash.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
