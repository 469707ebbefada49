package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	pkgLog "erp-lookup/pkg/log"
)

const maxErrorBody = 64 << 10

// Config configures the upstream ERP client.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// OAuth2 client credentials; TokenURL empty disables auth.
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string

	RateLimitPerMin int
	CacheSize       int
	CacheTTL        time.Duration

	Breaker BreakerConfig

	// OnBreakerStateChange is called when a collection breaker changes state.
	OnBreakerStateChange func(collection string, from, to BreakerState)
}

// Client is the HTTP wrapper for the upstream lookup collections.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rateLimiter
	cache      *responseCache
	breakers   *breakerSet
	l          pkgLog.Logger
}

// NewClient creates a new upstream client. ctx is only used by the OAuth2
// token source to pick the base HTTP client.
func NewClient(ctx context.Context, cfg Config, l pkgLog.Logger) *Client {
	base := &http.Client{Timeout: cfg.Timeout}

	httpClient := base
	if cfg.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		httpClient = cc.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
		httpClient.Timeout = cfg.Timeout
	}

	breakers := newBreakerSet(cfg.Breaker)
	breakers.onStateChange = cfg.OnBreakerStateChange

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    newRateLimiter(cfg.RateLimitPerMin),
		cache:      newResponseCache(cfg.CacheSize, cfg.CacheTTL),
		breakers:   breakers,
		l:          l,
	}
}

// Get fetches collection with params and returns the raw success body.
// Non-2xx responses come back as *ResponseError.
func (c *Client) Get(ctx context.Context, collection string, params url.Values) ([]byte, error) {
	reqURL := c.buildURL(collection, params)

	if body, ok := c.cache.get(reqURL); ok {
		return body, nil
	}

	if err := c.limiter.wait(ctx, collection); err != nil {
		return nil, fmt.Errorf("upstream rate limiter %s: %w", collection, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := c.breakers.get(collection).Execute(func() (interface{}, error) {
		return c.do(ctx, reqURL)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &ResponseError{
				Status:  http.StatusServiceUnavailable,
				Message: fmt.Sprintf("%s is temporarily unavailable", collection),
				cause:   err,
			}
		}
		return nil, err
	}

	body := result.([]byte)
	c.cache.set(reqURL, body)
	return body, nil
}

// Invalidate drops every cached response of collection.
func (c *Client) Invalidate(collection string) {
	c.cache.remove(c.buildURL(collection, nil))
}

// BreakerState reports the circuit state of collection.
func (c *Client) BreakerState(collection string) BreakerState {
	return c.breakers.state(collection)
}

func (c *Client) do(ctx context.Context, reqURL string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call upstream %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newResponseError(resp.StatusCode, raw)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}
	return body, nil
}

func (c *Client) buildURL(collection string, params url.Values) string {
	if !strings.HasPrefix(collection, "/") {
		collection = "/" + collection
	}
	u := c.baseURL + collection
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
