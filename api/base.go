package api

import (
	"context"
	"net/http"
	"time"

	"github.com/chinmay1088/dogechain/httpclient"
	"go.uber.org/zap"
)

// Callback is the completion handler every query method takes. It runs
// exactly once, with either err set or result holding the response body.
type Callback func(err error, result string)

// Client handles calls to the explorer's query API
type Client struct {
	baseURL    string
	chain      string
	timeout    time.Duration
	httpClient httpclient.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another explorer instance.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithChain sets the chain path segment.
func WithChain(chain string) Option {
	return func(c *Client) { c.chain = chain }
}

// WithHTTPClient replaces the default resty transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each request of the default transport. It has no effect
// together with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new API client
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		chain:   DefaultChain,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = httpclient.NewRestyClient(c.timeout, c.logger)
	}
	return c
}

// BaseURL returns the explorer base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Chain returns the chain path segment.
func (c *Client) Chain() string {
	return c.chain
}

// URL returns the request URL for ep with param appended.
func (c *Client) URL(ep Endpoint, param string) string {
	return buildURL(c.baseURL, c.chain, ep, param)
}

// Do runs the query synchronously.
func (c *Client) Do(ctx context.Context, ep Endpoint, param string) (string, error) {
	if err := validate(ep, param); err != nil {
		return "", err
	}
	return c.fetch(ctx, c.URL(ep, param))
}

// Go runs the query in the background and reports through done. A missing
// parameter completes done before Go returns, without touching the network.
// A nil done still issues the request and discards the outcome.
func (c *Client) Go(ep Endpoint, param string, done Callback) {
	if done == nil {
		done = discard
	}
	if err := validate(ep, param); err != nil {
		done(err, "")
		return
	}
	url := c.URL(ep, param)
	go func() {
		result, err := c.fetch(context.Background(), url)
		done(err, result)
	}()
}

func discard(error, string) {}

func validate(ep Endpoint, param string) error {
	if ep.Required() && param == "" {
		return &ValidationError{Message: ep.Missing}
	}
	return nil
}

// fetch issues exactly one GET. Transport errors are returned untouched.
func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	resp, err := c.httpClient.Get(ctx, url, nil)
	if err != nil {
		c.logger.Debug("query failed", zap.String("url", url), zap.Error(err))
		return "", err
	}

	body := string(resp.Body())
	c.logger.Debug("query completed",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(body)),
	)

	if resp.StatusCode() != http.StatusOK {
		return "", &RemoteError{StatusCode: resp.StatusCode(), Body: body}
	}
	return body, nil
}
