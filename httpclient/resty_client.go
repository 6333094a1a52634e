package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RestyClient is the default Client, backed by resty.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient. A zero timeout leaves the request
// bounded only by the caller's context. A nil logger keeps resty's default.
func NewRestyClient(timeout time.Duration, logger *zap.Logger) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetRetryCount(0)
	if logger != nil {
		c.SetLogger(logger.Sugar())
	}
	return &RestyClient{client: c}
}

// Get sends one GET. The URL is used as given, so a path parameter the
// caller did not encode stays unencoded. Transport failures are returned
// exactly as resty reports them; non-2xx statuses are not errors here.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return response{body: resp.Body(), status: resp.StatusCode()}, nil
}

// response snapshots what the query client reads from a resty response.
type response struct {
	body   []byte
	status int
}

func (r response) Body() []byte    { return r.body }
func (r response) StatusCode() int { return r.status }
