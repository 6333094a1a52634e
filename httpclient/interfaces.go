// Package httpclient is the transport under the explorer query client. It
// only issues GETs, never retries, and treats every status code as a
// completed round trip; interpreting the status is left to the caller.
package httpclient

import "context"

// Response is a completed round trip: the full body and the status code,
// whatever that code is.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client issues a single GET per call. An error means no response arrived
// (DNS, connection, timeout, cancelled context) and must reach the caller
// unwrapped.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
