package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client is a thin facade over a resty engine. It translates simplified
// call shapes (URL string, multi-valued header map, raw body bytes) into
// engine requests and engine results back into Response values. All
// transport concerns — pooling, TLS, redirects, retries, timeouts — stay
// with the engine; the facade adds none of its own policy.
type Client struct {
	engine *resty.Client
	log    *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithEngine injects a pre-configured resty client. Engine policy
// (timeouts, proxies, default headers) and test transports are set here,
// never on the facade itself.
func WithEngine(engine *resty.Client) Option {
	return func(c *Client) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// WithLogger attaches a logger for per-dispatch debug logging.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New builds a Client. Without options it wraps a fresh engine with resty
// defaults and discards logs.
func New(opts ...Option) *Client {
	c := &Client{
		engine: resty.New(),
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and blocks until the response status and full body
// have been read. header may be nil.
func (c *Client) Get(ctx context.Context, url string, header http.Header) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, header, nil)
}

// Post issues a POST with body attached verbatim; a nil body is sent as
// zero-length. The facade infers no Content-Type — set one in header if
// needed, otherwise whatever the engine decides goes out (and shows up
// in the callback's Sent).
func (c *Client) Post(ctx context.Context, url string, header http.Header, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPost, url, header, body)
}

// GetAsync issues a GET without blocking and routes the outcome to cb.
// A nil cb discards the result silently.
func (c *Client) GetAsync(ctx context.Context, url string, header http.Header, cb Callback) {
	c.dispatch(ctx, http.MethodGet, url, header, nil, cb)
}

// PostAsync is the asynchronous counterpart of Post.
func (c *Client) PostAsync(ctx context.Context, url string, header http.Header, body []byte, cb Callback) {
	c.dispatch(ctx, http.MethodPost, url, header, body, cb)
}

// do runs the synchronous round trip.
func (c *Client) do(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, error) {
	resp, _, err := c.roundTrip(ctx, method, url, header, body)
	return resp, err
}

// dispatch runs the round trip on its own goroutine and invokes exactly
// one callback branch. The callback never runs on the caller's goroutine,
// and completions of concurrent calls may interleave in any order.
func (c *Client) dispatch(ctx context.Context, method, url string, header http.Header, body []byte, cb Callback) {
	if cb == nil {
		cb = nopCallback{}
	}
	go func() {
		resp, sent, err := c.roundTrip(ctx, method, url, header, body)
		if err != nil {
			cb.OnError(sent, err)
			return
		}
		cb.OnResponse(sent, resp)
	}()
}

// roundTrip builds the request, executes it on the engine, and converts
// the result. The returned Sent reflects the request as actually written
// to the wire; on failure err is a *TransportError carrying the same Sent.
func (c *Client) roundTrip(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, Sent, error) {
	req, err := c.newRequest(ctx, method, header, body)
	if err != nil {
		return nil, Sent{URL: url, Method: method, Header: header.Clone()}, err
	}

	id := uuid.NewString()
	c.log.Debugw("dispatching request", "id", id, "method", method, "url", url)

	start := time.Now()
	res, err := req.Execute(method, url)
	sent := reconstructSent(url, method, req)
	if err != nil {
		// A body-drain failure is a raw I/O error raised after Do
		// succeeded. Every Do failure — including redirect-policy
		// give-ups, which also carry a non-nil response — arrives as a
		// *url.Error and must not be tagged as a body read.
		var uerr *neturl.Error
		if res != nil && res.RawResponse != nil && !errors.As(err, &uerr) {
			err = fmt.Errorf("%w: %w", ErrBodyRead, err)
		}
		c.log.Debugw("request failed", "id", id, "method", method, "url", url, "error", err)
		return nil, sent, &TransportError{Request: sent, Err: err}
	}

	c.log.Debugw("request completed",
		"id", id, "method", method, "url", url,
		"status", res.StatusCode(), "elapsed", time.Since(start))
	return &Response{statusCode: res.StatusCode(), body: res.Body()}, sent, nil
}

// newRequest translates the simplified call shape into an engine request.
// Multi-valued headers are replayed one Add per value so repeated keys
// keep their order; a GET never carries a body, no matter what was
// supplied; a POST always carries one, zero-length when nil.
func (c *Client) newRequest(ctx context.Context, method string, header http.Header, body []byte) (*resty.Request, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("%w, got %q", ErrUnsupportedMethod, method)
	}

	req := c.engine.R().SetContext(ctx)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if method == http.MethodPost {
		if body == nil {
			body = []byte{}
		}
		req.SetBody(body)
	}
	return req, nil
}

// reconstructSent captures the outbound request as the engine wrote it,
// engine-added default headers included. A body that cannot be replayed
// is reported as nil rather than failing the call.
func reconstructSent(url, method string, req *resty.Request) Sent {
	sent := Sent{URL: url, Method: method}

	raw := req.RawRequest
	if raw == nil {
		// The engine never built a wire request; echo what was requested.
		sent.Header = req.Header.Clone()
		return sent
	}

	sent.Header = raw.Header.Clone()
	if raw.GetBody != nil {
		if rc, err := raw.GetBody(); err == nil {
			if b, err := io.ReadAll(rc); err == nil {
				sent.Body = b
			}
			rc.Close()
		}
	}
	return sent
}
