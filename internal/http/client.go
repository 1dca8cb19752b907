// Package http provides the HTTP transport used by the API client.
package http

import (
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/dialkit-io/twilio-client/internal/auth"
	"github.com/dialkit-io/twilio-client/internal/constants"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// Request represents an API request before it is handed to the transport.
// Query carries URL parameters, Form carries an application/x-www-form-urlencoded
// body. A nil Form means the request has no body.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Form    url.Values
	Headers map[string]string
}

// Response represents a successful API response with its body fully read.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP transport for the API. It applies credentials,
// retries transient failures, and translates responses into the
// package's error taxonomy.
type Client struct {
	baseURL      string
	credentials  auth.Credentials
	httpClient   *retryablehttp.Client
	userAgent    string
	logger       Logger
	debug        bool
	cache        twilio.Cache
	cacheTTL     time.Duration
	interceptors *twilio.InterceptorChain
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig configures retry behavior for transient failures.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors installs an interceptor chain run around every request.
func WithInterceptors(chain *twilio.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithCache enables response caching for GET requests.
func WithCache(cache twilio.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a new HTTP transport for the given base URL and credentials.
func NewClient(baseURL string, credentials auth.Credentials, options ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// Hand back the final response even when retries are exhausted so the
	// error body can still be parsed.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		httpClient:  retryClient,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// Do executes the request and translates the outcome. A transport-level
// failure yields a *twilio.ConnectionError. A non-2xx status with a
// parseable error body yields a *twilio.APIError; without one it yields
// twilio.ErrServerNoContent. Any 2xx status is a success.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	cacheKey := ""
	if c.cache != nil && req.Method == nethttp.MethodGet {
		cacheKey = fullURL

		if cached, err := c.cache.Get(ctx, cacheKey); err == nil {
			if c.debug && c.logger != nil {
				c.logger.Debug("HTTP cache hit", map[string]interface{}{
					"url": fullURL,
				})
			}

			return &Response{
				StatusCode: nethttp.StatusOK,
				Body:       cached.Data,
			}, nil
		}
	}

	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	var intercepted *twilio.Request
	if c.interceptors != nil {
		intercepted = &twilio.Request{
			Method:  req.Method,
			Path:    req.Path,
			Headers: httpReq.Header,
		}
		if req.Form != nil {
			intercepted.Body = []byte(req.Form.Encode())
		}

		if err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted); err != nil {
			return nil, err
		}
	}

	if c.credentials != nil {
		c.credentials.Apply(httpReq.Request)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &twilio.ConnectionError{
			Message: "unable to reach server",
			Err:     err,
		}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &twilio.ConnectionError{
			Message: "reading response body",
			Err:     err,
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
			"bytes":  len(respBody),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	var respErr error

	if httpResp.StatusCode >= nethttp.StatusBadRequest {
		if apiErr := twilio.ParseAPIError(respBody); apiErr != nil {
			respErr = apiErr
		} else {
			respErr = fmt.Errorf("status %d: %w", httpResp.StatusCode, twilio.ErrServerNoContent)
		}
	}

	if c.interceptors != nil && intercepted != nil {
		interceptedResp := &twilio.Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       respBody,
			Error:      respErr,
		}
		if err := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp); err != nil && respErr == nil {
			respErr = err
		}
	}

	if respErr != nil {
		return resp, respErr
	}

	if cacheKey != "" && httpResp.StatusCode == nethttp.StatusOK {
		entry := &twilio.CacheEntry{
			Data:      respBody,
			ExpiresAt: time.Now().Add(c.cacheTTL),
			ETag:      httpResp.Header.Get("ETag"),
		}
		if err := c.cache.Set(ctx, cacheKey, entry); err != nil && c.logger != nil {
			c.logger.Warn("caching response failed", map[string]interface{}{
				"url":   fullURL,
				"error": err.Error(),
			})
		}
	}

	return resp, nil
}

// Get performs a GET request against the given path.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// PostForm performs a POST request with a form-urlencoded body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Form:   form,
	})
}

// Delete performs a DELETE request against the given path.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodDelete,
		Path:   path,
	})
}

// GetURL performs a GET against an absolute URL that must belong to the
// client's endpoint. Pagination follow-up links come back absolute, so
// the path is extracted and re-issued through Do.
func (c *Client) GetURL(ctx context.Context, rawURL string) (*Response, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url %q: %w", rawURL, err)
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  parsed.Query(),
	})
}
