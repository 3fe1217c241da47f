// Package http wraps the outbound HTTP transport. It owns credential
// injection, response normalization, and the unified error shape: every
// failure mode (network error, non-2xx status, unparsable body) surfaces as
// a Go error carrying the offending URL.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/mediakit-io/ytapi/internal/auth"
	"github.com/mediakit-io/ytapi/internal/constants"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport for the API.
type Client struct {
	baseURL      string
	keys         auth.KeyProvider
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	interceptors *youtube.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables transport-level retries for 5xx and 429
// responses. Off by default: without this option every invocation performs
// exactly one network call and reports the first failure.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the underlying transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors sets the interceptor chain executed around each request.
func WithInterceptors(chain *youtube.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new API HTTP client. keys may be nil, in which case
// requests are sent without a credential.
func NewClient(baseURL string, keys auth.KeyProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Exhausted retries must still hand the response back so its body can
	// be normalized into the unified error shape.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		keys:       keys,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request against path with the given query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Do executes a request. The caller's query parameters are merged with the
// credential; the credential is applied last so it cannot be displaced,
// while caller values shadow each other last-write-wins.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.buildURL(ctx, req)
	if err != nil {
		return nil, err
	}

	reported := redactKey(fullURL)

	interceptReq := &youtube.Request{
		Method:  req.Method,
		Path:    req.Path,
		Query:   req.Query,
		Headers: make(http.Header),
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", reported, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, values := range interceptReq.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    reported,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		recordError(errorClassNetwork)

		return nil, fmt.Errorf("GET %s: %w", reported, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		recordError(errorClassNetwork)

		return nil, fmt.Errorf("reading response from %s: %w", reported, err)
	}

	recordRequest(req.Path, httpResp.StatusCode, time.Since(start))

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         reported,
			"status_code": resp.StatusCode,
		})
	}

	var respErr error
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respErr = normalizeError(reported, resp.StatusCode, body)
	}

	if c.interceptors != nil {
		interceptResp := &youtube.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      respErr,
		}

		err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
		if err != nil {
			return resp, err
		}
	}

	return resp, respErr
}

// buildURL assembles the full request URL: base + path + caller query with
// the credential merged in.
func (c *Client) buildURL(ctx context.Context, req *Request) (string, error) {
	query := youtube.CloneValues(req.Query)

	if c.keys != nil {
		key, err := c.keys.APIKey(ctx)
		if err != nil {
			return "", fmt.Errorf("getting API key: %w", err)
		}

		query.Set(constants.APIKeyParam, key)
	}

	fullURL := c.baseURL + req.Path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	return fullURL, nil
}

// normalizeError turns a non-2xx response into the unified error shape. The
// body is parsed as JSON even on failures because the API reports structured
// error envelopes; bodies that do not parse fall back to raw text.
func normalizeError(reportedURL string, statusCode int, body []byte) error {
	detail, err := youtube.ParseErrorEnvelope(body)
	if err != nil {
		return &youtube.APIError{
			URL:        reportedURL,
			StatusCode: statusCode,
			Raw:        strings.TrimSpace(string(body)),
		}
	}

	return &youtube.APIError{
		URL:        reportedURL,
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// redactKey masks the credential in URLs destined for error messages and
// logs.
func redactKey(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	if query.Get(constants.APIKeyParam) == "" {
		return rawURL
	}

	query.Set(constants.APIKeyParam, "REDACTED")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}
