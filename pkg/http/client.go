package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vatsim-traffic/pkg/log"
)

// Client represents an HTTP client for JSON APIs with configuration options.
type Client struct {
	baseURL        string
	client         *http.Client
	defaultHeaders map[string]string
	backoff        *BackoffConfig
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	DefaultHeaders      map[string]string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Backoff             *BackoffConfig
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 2
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 10 * time.Second
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		client:         client,
		defaultHeaders: opts.DefaultHeaders,
		backoff:        opts.Backoff,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request to the specified path with optional query parameters
// and headers, decoding the JSON response into successResp.
// It returns the status code and error if any.
func (hc *Client) Get(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, successResp any) (int, error) {
	return hc.doRequestWithBackoff(ctx, http.MethodGet, path, queryParams, headers, successResp, hc.backoff)
}

// doRequestWithBackoff runs doRequest, retrying failed attempts according to
// the backoff configuration. Only transport errors and 5xx responses retry.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, successResp any, backoff *BackoffConfig) (int, error) {
	if backoff == nil {
		return hc.doRequest(ctx, method, path, queryParams, headers, successResp)
	}

	var status int
	var err error

	for attempt := 0; ; attempt++ {
		status, err = hc.doRequest(ctx, method, path, queryParams, headers, successResp)
		if err == nil || !retryable(status) || attempt >= backoff.MaxRetries {
			return status, err
		}

		wait := backoff.interval(attempt)
		log.Warnw("request failed, retrying",
			"method", method, "path", path, "status", status,
			"attempt", attempt+1, "maxRetries", backoff.MaxRetries, "wait", wait, "error", err)

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// retryable reports whether a response status is worth another attempt.
// Status 0 means the request never completed (transport error).
func retryable(status int) bool {
	return status == 0 || status >= 500
}

// doRequest sends a single HTTP request and decodes the JSON response.
// It returns the status code and error if any.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, successResp any) (int, error) {
	requestURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		requestURL += "?" + buildQueryString(queryParams)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	log.Debugw("request executed",
		"method", method, "url", requestURL,
		"status", resp.StatusCode, "latency", time.Since(start), "bytes", len(bodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("http error: status %d", resp.StatusCode)
	}

	if successResp != nil {
		if err := json.Unmarshal(bodyBytes, successResp); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return hc.baseURL + path
}

// buildQueryString builds a query string from parameters
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}

	return values.Encode()
}
