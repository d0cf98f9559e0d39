// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package deepl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deeplcli/deepl/lib/netutil"
	"github.com/deeplcli/deepl/lib/version"
)

const (
	// DefaultServerURL is the DeepL API Free endpoint.
	DefaultServerURL = "https://api-free.deepl.com"

	// DefaultTimeout bounds each API call when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	// authScheme prefixes the key in the Authorization header.
	authScheme = "DeepL-Auth-Key "
)

// KeySource supplies the auth key for each request. An empty key with a
// nil error means no key is configured.
type KeySource interface {
	AuthKey() (string, error)
}

// StaticKey is a KeySource that always returns the same key.
type StaticKey string

// AuthKey returns the key.
func (k StaticKey) AuthKey() (string, error) {
	return string(k), nil
}

// Config holds configuration for creating a Client.
type Config struct {
	// ServerURL is the root URL for API requests. Defaults to
	// DefaultServerURL. Must use HTTPS.
	ServerURL string

	// Keys supplies the auth key. Required.
	Keys KeySource

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Timeout bounds each call, including reading the response body.
	// Defaults to DefaultTimeout.
	Timeout time.Duration

	// UserAgent is sent with every request. Defaults to
	// version.UserAgent().
	UserAgent string

	// Logger receives request and response records at debug level.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a DeepL API client. It holds no per-call state and is safe
// for concurrent use, although the CLI makes a single call per process.
type Client struct {
	serverURL  string
	keys       KeySource
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a DeepL API client from the given configuration.
// Returns an error if the configuration is invalid.
func NewClient(config Config) (*Client, error) {
	serverURL := config.ServerURL
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	serverURL = strings.TrimRight(serverURL, "/")

	if !strings.HasPrefix(serverURL, "https://") {
		return nil, fmt.Errorf("deepl: API client requires HTTPS (got %q)", serverURL)
	}

	if config.Keys == nil {
		return nil, fmt.Errorf("deepl: no key source configured")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout < 0 {
		return nil, fmt.Errorf("deepl: timeout must be positive (got %s)", timeout)
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		serverURL:  serverURL,
		keys:       config.Keys,
		httpClient: httpClient,
		timeout:    timeout,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

// request describes one API call.
type request struct {
	method string
	path   string

	// form is sent as an application/x-www-form-urlencoded body when
	// non-nil.
	form url.Values

	// accept overrides the Accept header.
	accept string
}

// authKey resolves the auth key, mapping an absent key to ErrNoAuthKey.
func (client *Client) authKey() (string, error) {
	key, err := client.keys.AuthKey()
	if err != nil {
		return "", fmt.Errorf("deepl: resolving auth key: %w", err)
	}
	if key == "" {
		return "", ErrNoAuthKey
	}
	return key, nil
}

// do resolves the auth key and sends the request.
func (client *Client) do(ctx context.Context, req request) ([]byte, error) {
	key, err := client.authKey()
	if err != nil {
		return nil, err
	}
	return client.send(ctx, key, req)
}

// send executes one authenticated request and returns the response
// body. On non-2xx responses, returns an *APIError.
func (client *Client) send(ctx context.Context, key string, req request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	var body io.Reader
	if req.form != nil {
		body = strings.NewReader(req.form.Encode())
	}

	httpRequest, err := http.NewRequestWithContext(ctx, req.method, client.serverURL+req.path, body)
	if err != nil {
		return nil, fmt.Errorf("deepl: creating request: %w", err)
	}

	httpRequest.Header.Set("Authorization", authScheme+key)
	httpRequest.Header.Set("User-Agent", client.userAgent)
	if req.form != nil {
		httpRequest.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if req.accept != "" {
		httpRequest.Header.Set("Accept", req.accept)
	} else {
		httpRequest.Header.Set("Accept", "application/json")
	}

	client.logger.Debug("deepl request",
		"method", req.method,
		"path", req.path,
	)

	response, err := client.httpClient.Do(httpRequest)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("deepl: %s %s: timed out after %s: %w", req.method, req.path, client.timeout, err)
		}
		return nil, fmt.Errorf("deepl: %s %s: %w", req.method, req.path, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		errorBody := netutil.ErrorBody(response.Body)
		client.logger.Debug("deepl error response",
			"method", req.method,
			"path", req.path,
			"status", response.StatusCode,
			"bytes", len(errorBody),
		)
		return nil, parseAPIError(response.StatusCode, []byte(errorBody))
	}

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("deepl: reading response body: %w", err)
	}

	client.logger.Debug("deepl response",
		"method", req.method,
		"path", req.path,
		"status", response.StatusCode,
		"bytes", len(responseBody),
	)
	return responseBody, nil
}
