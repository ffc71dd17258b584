package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chat-api/modelcatalog/pkg/errors"
)

const (
	// DefaultBaseURL is the default address of the model categorizer service
	DefaultBaseURL = "http://localhost:8080"

	// DefaultTimeout is the default timeout for HTTP requests
	DefaultTimeout = 30 * time.Second
)

// Client is the client for the model categorizer service. Each operation
// performs exactly one HTTP round trip; see RetryClient for an opt-in
// retrying wrapper.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     logrus.FieldLogger
}

// Option is a function that configures the client
type Option func(*Client)

// NewClient creates a new catalog client
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: "modelcatalog/1.0.0",
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c
}

// WithBaseURL sets the base URL of the catalog service
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets a custom timeout for HTTP requests
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets a custom user agent for requests
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets a logger for request/response debug logging
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// doRequest performs an HTTP request with the given context
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any) (*http.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"url":    url,
		}).Debug("catalog request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ServiceError{Err: err}
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"url":    url,
			"status": resp.StatusCode,
		}).Debug("catalog response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, c.statusError(resp)
	}

	return resp, nil
}

// statusError turns a non-2xx response into a ServiceError, keeping whatever
// message the service put in the body
func (c *Client) statusError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return &errors.ServiceError{StatusCode: resp.StatusCode}
	}

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			message = errResp.Error
		} else {
			message = errResp.Message
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}

	return &errors.ServiceError{StatusCode: resp.StatusCode, Message: message}
}

// getJSON performs a GET request and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
