package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go"

	"github.com/mkrs2404/post-reminder/pkg/clients"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"
	defaultTimeout = 30 * time.Second
	queryPageSize  = 100
)

// APIError is a non-success response from the Notion API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion API error: %s (%s, status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("notion returned status: %d", e.StatusCode)
}

// Client is a Notion API client scoped to one database.
type Client struct {
	token        string
	databaseID   string
	baseURL      string
	client       *http.Client
	httpExecutor failsafe.Executor[*http.Response]
	shouldRetry  func(resp *http.Response, err error) bool
}

type Option func(*Client)

// NewClient creates a new Notion API client for the given database.
func NewClient(token, databaseID string, opts ...Option) *Client {
	defaultConfig := clients.DefaultHTTPExecutorConfig()
	c := &Client{
		token:      token,
		databaseID: databaseID,
		baseURL:    defaultBaseURL,
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: clients.DefaultTransport(),
		},
		httpExecutor: clients.NewHTTPExecutor(defaultConfig),
		shouldRetry:  defaultConfig.ShouldRetry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.client = httpClient
		}
	}
}

func WithHTTPExecutorConfig(cfg clients.HTTPExecutorConfig) Option {
	return func(c *Client) {
		c.httpExecutor = clients.NewHTTPExecutor(cfg)
		c.shouldRetry = cfg.ShouldRetry
	}
}

func (c *Client) doRequest(ctx context.Context, build func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	if c.httpExecutor == nil {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}
		return c.client.Do(req)
	}

	return clients.ExecuteHTTP(ctx, c.httpExecutor, func() (*http.Response, error) {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}
		resp, err := c.client.Do(req)
		if c.shouldRetry != nil && c.shouldRetry(resp, err) {
			if resp != nil && resp.Body != nil {
				_ = resp.Body.Close()
			}
		}
		return resp, err
	})
}

// QueryDatabase returns every page currently stored in the configured
// database, following cursor pagination until the result set is
// exhausted.
func (c *Client) QueryDatabase(ctx context.Context) ([]Page, error) {
	var all []Page
	cursor := ""
	for {
		result, err := c.queryPage(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, result.Results...)

		if !result.HasMore || result.NextCursor == "" {
			break
		}
		cursor = result.NextCursor
	}
	return all, nil
}

func (c *Client) queryPage(ctx context.Context, cursor string) (*queryResponse, error) {
	reqBody := queryRequest{
		PageSize:    queryPageSize,
		StartCursor: cursor,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, c.databaseID)
	resp, err := c.doRequest(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
		if err != nil {
			return nil, err
		}

		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Notion-Version", apiVersion)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var parsed errorResponse
		if err := json.Unmarshal(respBody, &parsed); err == nil {
			apiErr.Code = parsed.Code
			apiErr.Message = parsed.Message
		}
		return nil, apiErr
	}

	var result queryResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse query response: %w (body: %s)", err, string(respBody))
	}

	return &result, nil
}
