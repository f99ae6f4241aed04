// Package drupalorg reads issue and file resources from the Drupal.org REST API.
package drupalorg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/robopackage/drupalctl/internal/domain"
)

// maxBodySize caps a single API response.
const maxBodySize = 16 << 20

// Client implements domain.IssueAPI over HTTP.
// Fields are ordered to minimize memory padding.
type Client struct {
	http      *http.Client
	logger    domain.Logger
	baseURL   string
	userAgent string
}

// Ensure Client implements domain.IssueAPI interface.
var _ domain.IssueAPI = (*Client)(nil)

// NewClient creates a client for the API rooted at baseURL.
// An empty baseURL uses domain.DefaultAPIBaseURL; a zero timeout uses domain.DefaultAPITimeout.
// logger may be nil.
func NewClient(baseURL string, timeout time.Duration, version string, logger domain.Logger) *Client {
	if baseURL == "" {
		baseURL = domain.DefaultAPIBaseURL
	}
	if timeout <= 0 {
		timeout = domain.DefaultAPITimeout
	}
	if version == "" {
		version = "dev"
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		logger:    logger,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: domain.AppName + "/" + version,
	}
}

// ResourceURL returns {baseURL}/{resource}.json with the encoded query.
func (c *Client) ResourceURL(resource string, query url.Values) string {
	u := c.baseURL + "/" + strings.Trim(resource, "/") + domain.ResourceJSONExt
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// FetchResource decodes the API resource into v.
func (c *Client) FetchResource(ctx context.Context, resource string, query url.Values, v any) (bool, error) {
	return c.FetchURL(ctx, c.ResourceURL(resource, query), v)
}

// FetchURL decodes the JSON document at rawURL into v.
// Transport errors, non-2xx responses and empty bodies are reported as absent.
func (c *Client) FetchURL(ctx context.Context, rawURL string, v any) (bool, error) {
	body, ok := c.get(ctx, rawURL)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", domain.ErrDecode, rawURL, err)
	}
	return true, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		c.debug(fmt.Sprintf("build request %s: %v", rawURL, err))
		return nil, false
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.debug("GET " + rawURL)
	resp, err := c.http.Do(req)
	if err != nil {
		c.debug(fmt.Sprintf("GET %s: %v", rawURL, err))
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.debug(fmt.Sprintf("GET %s: status %d", rawURL, resp.StatusCode))
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.debug(fmt.Sprintf("read %s: %v", rawURL, err))
		return nil, false
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, false
	}
	return body, true
}

func (c *Client) debug(msg string) {
	if c.logger != nil {
		c.logger.Debug("drupalorg", msg)
	}
}
