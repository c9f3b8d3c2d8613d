package merchant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	"shopping-samples/internal/logger"
)

const (
	DefaultBasePath = "https://shoppingcontent.googleapis.com/content/v2.1/"
	UserAgent       = "Content API for Shopping Samples"
	Scope           = "https://www.googleapis.com/auth/content"
)

var versionSegment = regexp.MustCompile(`^v[0-9]+(\.[0-9]+)?$`)

// Client talks to the Content API over an already authorized HTTP client.
type Client struct {
	hc        *http.Client
	basePath  string
	userAgent string
}

func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		hc:        hc,
		basePath:  DefaultBasePath,
		userAgent: UserAgent,
	}
}

// BasePath returns the URL every request path is resolved against.
func (c *Client) BasePath() string {
	return c.basePath
}

// WithEndpoint returns a copy of the client using a non-standard endpoint.
// The URL must be absolute.
func (c *Client) WithEndpoint(raw string) (*Client, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint %q: %w", raw, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("expected absolute URL for endpoint, got %q", raw)
	}
	cp := *c
	cp.basePath = strings.TrimSuffix(u.String(), "/") + "/"
	return &cp, nil
}

// Sandbox returns a copy of the client pointed at the sandbox version of the
// API, where test orders can be created. When the endpoint does not end in a
// version segment the path is kept as is.
func (c *Client) Sandbox() *Client {
	cp := *c
	u, err := url.Parse(c.basePath)
	if err == nil {
		dir, version := path.Split(strings.TrimSuffix(u.Path, "/"))
		if versionSegment.MatchString(version) {
			u.Path = dir + version + "sandbox/"
			cp.basePath = u.String()
			return &cp
		}
	}
	logger.Warn("endpoint has no API version to switch to sandbox, sandbox methods may fail", "endpoint", c.basePath)
	return &cp
}

func (c *Client) do(ctx context.Context, method, p string, query url.Values, body, out interface{}) error {
	endpoint := c.basePath + p
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("calling API", "method", method, "url", endpoint)
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", p, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, p string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, p, query, nil, out)
}

func (c *Client) post(ctx context.Context, p string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, p, nil, body, out)
}

func (c *Client) put(ctx context.Context, p string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, p, nil, body, out)
}

func (c *Client) delete(ctx context.Context, p string) error {
	return c.do(ctx, http.MethodDelete, p, nil, nil, nil)
}

// resourcePath joins path segments, escaping each one.
func resourcePath(segments ...interface{}) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = url.PathEscape(fmt.Sprint(s))
	}
	return strings.Join(parts, "/")
}
