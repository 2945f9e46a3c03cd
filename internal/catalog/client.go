package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-faster/errors"
)

// Client implements Service over the upstream catalog HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client. Useful for tests and
// for injecting an instrumented transport.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a catalog Client for the given base URL, e.g.
// "https://api.example.ru/api/v1".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Service = (*Client)(nil)

// ProductByUUID fetches a single product by its identifier.
func (c *Client) ProductByUUID(ctx context.Context, uuid string) (*Product, error) {
	var resp struct {
		Data Product `json:"data"`
	}
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(uuid), nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "product %s", uuid)
	}
	return &resp.Data, nil
}

// ProductBySlug fetches a single product by its URL slug.
func (c *Client) ProductBySlug(ctx context.Context, slug string) (*Product, error) {
	var resp struct {
		Data Product `json:"data"`
	}
	if err := c.getJSON(ctx, "/products/slug/"+url.PathEscape(slug), nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "product slug %s", slug)
	}
	return &resp.Data, nil
}

// Products fetches one page of products, optionally filtered by category.
func (c *Client) Products(ctx context.Context, params ListParams) ([]Product, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.CategoryUUID != "" {
		q.Set("category", params.CategoryUUID)
	}

	var resp struct {
		Data []Product `json:"data"`
	}
	if err := c.getJSON(ctx, "/products", q, &resp); err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return resp.Data, nil
}

// Categories fetches the full category list. Each top-level entry carries its
// own nested children.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp struct {
		Data []Category `json:"data"`
	}
	if err := c.getJSON(ctx, "/categories", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return resp.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
