package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/pkg/errors"
)

// Client is the data-access side of the storefront: it issues HTTP
// requests against the product API and returns parsed records. There is
// no timeout or retry policy; a failed call surfaces as a terminal error
// for that interaction.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// NewWithHTTPClient allows injecting the transport, mainly for tests.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	c := New(baseURL)
	c.httpClient = httpClient
	return c
}

// envelope mirrors the API's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) GetAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := c.get(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Search(ctx context.Context, query, category string) ([]*entity.Product, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	if category != "" {
		params.Set("category", category)
	}

	path := "/api/products/search"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var products []*entity.Product
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Internal("Failed to build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Internal("Request failed", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Internal("Failed to decode response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("Unexpected status %d", resp.StatusCode)
		code := "INTERNAL_ERROR"
		if env.Error != nil {
			message = env.Error.Message
			code = env.Error.Code
		}
		return errors.New(code, message, resp.StatusCode, nil)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Internal("Failed to parse response data", err)
	}
	return nil
}
