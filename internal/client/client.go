// Package client is the HTTP/JSON client for the storefront API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DarlanCavalcante/tech10/internal/domain"
)

const defaultTimeout = 30 * time.Second

// APIError carries the server's 4xx/5xx `{message}` payload verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the storefront API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Products fetches the whole catalog.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one product, including its current stock.
func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &p)
	return p, err
}

// CreateOrder submits an order request. Validation failures come back
// as *APIError with the server's message.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	var o domain.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", req, &o)
	return o, err
}

// Orders fetches all orders in creation order.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var list []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Order fetches one order.
func (c *Client) Order(ctx context.Context, id int64) (domain.Order, error) {
	var o domain.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &o)
	return o, err
}

// UpdateOrderStatus patches an order's status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (domain.Order, error) {
	var o domain.Order
	body := map[string]string{"status": status}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d", id), body, &o)
	return o, err
}

// Health checks the API health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError decodes the `{message}` envelope, falling back to the HTTP
// status text when the body is not what the API emits.
func (c *Client) apiError(resp *http.Response) error {
	var msg struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil || msg.Message == "" {
		msg.Message = resp.Status
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
}
