// Package client is a typed HTTP client for the products API. Every call
// performs one request/response round trip and unwraps the
// {success, data|error} envelope into a value or an error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
)

// fallbackMessage is returned when a failed envelope carries no error text.
const fallbackMessage = "request failed"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client for the API at baseURL (scheme://host[:port]).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// List fetches the full product collection.
func (c *Client) List(ctx context.Context) ([]domain.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// Create submits a new product and returns the persisted version with its
// assigned id and timestamps.
func (c *Client) Create(ctx context.Context, patch domain.ProductPatch) (*domain.Product, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/products", patch)
	if err != nil {
		return nil, err
	}
	return decodeProduct(env.Data)
}

// Update replaces the mutable fields of the product addressed by id.
func (c *Client) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/products/"+id, patch)
	if err != nil {
		return nil, err
	}
	return decodeProduct(env.Data)
}

// Delete removes the product addressed by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/products/"+id, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fallbackMessage
		}
		return nil, errors.New(msg)
	}
	return &env, nil
}

func decodeProduct(data json.RawMessage) (*domain.Product, error) {
	var p domain.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &p, nil
}
