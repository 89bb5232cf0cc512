/*
 * Copyright 2026 StorePulse Contributors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package client implements the typed HTTP client for the commerce
// backend's JSON API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/storepulse/storepulse/pkg/logger"
	"github.com/storepulse/storepulse/pkg/models"
)

const defaultHTTPTimeout = 15 * time.Second

var errBaseURLRequired = errors.New("api base url is required")

// Config controls how the backend client behaves.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  logger.Logger
	HTTP    *http.Client
}

// Client talks to the commerce backend. All methods issue a single
// request; retries are left to the caller.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	logger  logger.Logger
}

// New constructs a backend client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errBaseURLRequired
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: parsed,
		client:  httpClient,
		logger:  cfg.Logger,
	}, nil
}

// BaseURL returns the configured backend root, for display in error
// panels.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(p string, query url.Values) string {
	u := *c.baseURL
	u.Path = path.Join(u.Path, p)

	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	return u.String()
}

func (c *Client) get(ctx context.Context, p string, query url.Values, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(p, query), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", p, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", p, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response from %s: %w", p, err)
	}

	return nil
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}

	return url.Values{"limit": []string{strconv.Itoa(limit)}}
}

// Orders fetches a page of orders. limit <= 0 omits the limit parameter.
func (c *Client) Orders(ctx context.Context, limit int) (*models.OrderPage, error) {
	var page models.OrderPage
	if err := c.get(ctx, "/orders", limitQuery(limit), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Products fetches a page of products.
func (c *Client) Products(ctx context.Context, limit int) (*models.ProductPage, error) {
	var page models.ProductPage
	if err := c.get(ctx, "/products", limitQuery(limit), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Product fetches one product with its full description.
func (c *Client) Product(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// StoreInventory fetches the stock rows for one store.
func (c *Client) StoreInventory(ctx context.Context, storeID int) (*models.InventoryPage, error) {
	var page models.InventoryPage
	if err := c.get(ctx, fmt.Sprintf("/inventory/store/%d", storeID), nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// InventorySnapshots fetches the stock movement history.
func (c *Client) InventorySnapshots(ctx context.Context, limit int) (*models.SnapshotPage, error) {
	var page models.SnapshotPage
	if err := c.get(ctx, "/inventory/snapshots", limitQuery(limit), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// FailedOrders fetches dead-letter-queue entries. limit <= 0 omits the
// limit parameter, matching the full-list fetch of the DLQ view.
func (c *Client) FailedOrders(ctx context.Context, limit int) (*models.FailedOrderPage, error) {
	var page models.FailedOrderPage
	if err := c.get(ctx, "/dlq", limitQuery(limit), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// StoreLoad fetches the load metrics for one store.
func (c *Client) StoreLoad(ctx context.Context, storeID int) (*models.StoreLoad, error) {
	var load models.StoreLoad
	if err := c.get(ctx, fmt.Sprintf("/orders/store/%d/load", storeID), nil, &load); err != nil {
		return nil, err
	}

	return &load, nil
}

// ReplayFailedOrder asks the backend to re-process one DLQ entry.
// Single attempt: a non-2xx response surfaces as *APIError carrying the
// backend's detail string.
func (c *Client) ReplayFailedOrder(ctx context.Context, id int64) error {
	endpoint := c.endpoint(fmt.Sprintf("/dlq/%d/replay", id), nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("create replay request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("replay request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if c.logger != nil {
		c.logger.Info().Int64("failed_order_id", id).Msg("DLQ replay accepted")
	}

	return nil
}
