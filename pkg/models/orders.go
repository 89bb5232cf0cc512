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

// Package models defines the wire types of the commerce backend's JSON
// API as consumed by the dashboard. All fields the backend may omit are
// pointers so renders can fall back to placeholders.
package models

import "time"

// Order is one row of the orders list. total_amount and
// checkout_latency_ms may be absent on partially processed orders.
type Order struct {
	ID                int64      `json:"id"`
	UserID            int64      `json:"user_id"`
	StoreID           int64      `json:"store_id"`
	Status            string     `json:"status"`
	TotalAmount       *float64   `json:"total_amount,omitempty"`
	CheckoutLatencyMS *float64   `json:"checkout_latency_ms,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

// OrderPage is the list envelope returned by GET /orders.
type OrderPage struct {
	Items []Order `json:"items"`
	Total int     `json:"total"`
	Skip  int     `json:"skip"`
	Limit int     `json:"limit"`
}

// StoreLoad summarizes a store's operational saturation.
// TotalLoadScore is a backend heuristic in [0,1].
type StoreLoad struct {
	StoreID              int64   `json:"store_id"`
	PendingOrdersCount   int     `json:"pending_orders_count"`
	ActiveOrdersCount    int     `json:"active_orders_count"`
	RecentVelocityPerMin float64 `json:"recent_velocity_per_min"`
	TotalLoadScore       float64 `json:"total_load_score"`
}
