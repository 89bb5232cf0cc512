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

package models

import "time"

// InventoryItem is one stock row for a store.
type InventoryItem struct {
	ID                int64 `json:"id"`
	ProductID         int64 `json:"product_id"`
	StoreID           int64 `json:"store_id"`
	Quantity          int   `json:"quantity"`
	ReservedQuantity  int   `json:"reserved_quantity"`
	AvailableQuantity int   `json:"available_quantity"`
}

// InventoryPage is the list envelope returned by GET /inventory/store/{id}.
type InventoryPage struct {
	Items []InventoryItem `json:"items"`
	Total int             `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}

// InventorySnapshot is one historical stock movement entry. Reason is
// free text set by the backend worker that recorded the movement.
type InventorySnapshot struct {
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	ProductName string     `json:"product_name"`
	Quantity    int        `json:"quantity"`
	Reason      *string    `json:"reason,omitempty"`
}

// SnapshotPage is the list envelope returned by GET /inventory/snapshots.
type SnapshotPage struct {
	Items []InventorySnapshot `json:"items"`
	Total int                 `json:"total"`
	Skip  int                 `json:"skip"`
	Limit int                 `json:"limit"`
}
