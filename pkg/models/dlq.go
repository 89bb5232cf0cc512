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

// FailedOrder is one dead-letter-queue entry: an order whose automated
// processing failed, pending manual replay.
type FailedOrder struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	StoreID      int64      `json:"store_id"`
	ErrorMessage string     `json:"error_message"`
	RetryCount   int        `json:"retry_count"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// FailedOrderPage is the list envelope returned by GET /dlq.
type FailedOrderPage struct {
	Items []FailedOrder `json:"items"`
	Total int           `json:"total"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
}
