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

// Package views renders fetched snapshots into styled terminal output.
// The derivation rules in this file are the dashboard's display
// contract and are pinned by tests.
package views

import (
	"fmt"
	"strings"
	"time"
)

const lowStockThreshold = 10

// IsLowStock reports whether an inventory row is low on stock.
// Strictly below the threshold: 9 is low, 10 is healthy.
func IsLowStock(available int) bool {
	return available < lowStockThreshold
}

// StockStatus is the badge text for an inventory row.
func StockStatus(available int) string {
	if IsLowStock(available) {
		return "Low Stock"
	}

	return "Healthy"
}

// LoadLevel is the three-way classification of a store's load score.
type LoadLevel int

const (
	LoadStable LoadLevel = iota
	LoadModerate
	LoadCritical
)

const (
	loadCriticalThreshold = 0.8
	loadModerateThreshold = 0.5
)

// ClassifyLoad buckets a load score. Thresholds are strict: 0.8 is
// MODERATE, 0.81 is CRITICAL, 0.5 is STABLE, 0.51 is MODERATE.
func ClassifyLoad(score float64) LoadLevel {
	switch {
	case score > loadCriticalThreshold:
		return LoadCritical
	case score > loadModerateThreshold:
		return LoadModerate
	default:
		return LoadStable
	}
}

func (l LoadLevel) String() string {
	switch l {
	case LoadCritical:
		return "CRITICAL"
	case LoadModerate:
		return "MODERATE"
	default:
		return "STABLE"
	}
}

// Movement is the classified form of a timeline entry's reason.
type Movement struct {
	Type     string
	Positive bool
}

// ClassifyMovement derives the movement type from the uppercased
// reason, defaulting to UPDATE when the reason is absent or empty. A
// movement is positive when the type is RESTOCK or RETURN, or when the
// raw reason contains the substring "added" — the substring check runs
// against the original casing, so "MANUAL_ADDED" is not positive while
// "manual_added" is. Pinned as-is by tests.
func ClassifyMovement(reason *string) Movement {
	if reason == nil || *reason == "" {
		return Movement{Type: "UPDATE"}
	}

	typ := strings.ToUpper(*reason)
	positive := typ == "RESTOCK" || typ == "RETURN" || strings.Contains(*reason, "added")

	return Movement{Type: typ, Positive: positive}
}

// MovementLabel is the display form of a movement type, underscores
// shown as spaces.
func MovementLabel(typ string) string {
	return strings.ReplaceAll(typ, "_", " ")
}

// FormatAmount renders a monetary amount with exactly two decimals,
// missing amounts as 0.00.
func FormatAmount(amount *float64) string {
	if amount == nil {
		return "0.00"
	}

	return fmt.Sprintf("%.2f", *amount)
}

// FormatLatency renders checkout latency with one decimal, or a dash
// when the backend did not record one.
func FormatLatency(ms *float64) string {
	if ms == nil {
		return "-"
	}

	return fmt.Sprintf("%.1fms", *ms)
}

// FormatTime renders a backend timestamp, or a dash when absent.
func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}

	return t.Local().Format("2006-01-02 15:04:05")
}

// OrderStatus is the enumerated form of the backend's order status
// vocabulary.
type OrderStatus int

const (
	StatusUnknown OrderStatus = iota
	StatusPending
	StatusProcessing
	StatusCompleted
	StatusFailed
)

// ParseOrderStatus maps a backend status string onto the enum,
// case-insensitively. Unrecognized statuses parse as StatusUnknown.
func ParseOrderStatus(raw string) OrderStatus {
	switch strings.ToLower(raw) {
	case "pending":
		return StatusPending
	case "processing":
		return StatusProcessing
	case "completed":
		return StatusCompleted
	case "failed":
		return StatusFailed
	default:
		return StatusUnknown
	}
}

// BadgeClass is the total mapping from a backend status string to its
// badge class. Known statuses map through the enum; unknown ones fall
// back to the lowercased raw string so new backend vocabulary still
// gets a stable class.
func BadgeClass(raw string) string {
	switch ParseOrderStatus(raw) {
	case StatusPending:
		return "status-pending"
	case StatusProcessing:
		return "status-processing"
	case StatusCompleted:
		return "status-completed"
	case StatusFailed:
		return "status-failed"
	default:
		return "status-" + strings.ToLower(raw)
	}
}
