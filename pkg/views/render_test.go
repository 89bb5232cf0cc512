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

package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/storepulse/storepulse/pkg/config"
	"github.com/storepulse/storepulse/pkg/controller"
	"github.com/storepulse/storepulse/pkg/models"
)

func testStores() []config.Store {
	return []config.Store{
		{ID: 1, Name: "Downtown"},
		{ID: 2, Name: "Uptown"},
		{ID: 3, Name: "Suburbs"},
	}
}

func TestOverview_ZeroCounts(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View:     controller.ViewOverview,
		Overview: &controller.OverviewData{},
	}, -1)

	assert.Contains(t, out, "Total Orders")
	assert.Contains(t, out, "All clear")
	assert.NotContains(t, out, "Needs attention")
	assert.Contains(t, out, "No recent orders found.")
	assert.Contains(t, out, "42ms")
}

func TestOverview_DLQNeedsAttention(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View:     controller.ViewOverview,
		Overview: &controller.OverviewData{DLQTotal: 3},
	}, -1)

	assert.Contains(t, out, "Needs attention")
}

func TestOverview_RecentOrders(t *testing.T) {
	r := NewRenderer(testStores())
	amount := 42.5
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

	out := r.Snapshot(&controller.Snapshot{
		View: controller.ViewOverview,
		Overview: &controller.OverviewData{
			OrdersTotal: 12,
			Recent: []models.Order{
				{ID: 101, UserID: 7, StoreID: 2, Status: "completed", TotalAmount: &amount, CreatedAt: &created},
				{ID: 102, UserID: 8, StoreID: 1, Status: "pending"},
			},
		},
	}, -1)

	assert.Contains(t, out, "#101")
	assert.Contains(t, out, "Store 2")
	assert.Contains(t, out, "$42.50")
	assert.Contains(t, out, "$0.00")
	assert.Contains(t, out, "COMPLETED")
	assert.Contains(t, out, "2026-03-14 09:26:53")
}

func TestProducts_CategoryFallback(t *testing.T) {
	r := NewRenderer(testStores())
	price := 9.99

	out := r.Snapshot(&controller.Snapshot{
		View: controller.ViewProducts,
		Products: &models.ProductPage{
			Items: []models.Product{
				{ID: 1, SKU: "SKU-1", Name: "Widget", Price: &price, Category: &models.Category{Name: "Hardware"}},
				{ID: 2, SKU: "SKU-2", Name: "Orphan"},
			},
			Total: 2,
		},
	}, 0)

	assert.Contains(t, out, "Hardware")
	assert.Contains(t, out, "Uncategorized")
	assert.Contains(t, out, "$9.99")
}

func TestProducts_Empty(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View:     controller.ViewProducts,
		Products: &models.ProductPage{},
	}, -1)

	assert.Contains(t, out, "No products found.")
}

func TestInventory_LowStockBadge(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View: controller.ViewInventory,
		Inventory: &controller.InventoryData{
			StoreID: 2,
			Page: &models.InventoryPage{
				Items: []models.InventoryItem{
					{ProductID: 1, Quantity: 12, ReservedQuantity: 3, AvailableQuantity: 9},
					{ProductID: 2, Quantity: 10, ReservedQuantity: 0, AvailableQuantity: 10},
				},
			},
		},
	}, -1)

	assert.Contains(t, out, "Uptown")
	assert.Contains(t, out, "Low Stock")
	assert.Contains(t, out, "Healthy")
}

func TestInventory_Empty(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View:      controller.ViewInventory,
		Inventory: &controller.InventoryData{StoreID: 3, Page: &models.InventoryPage{}},
	}, -1)

	assert.Contains(t, out, "Suburbs")
	assert.Contains(t, out, "No inventory data for this store.")
}

func TestTimeline_MovementTypes(t *testing.T) {
	r := NewRenderer(testStores())
	reason := "manual_added"

	out := r.Snapshot(&controller.Snapshot{
		View: controller.ViewTimeline,
		Timeline: &models.SnapshotPage{
			Items: []models.InventorySnapshot{
				{ProductName: "Widget", Quantity: 5, Reason: &reason},
				{ProductName: "Gadget", Quantity: 2},
			},
		},
	}, -1)

	assert.Contains(t, out, "MANUAL ADDED")
	assert.Contains(t, out, "UPDATE")
}

func TestTimeline_Empty(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View:     controller.ViewTimeline,
		Timeline: &models.SnapshotPage{},
	}, -1)

	assert.Contains(t, out, "No inventory history recorded yet.")
}

func TestOrders_Empty(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View:   controller.ViewOrders,
		Orders: &models.OrderPage{},
	}, -1)

	assert.Contains(t, out, "No orders found.")
}

func TestDLQ_Empty(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View: controller.ViewDLQ,
		DLQ:  &models.FailedOrderPage{},
	}, -1)

	assert.Contains(t, out, "All queues are clear. No failed orders detected.")
}

func TestDLQ_Rows(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View: controller.ViewDLQ,
		DLQ: &models.FailedOrderPage{
			Items: []models.FailedOrder{
				{ID: 55, UserID: 9, StoreID: 1, ErrorMessage: "payment declined", RetryCount: 2},
			},
		},
	}, 0)

	assert.Contains(t, out, "#55")
	assert.Contains(t, out, "payment declined")
	assert.Contains(t, out, "replay")
}

func TestStoreLoad_ConnectingPlaceholder(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{
		View: controller.ViewStoreLoad,
		StoreLoads: []controller.StoreLoadStatus{
			{Store: config.Store{ID: 1, Name: "Downtown"}, Load: &models.StoreLoad{TotalLoadScore: 0.9, RecentVelocityPerMin: 3.2}},
			{Store: config.Store{ID: 2, Name: "Uptown"}},
		},
	}, -1)

	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "90% saturation")
	assert.Contains(t, out, "3.2 orders/min")
	assert.Contains(t, out, "Connecting...")
}

func TestStoreMap_Static(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Snapshot(&controller.Snapshot{View: controller.ViewStoreMap}, -1)

	assert.Contains(t, out, "Downtown")
	assert.Contains(t, out, "3 Hubs Online")
	assert.Contains(t, out, "100% Connectivity")
}

func TestError_NamesBaseURL(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.Error("http://localhost:8000/api/v1")

	assert.Contains(t, out, "Backend Connection Error")
	assert.Contains(t, out, "http://localhost:8000/api/v1")
	assert.Contains(t, out, "retry")
}

func TestProductModal_DescriptionPlaceholder(t *testing.T) {
	r := NewRenderer(testStores())

	out := r.ProductModal(&models.Product{ID: 1, SKU: "SKU-1", Name: "Widget"})

	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "Uncategorized")
	assert.Contains(t, out, "No description available.")
	assert.Contains(t, out, "$0.00")
}
