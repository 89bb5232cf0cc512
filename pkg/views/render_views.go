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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/storepulse/storepulse/pkg/controller"
	"github.com/storepulse/storepulse/pkg/models"
)

func (r *Renderer) statCard(label, value, footer string) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.StatLabel.Render(label),
		r.styles.StatValue.Render(value),
		r.styles.StatFooter.Render(footer),
	)

	return r.styles.StatCard.Render(body)
}

func (r *Renderer) overview(data *controller.OverviewData) string {
	if data == nil {
		return ""
	}

	health := r.styles.Success.Render("All clear")
	if data.DLQTotal > 0 {
		health = r.styles.Warning.Render("Needs attention")
	}

	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		r.statCard("Total Orders", fmt.Sprintf("%d", data.OrdersTotal), "All time"),
		r.statCard("Products", fmt.Sprintf("%d", data.ProductsTotal), "In catalog"),
		r.statCard("Failed Orders", fmt.Sprintf("%d", data.DLQTotal), health),
		r.statCard("Avg. Latency", "42ms", "Checkout pipeline"),
	)

	recent := r.recentOrders(data.Recent)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		cards,
		"",
		r.styles.Bright.Render("Recent Orders"),
		recent,
	)
}

func (r *Renderer) recentOrders(orders []models.Order) string {
	if len(orders) == 0 {
		return r.emptyRow("No recent orders found.")
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", o.ID),
			fmt.Sprintf("User %d", o.UserID),
			fmt.Sprintf("Store %d", o.StoreID),
			"$" + FormatAmount(o.TotalAmount),
			r.statusBadge(o.Status),
			FormatTime(o.CreatedAt),
		})
	}

	return r.table([]string{"ORDER", "CUSTOMER", "STORE", "TOTAL", "STATUS", "CREATED"}, rows, -1)
}

func (r *Renderer) statusBadge(status string) string {
	return r.styles.Badge(BadgeClass(status)).Render(strings.ToUpper(status))
}

func (r *Renderer) products(page *models.ProductPage, cursor int) string {
	if page == nil || len(page.Items) == 0 {
		return r.emptyRow("No products found.")
	}

	rows := make([][]string, 0, len(page.Items))
	for _, p := range page.Items {
		category := "Uncategorized"
		if p.Category != nil {
			category = p.Category.Name
		}

		rows = append(rows, []string{
			p.SKU,
			p.Name,
			category,
			"$" + FormatAmount(p.Price),
		})
	}

	body := r.table([]string{"SKU", "NAME", "CATEGORY", "PRICE"}, rows, cursor)
	help := r.styles.Help.Render(fmt.Sprintf("%d of %d products • enter → details", len(page.Items), page.Total))

	return lipgloss.JoinVertical(lipgloss.Left, body, "", help)
}

func (r *Renderer) inventory(data *controller.InventoryData) string {
	if data == nil || data.Page == nil {
		return ""
	}

	storeName := fmt.Sprintf("Store %d", data.StoreID)

	for _, s := range r.stores {
		if s.ID == data.StoreID {
			storeName = s.Name
			break
		}
	}

	header := r.styles.Bright.Render(storeName)

	if len(data.Page.Items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, r.emptyRow("No inventory data for this store."))
	}

	rows := make([][]string, 0, len(data.Page.Items))
	for _, item := range data.Page.Items {
		status := StockStatus(item.AvailableQuantity)

		style := r.styles.Success
		if IsLowStock(item.AvailableQuantity) {
			style = r.styles.Danger
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", item.ProductID),
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%d", item.ReservedQuantity),
			fmt.Sprintf("%d", item.AvailableQuantity),
			style.Render(status),
		})
	}

	body := r.table([]string{"PRODUCT", "ON HAND", "RESERVED", "AVAILABLE", "STATUS"}, rows, -1)
	help := r.styles.Help.Render("s → next store")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, "", help)
}

func (r *Renderer) timeline(page *models.SnapshotPage) string {
	if page == nil || len(page.Items) == 0 {
		return r.emptyRow("No inventory history recorded yet.")
	}

	rows := make([][]string, 0, len(page.Items))
	for _, snap := range page.Items {
		movement := ClassifyMovement(snap.Reason)

		arrow := r.styles.Danger.Render("▼")
		if movement.Positive {
			arrow = r.styles.Success.Render("▲")
		}

		rows = append(rows, []string{
			FormatTime(snap.Timestamp),
			snap.ProductName,
			MovementLabel(movement.Type),
			arrow + fmt.Sprintf(" %d", snap.Quantity),
		})
	}

	return r.table([]string{"WHEN", "PRODUCT", "TYPE", "QTY"}, rows, -1)
}

func (r *Renderer) orders(page *models.OrderPage) string {
	if page == nil || len(page.Items) == 0 {
		return r.emptyRow("No orders found.")
	}

	rows := make([][]string, 0, len(page.Items))
	for _, o := range page.Items {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", o.ID),
			fmt.Sprintf("User %d", o.UserID),
			fmt.Sprintf("Store %d", o.StoreID),
			r.statusBadge(o.Status),
			"$" + FormatAmount(o.TotalAmount),
			FormatLatency(o.CheckoutLatencyMS),
			FormatTime(o.CreatedAt),
		})
	}

	body := r.table([]string{"ORDER", "CUSTOMER", "STORE", "STATUS", "TOTAL", "LATENCY", "CREATED"}, rows, -1)
	help := r.styles.Help.Render(fmt.Sprintf("%d of %d orders", len(page.Items), page.Total))

	return lipgloss.JoinVertical(lipgloss.Left, body, "", help)
}

func (r *Renderer) dlq(page *models.FailedOrderPage, cursor int) string {
	if page == nil || len(page.Items) == 0 {
		return r.styles.Success.Render("  All queues are clear. No failed orders detected.")
	}

	rows := make([][]string, 0, len(page.Items))
	for _, f := range page.Items {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", f.ID),
			fmt.Sprintf("User %d", f.UserID),
			fmt.Sprintf("Store %d", f.StoreID),
			r.styles.Danger.Render(f.ErrorMessage),
			fmt.Sprintf("%d", f.RetryCount),
			FormatTime(f.CreatedAt),
		})
	}

	body := r.table([]string{"ORDER", "CUSTOMER", "STORE", "ERROR", "RETRIES", "FAILED AT"}, rows, cursor)
	help := r.styles.Help.Render("enter → replay selected order")

	return lipgloss.JoinVertical(lipgloss.Left, body, "", help)
}

const loadBarWidth = 20

func (r *Renderer) storeLoad(statuses []controller.StoreLoadStatus) string {
	cards := make([]string, 0, len(statuses))

	for _, status := range statuses {
		cards = append(cards, r.storeLoadCard(status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (r *Renderer) storeLoadCard(status controller.StoreLoadStatus) string {
	name := r.styles.Bright.Render(status.Store.Name)

	if status.Load == nil {
		body := lipgloss.JoinVertical(
			lipgloss.Left,
			name,
			r.styles.Dim.Render("Connecting..."),
		)

		return r.styles.Card.Render(body)
	}

	load := status.Load
	level := ClassifyLoad(load.TotalLoadScore)
	style := r.styles.LoadStyle(level)

	filled := int(load.TotalLoadScore * loadBarWidth)
	if filled > loadBarWidth {
		filled = loadBarWidth
	}

	if filled < 0 {
		filled = 0
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		r.styles.Dim.Render(strings.Repeat("░", loadBarWidth-filled))

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		name+"  "+style.Render(level.String()),
		bar+fmt.Sprintf("  %.0f%% saturation", load.TotalLoadScore*100),
		r.styles.Dim.Render(fmt.Sprintf(
			"pending %d • active %d • %.1f orders/min",
			load.PendingOrdersCount, load.ActiveOrdersCount, load.RecentVelocityPerMin,
		)),
	)

	return r.styles.Card.Render(body)
}

// storeMap is the static network map. It fetches nothing.
func (r *Renderer) storeMap() string {
	hubs := []struct {
		name   string
		region string
	}{
		{"Downtown", "Central District"},
		{"Uptown", "North District"},
		{"Suburbs", "Outer Ring"},
	}

	rows := make([][]string, 0, len(hubs))
	for _, hub := range hubs {
		rows = append(rows, []string{
			r.styles.Success.Render("●"),
			hub.name,
			hub.region,
			"Online",
		})
	}

	body := r.table([]string{"", "HUB", "REGION", "STATUS"}, rows, -1)
	footer := r.styles.Success.Render("3 Hubs Online") + r.styles.Dim.Render(" | ") + r.styles.Success.Render("100% Connectivity")

	return lipgloss.JoinVertical(lipgloss.Left, body, "", footer)
}
