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

	"github.com/storepulse/storepulse/pkg/config"
	"github.com/storepulse/storepulse/pkg/controller"
)

// Renderer converts fetched snapshots into terminal output. It holds no
// mutable state; every render is a pure function of its inputs.
type Renderer struct {
	styles Styles
	stores []config.Store
}

func NewRenderer(stores []config.Store) *Renderer {
	return &Renderer{
		styles: NewStyles(),
		stores: stores,
	}
}

func (r *Renderer) Styles() Styles {
	return r.styles
}

// Titles returns the page title and subtitle for a view.
func Titles(view controller.ViewID) (title, subtitle string) {
	switch view {
	case controller.ViewOverview:
		return "Dashboard Overview", "Real-time performance metrics and quick stats."
	case controller.ViewProducts:
		return "Product Catalog", "Manage and inspect available products."
	case controller.ViewInventory:
		return "Inventory Levels", "Real-time stock tracking per store."
	case controller.ViewTimeline:
		return "Inventory Timeline", "Track stock movement and adjustment history."
	case controller.ViewOrders:
		return "Orders Management", "Track and process all customer orders."
	case controller.ViewDLQ:
		return "Dead Letter Queue (DLQ)", "Inspect and retry failed order processing."
	case controller.ViewStoreLoad:
		return "Store Load Monitoring", "Real-time performance and load metrics by store hub."
	case controller.ViewStoreMap:
		return "Store Network Map", "Geospatial distribution of fulfillment hubs."
	default:
		return string(view), ""
	}
}

// Snapshot renders the per-view body. cursor selects a row on the
// products and dlq views; pass -1 elsewhere.
func (r *Renderer) Snapshot(snap *controller.Snapshot, cursor int) string {
	switch snap.View {
	case controller.ViewOverview:
		return r.overview(snap.Overview)
	case controller.ViewProducts:
		return r.products(snap.Products, cursor)
	case controller.ViewInventory:
		return r.inventory(snap.Inventory)
	case controller.ViewTimeline:
		return r.timeline(snap.Timeline)
	case controller.ViewOrders:
		return r.orders(snap.Orders)
	case controller.ViewDLQ:
		return r.dlq(snap.DLQ, cursor)
	case controller.ViewStoreLoad:
		return r.storeLoad(snap.StoreLoads)
	case controller.ViewStoreMap:
		return r.storeMap()
	default:
		return ""
	}
}

// Error renders the uniform error panel shown on a non-silent failure.
func (r *Renderer) Error(baseURL string) string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		r.styles.Danger.Render("Backend Connection Error"),
		"",
		r.styles.Dim.Render(fmt.Sprintf("Failed to load data from %s.", baseURL)),
		"",
		r.styles.Help.Render("r → retry connection"),
	)

	return r.styles.ErrorPanel.Render(body)
}

// Loading renders the non-silent loading placeholder around a spinner
// frame.
func (r *Renderer) Loading(spinnerView string) string {
	return r.styles.Dim.Render(spinnerView + " Loading...")
}

func (r *Renderer) emptyRow(text string) string {
	return r.styles.Dim.Render("  " + text)
}

// table lays out rows under a styled header. selected marks one row
// with a cursor glyph; pass -1 for none.
func (r *Renderer) table(headers []string, rows [][]string, selected int) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	b.WriteString("  ")

	for i, h := range headers {
		b.WriteString(r.styles.TableHeader.Render(pad(h, widths[i])))
		b.WriteString("  ")
	}

	b.WriteString("\n")

	for idx, row := range rows {
		if idx == selected {
			b.WriteString(r.styles.SelectedRow.Render("▸ "))
		} else {
			b.WriteString("  ")
		}

		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			b.WriteString("  ")
		}

		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}

	return s
}
