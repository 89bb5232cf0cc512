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

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/storepulse/storepulse/pkg/controller"
	"github.com/storepulse/storepulse/pkg/views"
)

var navLabels = map[controller.ViewID]string{
	controller.ViewOverview:  "Overview",
	controller.ViewProducts:  "Products",
	controller.ViewInventory: "Inventory",
	controller.ViewTimeline:  "Timeline",
	controller.ViewOrders:    "Orders",
	controller.ViewDLQ:       "DLQ",
	controller.ViewStoreLoad: "Load",
	controller.ViewStoreMap:  "Map",
}

func (m *Model) View() string {
	styles := m.renderer.Styles()
	active := m.session.ActiveView()

	title, subtitle := views.Titles(active)

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Title.Render("StorePulse")+"  "+m.navBar(active),
		styles.Title.Render(title),
		styles.Subtitle.Render(subtitle),
	)

	body := m.body()

	help := "1-8/tab → views • p → polling"
	if m.session.PollingEnabled() {
		help += " (on)"
	}

	help += " • q → quit"

	screen := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		body,
		"",
		styles.Help.Render(help),
	)

	if ov := m.overlayView(); ov != "" {
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ov)
		}

		return ov
	}

	return screen
}

func (m *Model) navBar(active controller.ViewID) string {
	styles := m.renderer.Styles()
	items := make([]string, 0, len(controller.Views))

	for i, view := range controller.Views {
		label := fmt.Sprintf("%d %s", i+1, navLabels[view])

		if view == active {
			items = append(items, styles.NavActive.Render(label))
		} else {
			items = append(items, styles.NavItem.Render(label))
		}
	}

	return strings.Join(items, "  ")
}

func (m *Model) body() string {
	switch {
	case m.showError:
		return m.renderer.Error(m.api.BaseURL())
	case m.loading:
		return m.renderer.Loading(m.spinner.View())
	case m.snapshot == nil || m.snapshot.View != m.session.ActiveView():
		return m.renderer.Loading(m.spinner.View())
	default:
		return m.renderer.Snapshot(m.snapshot, m.cursor)
	}
}

func (m *Model) overlayView() string {
	switch m.overlay {
	case overlayProduct:
		return m.renderer.ProductModal(m.product)
	case overlayConfirmReplay:
		return m.renderer.ConfirmReplay(m.pendingReplay)
	case overlayNotice:
		return m.renderer.Notice(m.noticeText, m.noticeIsError)
	default:
		return ""
	}
}
