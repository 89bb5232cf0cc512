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
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/storepulse/storepulse/pkg/client"
	"github.com/storepulse/storepulse/pkg/controller"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RefreshTickMsg:
		view, token := m.session.RefreshPass()

		return m, m.fetchCmd(view, token, true)

	case passDoneMsg:
		return m.handlePassDone(msg)

	case productLoadedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("Product detail fetch failed")
			m.overlay = overlayNone

			return m, nil
		}

		m.product = msg.product
		m.overlay = overlayProduct

		return m, nil

	case replayDoneMsg:
		return m.handleReplayDone(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.refresher.Stop()

		return m, tea.Quit
	}

	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	switch msg.String() {
	case "q":
		m.refresher.Stop()

		return m, tea.Quit

	case "1", "2", "3", "4", "5", "6", "7", "8":
		idx := int(msg.String()[0] - '1')

		return m, m.navigate(controller.Views[idx])

	case "tab":
		return m, m.navigate(m.nextView(1))

	case "shift+tab":
		return m, m.navigate(m.nextView(-1))

	case "up", "k":
		m.cursor--
		m.clampCursor()

		return m, nil

	case "down", "j":
		m.cursor++
		m.clampCursor()

		return m, nil

	case "enter":
		return m.handleEnter()

	case "s":
		return m.cycleStore()

	case "p":
		return m.togglePolling()

	case "r":
		return m, m.navigate(m.session.ActiveView())
	}

	return m, nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayNotice:
		// Any key dismisses.
		m.overlay = overlayNone
		m.noticeText = ""

		return m, nil

	case overlayProduct:
		if msg.String() == "esc" || msg.String() == "enter" {
			m.overlay = overlayNone
			m.product = nil
		}

		return m, nil

	case overlayConfirmReplay:
		switch msg.String() {
		case "enter":
			order := m.pendingReplay
			m.overlay = overlayNone
			m.pendingReplay = nil

			if order == nil {
				return m, nil
			}

			m.logger.Info().Int64("failed_order_id", order.ID).Msg("Replay requested")

			return m, m.replayCmd(order.ID)
		case "esc":
			m.overlay = overlayNone
			m.pendingReplay = nil
		}

		return m, nil
	}

	return m, nil
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.snapshot == nil {
		return m, nil
	}

	switch m.snapshot.View {
	case controller.ViewProducts:
		if page := m.snapshot.Products; page != nil && m.cursor < len(page.Items) {
			return m, m.productCmd(page.Items[m.cursor].ID)
		}

	case controller.ViewDLQ:
		if page := m.snapshot.DLQ; page != nil && m.cursor < len(page.Items) {
			order := page.Items[m.cursor]
			m.pendingReplay = &order
			m.overlay = overlayConfirmReplay
		}
	}

	return m, nil
}

// cycleStore advances the inventory view's store selection and re-runs
// the pass. Ignored on other views.
func (m *Model) cycleStore() (tea.Model, tea.Cmd) {
	if m.session.ActiveView() != controller.ViewInventory || len(m.stores) == 0 {
		return m, nil
	}

	current := m.session.SelectedStoreID()
	next := m.stores[0].ID

	for i, store := range m.stores {
		if store.ID == current {
			next = m.stores[(i+1)%len(m.stores)].ID
			break
		}
	}

	token := m.session.SelectStore(next)
	m.loading = true
	m.showError = false

	return m, m.fetchCmd(controller.ViewInventory, token, false)
}

func (m *Model) togglePolling() (tea.Model, tea.Cmd) {
	enabled := !m.session.PollingEnabled()
	if !m.session.SetPolling(enabled) {
		return m, nil
	}

	if enabled {
		m.refresher.Start()
	} else {
		m.refresher.Stop()
	}

	return m, nil
}

func (m *Model) nextView(step int) controller.ViewID {
	active := m.session.ActiveView()

	for i, view := range controller.Views {
		if view == active {
			return controller.Views[(i+step+len(controller.Views))%len(controller.Views)]
		}
	}

	return controller.ViewOverview
}

func (m *Model) handlePassDone(msg passDoneMsg) (tea.Model, tea.Cmd) {
	if msg.silent {
		m.refresher.Settle()
	}

	if msg.err != nil {
		// Silent failures keep whatever was on screen.
		if msg.silent {
			return m, nil
		}

		// Failures obey the same token rule as successes: an older
		// pass's late failure must not clobber a newer applied render.
		if !m.session.ShouldApply(msg.view, msg.token) {
			m.logger.Debug().
				Str("view", string(msg.view)).
				Uint64("token", msg.token).
				Msg("Stale pass failure discarded")

			return m, nil
		}

		m.loading = false
		m.showError = true

		return m, nil
	}

	if !m.session.ShouldApply(msg.view, msg.token) {
		m.logger.Debug().
			Str("view", string(msg.view)).
			Uint64("token", msg.token).
			Msg("Stale pass result discarded")

		return m, nil
	}

	m.snapshot = msg.snapshot
	m.loading = false
	m.showError = false
	m.clampCursor()

	return m, nil
}

func (m *Model) handleReplayDone(msg replayDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		m.logger.Info().Int64("failed_order_id", msg.orderID).Msg("Replay succeeded")

		// Refresh the queue so the replayed entry drops out. No
		// success notice; the updated list is the feedback.
		return m, m.navigate(controller.ViewDLQ)
	}

	m.logger.Warn().Int64("failed_order_id", msg.orderID).Err(msg.err).Msg("Replay failed")

	if apiErr, ok := client.AsAPIError(msg.err); ok {
		detail := apiErr.Detail
		if detail == "" {
			detail = "Service Error"
		}

		m.noticeText = "Replay failed: " + detail
	} else {
		m.noticeText = "Network error during replay."
	}

	m.noticeIsError = true
	m.overlay = overlayNotice

	return m, nil
}
