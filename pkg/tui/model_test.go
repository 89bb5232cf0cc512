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
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storepulse/storepulse/pkg/client"
	"github.com/storepulse/storepulse/pkg/config"
	"github.com/storepulse/storepulse/pkg/controller"
	"github.com/storepulse/storepulse/pkg/logger"
	"github.com/storepulse/storepulse/pkg/models"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	api, err := client.New(client.Config{
		BaseURL: "http://localhost:8000/api/v1",
		Logger:  logger.NewTestLogger(),
	})
	require.NoError(t, err)

	return New(api, config.Default(), logger.NewTestLogger())
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_NumberKeyNavigates(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyMsg("6"))

	assert.Equal(t, controller.ViewDLQ, m.session.ActiveView())
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)
}

func TestModel_PassDoneAppliesSnapshot(t *testing.T) {
	m := newTestModel(t)

	token := m.session.Navigate(controller.ViewOrders)
	m.loading = true

	_, _ = m.Update(passDoneMsg{
		view:     controller.ViewOrders,
		token:    token,
		snapshot: &controller.Snapshot{View: controller.ViewOrders, Token: token, Orders: &models.OrderPage{}},
	})

	require.NotNil(t, m.snapshot)
	assert.Equal(t, controller.ViewOrders, m.snapshot.View)
	assert.False(t, m.loading)
	assert.False(t, m.showError)
}

func TestModel_StalePassDiscarded(t *testing.T) {
	m := newTestModel(t)

	old := m.session.Navigate(controller.ViewOrders)
	newer := m.session.Navigate(controller.ViewOrders)

	_, _ = m.Update(passDoneMsg{
		view:     controller.ViewOrders,
		token:    newer,
		snapshot: &controller.Snapshot{View: controller.ViewOrders, Token: newer, Orders: &models.OrderPage{Total: 2}},
	})

	_, _ = m.Update(passDoneMsg{
		view:     controller.ViewOrders,
		token:    old,
		snapshot: &controller.Snapshot{View: controller.ViewOrders, Token: old, Orders: &models.OrderPage{Total: 1}},
	})

	require.NotNil(t, m.snapshot)
	assert.Equal(t, 2, m.snapshot.Orders.Total)
}

func TestModel_PassForOtherViewDiscarded(t *testing.T) {
	m := newTestModel(t)

	token := m.session.Navigate(controller.ViewOrders)
	m.session.Navigate(controller.ViewDLQ)

	_, _ = m.Update(passDoneMsg{
		view:     controller.ViewOrders,
		token:    token,
		snapshot: &controller.Snapshot{View: controller.ViewOrders, Token: token, Orders: &models.OrderPage{}},
	})

	assert.Nil(t, m.snapshot)
}

func TestModel_StaleFailureDiscardedAfterNewerSuccess(t *testing.T) {
	m := newTestModel(t)

	old := m.session.Navigate(controller.ViewOrders)
	newer := m.session.Navigate(controller.ViewOrders)

	_, _ = m.Update(passDoneMsg{
		view:     controller.ViewOrders,
		token:    newer,
		snapshot: &controller.Snapshot{View: controller.ViewOrders, Token: newer, Orders: &models.OrderPage{Total: 2}},
	})

	// The older pass fails afterwards; its error must not replace the
	// newer applied render with the error panel.
	_, _ = m.Update(passDoneMsg{
		view:  controller.ViewOrders,
		token: old,
		err:   errors.New("connection refused"),
	})

	assert.False(t, m.showError)
	require.NotNil(t, m.snapshot)
	assert.Equal(t, 2, m.snapshot.Orders.Total)
}

func TestModel_NonSilentFailureShowsErrorPanel(t *testing.T) {
	m := newTestModel(t)

	token := m.session.Navigate(controller.ViewOrders)
	m.loading = true

	_, _ = m.Update(passDoneMsg{
		view:  controller.ViewOrders,
		token: token,
		err:   errors.New("connection refused"),
	})

	assert.True(t, m.showError)
	assert.False(t, m.loading)
}

func TestModel_SilentFailureKeepsScreen(t *testing.T) {
	m := newTestModel(t)

	token := m.session.Navigate(controller.ViewOrders)
	m.snapshot = &controller.Snapshot{View: controller.ViewOrders, Orders: &models.OrderPage{Total: 3}}

	_, _ = m.Update(passDoneMsg{
		view:   controller.ViewOrders,
		token:  token,
		silent: true,
		err:    errors.New("connection refused"),
	})

	assert.False(t, m.showError)
	require.NotNil(t, m.snapshot)
	assert.Equal(t, 3, m.snapshot.Orders.Total)
}

func TestModel_TogglePollingStartsAndStopsRefresher(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(keyMsg("p"))

	assert.True(t, m.session.PollingEnabled())
	assert.True(t, m.refresher.Running())

	_, _ = m.Update(keyMsg("p"))

	assert.False(t, m.session.PollingEnabled())
	assert.False(t, m.refresher.Running())
}

func TestModel_CycleStoreOnInventoryView(t *testing.T) {
	m := newTestModel(t)

	m.session.Navigate(controller.ViewInventory)

	_, cmd := m.Update(keyMsg("s"))

	assert.Equal(t, 2, m.session.SelectedStoreID())
	assert.NotNil(t, cmd)

	// Wraps back to the first store.
	_, _ = m.Update(keyMsg("s"))
	_, _ = m.Update(keyMsg("s"))

	assert.Equal(t, 1, m.session.SelectedStoreID())
}

func TestModel_CycleStoreIgnoredOffInventory(t *testing.T) {
	m := newTestModel(t)

	m.session.Navigate(controller.ViewOrders)

	_, cmd := m.Update(keyMsg("s"))

	assert.Equal(t, 1, m.session.SelectedStoreID())
	assert.Nil(t, cmd)
}

func TestModel_ReplaySuccessRefetchesDLQ(t *testing.T) {
	m := newTestModel(t)

	m.session.Navigate(controller.ViewDLQ)

	_, cmd := m.Update(replayDoneMsg{orderID: 42})

	// The queue re-renders without any success notice.
	assert.Equal(t, overlayNone, m.overlay)
	assert.Empty(t, m.noticeText)
	assert.Equal(t, controller.ViewDLQ, m.session.ActiveView())
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)
}

func TestModel_ReplayBackendDetailSurfaced(t *testing.T) {
	m := newTestModel(t)

	apiErr := &client.APIError{StatusCode: 500, Status: "500 Internal Server Error", Detail: "order already completed"}

	_, cmd := m.Update(replayDoneMsg{orderID: 42, err: apiErr})

	assert.Equal(t, overlayNotice, m.overlay)
	assert.Equal(t, "Replay failed: order already completed", m.noticeText)
	assert.True(t, m.noticeIsError)

	// No re-fetch on failure.
	assert.Nil(t, cmd)
}

func TestModel_ReplayEmptyDetailFallsBack(t *testing.T) {
	m := newTestModel(t)

	apiErr := &client.APIError{StatusCode: 503, Status: "503 Service Unavailable"}

	_, _ = m.Update(replayDoneMsg{orderID: 42, err: apiErr})

	assert.Equal(t, "Replay failed: Service Error", m.noticeText)
}

func TestModel_ReplayNetworkError(t *testing.T) {
	m := newTestModel(t)

	_, _ = m.Update(replayDoneMsg{orderID: 42, err: errors.New("dial tcp: connection refused")})

	assert.Equal(t, "Network error during replay.", m.noticeText)
	assert.True(t, m.noticeIsError)
}

func TestModel_NoticeDismissedByAnyKey(t *testing.T) {
	m := newTestModel(t)

	m.overlay = overlayNotice
	m.noticeText = "Order replay initiated successfully."

	_, _ = m.Update(keyMsg("x"))

	assert.Equal(t, overlayNone, m.overlay)
	assert.Empty(t, m.noticeText)
}

func TestModel_ConfirmReplayEnterFiresCommand(t *testing.T) {
	m := newTestModel(t)

	m.overlay = overlayConfirmReplay
	m.pendingReplay = &models.FailedOrder{ID: 42}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, overlayNone, m.overlay)
	assert.Nil(t, m.pendingReplay)
	assert.NotNil(t, cmd)
}

func TestModel_ConfirmReplayEscCancels(t *testing.T) {
	m := newTestModel(t)

	m.overlay = overlayConfirmReplay
	m.pendingReplay = &models.FailedOrder{ID: 42}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, overlayNone, m.overlay)
	assert.Nil(t, m.pendingReplay)
	assert.Nil(t, cmd)
}

func TestModel_RefreshTickFetchesActiveView(t *testing.T) {
	m := newTestModel(t)

	m.session.Navigate(controller.ViewProducts)

	_, cmd := m.Update(RefreshTickMsg{})

	assert.NotNil(t, cmd)
	assert.Equal(t, controller.ViewProducts, m.session.ActiveView())
}
