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

// Package tui wires the dashboard controller into a bubbletea program:
// key handling, fetch commands, and composed screen output.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storepulse/storepulse/pkg/client"
	"github.com/storepulse/storepulse/pkg/config"
	"github.com/storepulse/storepulse/pkg/controller"
	"github.com/storepulse/storepulse/pkg/logger"
	"github.com/storepulse/storepulse/pkg/models"
	"github.com/storepulse/storepulse/pkg/views"
)

// RefreshTickMsg is injected by the refresher goroutine on every timer
// firing that passed the in-flight guard.
type RefreshTickMsg struct{}

type passDoneMsg struct {
	view     controller.ViewID
	token    uint64
	silent   bool
	snapshot *controller.Snapshot
	err      error
}

type productLoadedMsg struct {
	product *models.Product
	err     error
}

type replayDoneMsg struct {
	orderID int64
	err     error
}

type overlay int

const (
	overlayNone overlay = iota
	overlayProduct
	overlayConfirmReplay
	overlayNotice
)

// sender forwards refresher ticks into the bubbletea program. The
// program is attached after construction, so ticks that race startup
// are dropped rather than dereferencing nil.
type sender struct {
	program *tea.Program
}

func (s *sender) send(msg tea.Msg) {
	if s.program != nil {
		s.program.Send(msg)
	}
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	session   *controller.Session
	pipeline  *controller.Pipeline
	refresher *controller.Refresher
	renderer  *views.Renderer
	api       *client.Client
	stores    []config.Store
	logger    logger.Logger
	snd       *sender

	spinner spinner.Model
	width   int
	height  int

	snapshot  *controller.Snapshot
	loading   bool
	showError bool
	cursor    int

	overlay       overlay
	product       *models.Product
	pendingReplay *models.FailedOrder
	noticeText    string
	noticeIsError bool
}

// New assembles the model. The refresher starts stopped; polling is an
// explicit toggle.
func New(api *client.Client, cfg *config.Config, log logger.Logger) *Model {
	snd := &sender{}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9"))

	m := &Model{
		session:  controller.NewSession(),
		pipeline: controller.NewPipeline(api, cfg.Stores, log),
		renderer: views.NewRenderer(cfg.Stores),
		api:      api,
		stores:   cfg.Stores,
		logger:   log,
		snd:      snd,
		spinner:  sp,
	}

	m.refresher = controller.NewRefresher(nil, cfg.RefreshInterval.Duration(), func() {
		snd.send(RefreshTickMsg{})
	}, log)

	return m
}

// Attach binds the running program so refresher ticks can reach Update.
func (m *Model) Attach(p *tea.Program) {
	m.snd.program = p
}

func (m *Model) Init() tea.Cmd {
	token := m.session.Navigate(controller.ViewOverview)
	m.loading = true

	return tea.Batch(m.spinner.Tick, m.fetchCmd(controller.ViewOverview, token, false))
}

// fetchCmd runs one pipeline pass off the update loop.
func (m *Model) fetchCmd(view controller.ViewID, token uint64, silent bool) tea.Cmd {
	storeID := m.session.SelectedStoreID()

	return func() tea.Msg {
		snap, err := m.pipeline.Run(context.Background(), view, storeID, token, silent)

		return passDoneMsg{view: view, token: token, silent: silent, snapshot: snap, err: err}
	}
}

func (m *Model) productCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		product, err := m.api.Product(context.Background(), id)

		return productLoadedMsg{product: product, err: err}
	}
}

func (m *Model) replayCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return replayDoneMsg{orderID: id, err: m.api.ReplayFailedOrder(context.Background(), id)}
	}
}

// navigate switches views and kicks off the non-silent pass.
func (m *Model) navigate(view controller.ViewID) tea.Cmd {
	token := m.session.Navigate(view)
	m.loading = true
	m.showError = false
	m.cursor = 0

	return m.fetchCmd(view, token, false)
}

// rowCount is the number of selectable rows on the active view.
func (m *Model) rowCount() int {
	if m.snapshot == nil {
		return 0
	}

	switch m.snapshot.View {
	case controller.ViewProducts:
		if m.snapshot.Products != nil {
			return len(m.snapshot.Products.Items)
		}
	case controller.ViewDLQ:
		if m.snapshot.DLQ != nil {
			return len(m.snapshot.DLQ.Items)
		}
	}

	return 0
}

func (m *Model) clampCursor() {
	if count := m.rowCount(); m.cursor >= count {
		m.cursor = count - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}
